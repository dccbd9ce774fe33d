package driver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/gridstar/internal/config"
	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/patherrors"
)

func fullyConnected(w, h int) []grid.Mask {
	masks := make([]grid.Mask, w*h)
	for i := range masks {
		masks[i] = 0xFF
	}
	return masks
}

// TestS1ThroughBothSolvers runs scenario S1 (spec.md §8) through both
// solvers and checks they agree.
func TestS1ThroughBothSolvers(t *testing.T) {
	g, err := grid.New(3, 3, fullyConnected(3, 3))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Solvers = "both"
	cfg.BatchWidth = 4

	out, err := Run(context.Background(), cfg, g, g.ToID(0, 0), g.ToID(2, 2))
	require.NoError(t, err)
	require.True(t, out.Agreed, "expected solvers to agree")
	assert.InDelta(t, 2*math.Sqrt2, out.Sequential.Cost, 1e-6)
	assert.InDelta(t, 2*math.Sqrt2, out.Parallel.Cost, 1e-6)
}

// TestS3NoPathAgreement checks the no-path outcome of scenario S3 on the
// smallest disconnected grid (two isolated cells rather than S3's 4x4
// wall): both solvers must report failure, which by itself counts as
// agreement (no error).
func TestS3NoPathAgreement(t *testing.T) {
	g, err := grid.New(2, 1, nil) // two isolated cells
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Solvers = "both"
	cfg.BatchWidth = 2

	out, err := Run(context.Background(), cfg, g, 0, 1)
	require.NoError(t, err)
	require.True(t, out.Agreed, "expected agreement on no-path")
	assert.False(t, out.Sequential.Success)
	assert.False(t, out.Parallel.Success)
}

// TestRunSequentialOnly exercises the single-solver path.
func TestRunSequentialOnly(t *testing.T) {
	g, err := grid.New(3, 3, fullyConnected(3, 3))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Solvers = "sequential"

	out, err := Run(context.Background(), cfg, g, g.ToID(0, 0), g.ToID(2, 2))
	require.NoError(t, err)
	require.NotNil(t, out.Sequential)
	assert.Nil(t, out.Parallel)
	assert.True(t, out.Agreed, "expected single-solver runs to report agreement")
}

// TestRunRejectsOutOfRangeEndpoints exercises the configuration-error path.
func TestRunRejectsOutOfRangeEndpoints(t *testing.T) {
	g, err := grid.New(3, 3, fullyConnected(3, 3))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Solvers = "both"

	_, err = Run(context.Background(), cfg, g, 0, 99)
	assert.ErrorIs(t, err, patherrors.ErrConfiguration)
}
