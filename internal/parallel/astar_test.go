package parallel

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/sequential"
)

const tolerance = 1e-6

func fullyConnected(w, h int) []grid.Mask {
	masks := make([]grid.Mask, w*h)
	for i := range masks {
		masks[i] = 0xFF
	}
	return masks
}

func mustGrid(t *testing.T, w, h int, masks []grid.Mask) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, masks)
	require.NoError(t, err)
	return g
}

func TestS1_FullyConnected3x3(t *testing.T) {
	g := mustGrid(t, 3, 3, fullyConnected(3, 3))
	res, err := New(DefaultOptions()).FindPath(context.Background(), g, g.ToID(0, 0), g.ToID(2, 2))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, tolerance)
}

func TestS4_SingleCell(t *testing.T) {
	g := mustGrid(t, 1, 1, fullyConnected(1, 1))
	res, err := New(DefaultOptions()).FindPath(context.Background(), g, 0, 0)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Zero(t, res.Cost)
	assert.Len(t, res.Path, 1)
}

func TestS6_SingleDiagonalEdge(t *testing.T) {
	g := mustGrid(t, 2, 2, nil)
	a := g.ToID(0, 0)
	b := g.ToID(1, 1)
	g.SetMask(a, 1<<grid.DirSouthEast)
	g.SetMask(b, 1<<grid.DirNorthWest)

	res, err := New(DefaultOptions()).FindPath(context.Background(), g, a, b)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, math.Sqrt2, res.Cost, tolerance)
}

func TestNoPathDisconnected(t *testing.T) {
	g := mustGrid(t, 2, 1, nil) // two isolated cells, no connectivity at all
	res, err := New(DefaultOptions()).FindPath(context.Background(), g, 0, 1)
	require.NoError(t, err)
	assert.False(t, res.Success, "expected no path")
}

// TestBatchWidthOneMatchesSequential forces the parallel solver to extract
// a single node per round, exercising the batch loop at its narrowest and
// cross-checking against the sequential baseline (spec.md property 5).
func TestBatchWidthOneMatchesSequential(t *testing.T) {
	g := mustGrid(t, 6, 6, fullyConnected(6, 6))
	start, target := g.ToID(0, 0), g.ToID(5, 5)

	seqRes, err := sequential.New().FindPath(g, start, target)
	require.NoError(t, err)
	parRes, err := New(Options{K: 1, Workers: 2}).FindPath(context.Background(), g, start, target)
	require.NoError(t, err)

	require.Equal(t, seqRes.Success, parRes.Success)
	assert.InDelta(t, seqRes.Cost, parRes.Cost, tolerance)
}

// TestS5_RandomGridsAgreeWithSequential is scenario S5: seeded random
// 10x10 grids, both solvers must agree on optimal_cost.
func TestS5_RandomGridsAgreeWithSequential(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := randomGrid(t, 10, 10, seed)
		rng := rand.New(rand.NewPCG(seed, seed^0xC0FFEE))
		start := rng.IntN(g.N())
		target := rng.IntN(g.N())

		seqRes, err := sequential.New().FindPath(g, start, target)
		require.NoError(t, err)
		for _, k := range []int{1, 4, 64} {
			parRes, err := New(Options{K: k, Workers: 3}).FindPath(context.Background(), g, start, target)
			require.NoErrorf(t, err, "seed %d K=%d", seed, k)

			require.Equalf(t, seqRes.Success, parRes.Success, "seed %d K=%d: success mismatch", seed, k)
			assert.InDeltaf(t, seqRes.Cost, parRes.Cost, 1e-6+1e-6*seqRes.Cost,
				"seed %d K=%d: cost mismatch", seed, k)
		}
	}
}

// randomGrid builds a grid with a symmetric random connectivity mask: the
// same generation scheme internal/mapsource/random uses, inlined here to
// keep this test package free of a dependency on mapsource.
func randomGrid(t *testing.T, w, h int, seed uint64) *grid.Grid {
	t.Helper()
	g := mustGrid(t, w, h, nil)
	rng := rand.New(rand.NewPCG(seed, seed))
	for id := 0; id < g.N(); id++ {
		var m grid.Mask
		for d := grid.Dir(0); d < 8; d++ {
			if rng.Float64() < 0.7 {
				m |= 1 << d
			}
		}
		g.SetMask(id, m)
	}
	// Symmetrise: if u->v is enabled, enable v->u too, so the grid is
	// navigable consistently in both directions.
	for id := 0; id < g.N(); id++ {
		x1, y1 := g.ToXY(id)
		for _, nb := range g.Neighbours(id) {
			x2, y2 := g.ToXY(nb.ID)
			if bit, ok := grid.DirBetween(x1-x2, y1-y2); ok {
				g.SetMask(nb.ID, g.Mask(nb.ID)|1<<bit)
			}
		}
	}
	return g
}
