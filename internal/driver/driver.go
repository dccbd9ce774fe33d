// Package driver implements spec.md §4.5: it runs one or both solvers on
// the same prepared grid, cross-checks their results, and logs the
// outcome. It is the only package that knows about both solver packages.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wrenfield/gridstar/internal/config"
	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/parallel"
	"github.com/wrenfield/gridstar/internal/patherrors"
	"github.com/wrenfield/gridstar/internal/pathresult"
	"github.com/wrenfield/gridstar/internal/sequential"
)

// toleranceAbs and toleranceRel bound the floating-point comparison
// between the two solvers' costs (spec.md §9: diagonal √2 sums are not
// associative, so exact equality is the wrong test).
const (
	toleranceAbs = 1e-6
	toleranceRel = 1e-6
)

// Outcome is what a single query produced, ready for present.Text/Structured.
type Outcome struct {
	Sequential *pathresult.Result
	Parallel   *pathresult.Result
	// Agreed is true when both solvers ran and passed the cross-check, or
	// when only one ran.
	Agreed bool
}

// Run executes cfg.Solvers against g from start to target, logging a
// structured event per spec.md's expanded ambient stack and returning a
// patherrors-classified error when a solver fails or the solvers disagree.
func Run(ctx context.Context, cfg config.Config, g *grid.Grid, start, target int) (Outcome, error) {
	began := time.Now()
	var out Outcome

	runSeq := cfg.Solvers == "sequential" || cfg.Solvers == "both"
	runPar := cfg.Solvers == "parallel" || cfg.Solvers == "both"

	if n := g.N(); start < 0 || start >= n || target < 0 || target >= n {
		return Outcome{}, fmt.Errorf("%w: start/target out of range for %dx%d grid", patherrors.ErrConfiguration, g.Width, g.Height)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if runSeq {
		eg.Go(func() error {
			res, err := sequential.New().FindPath(g, start, target)
			if err != nil {
				return fmt.Errorf("%w: sequential solver: %v", patherrors.ErrConfiguration, err)
			}
			out.Sequential = &res
			return nil
		})
	}
	if runPar {
		eg.Go(func() error {
			res, err := parallel.New(parallel.Options{K: cfg.BatchWidth}).FindPath(egCtx, g, start, target)
			if err != nil {
				return fmt.Errorf("%w: parallel solver: %v", patherrors.ErrDevice, err)
			}
			out.Parallel = &res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		slog.Error("query failed", "kind", patherrors.Kind(err), "err", err)
		return Outcome{}, err
	}

	out.Agreed = true
	if out.Sequential != nil && out.Parallel != nil {
		if out.Sequential.Success != out.Parallel.Success {
			out.Agreed = false
		} else if out.Sequential.Success && !costsAgree(out.Sequential.Cost, out.Parallel.Cost) {
			out.Agreed = false
		}
	}

	elapsed := time.Since(began)
	if !out.Agreed {
		err := fmt.Errorf("%w: sequential=%+v parallel=%+v", patherrors.ErrInvariant, out.Sequential, out.Parallel)
		slog.Error("cross-check mismatch", "elapsed", elapsed, "err", err)
		return out, err
	}

	slog.Info("query complete",
		"width", g.Width, "height", g.Height,
		"solvers", cfg.Solvers,
		"success", successOf(out),
		"cost", costOf(out),
		"elapsed", elapsed,
	)
	return out, nil
}

func costsAgree(a, b float64) bool {
	diff := math.Abs(a - b)
	return diff <= toleranceAbs+toleranceRel*math.Max(math.Abs(a), math.Abs(b))
}

func successOf(o Outcome) bool {
	if o.Sequential != nil {
		return o.Sequential.Success
	}
	return o.Parallel.Success
}

func costOf(o Outcome) float64 {
	if o.Sequential != nil {
		return o.Sequential.Cost
	}
	return o.Parallel.Cost
}
