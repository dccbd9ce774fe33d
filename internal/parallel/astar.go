// Package parallel implements the batch A* solver (spec.md §4.4): each
// round extracts up to K minimum-f entries from a two-level open set,
// expands them concurrently, deduplicates and relaxes the generated
// successors against a lock-free node arena, and reinserts improved
// nodes, terminating when the target's g is provably optimal.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/heuristic"
	"github.com/wrenfield/gridstar/internal/pathresult"
)

// Result is the public contract shared by both solvers (spec.md §4.4, §6).
type Result = pathresult.Result

// Options configures the batch solver.
type Options struct {
	// K is the batch width: entries extracted per round (spec.md §4.4.1
	// step 1). Must be >= 1.
	K int
	// Workers bounds the expansion worker pool. Zero selects
	// runtime.GOMAXPROCS(0), matching the "typically matching the
	// parallel width of the back-end" guidance of spec.md §4.4.1.
	Workers int
	// Heuristic overrides the default Octile heuristic, for tests.
	Heuristic heuristic.Func
}

// DefaultOptions returns a batch width of 64 and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{K: 64, Workers: 0, Heuristic: heuristic.Octile}
}

// Solver is the parallel batch A*.
type Solver struct {
	opts Options
}

// New creates a parallel solver with the given options, filling in
// defaults for zero values.
func New(opts Options) *Solver {
	if opts.K <= 0 {
		opts.K = 64
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Heuristic == nil {
		opts.Heuristic = heuristic.Octile
	}
	return &Solver{opts: opts}
}

type candidate struct {
	id   int
	g    float64
	pred int32
}

// FindPath runs the batch A* described in spec.md §4.4.1 from start to
// target on g. ctx governs cancellation at round boundaries (spec.md §5);
// a cancelled context surfaces as a device-class error.
func (s *Solver) FindPath(ctx context.Context, g *grid.Grid, start, target int) (Result, error) {
	n := g.N()
	if start < 0 || start >= n || target < 0 || target >= n {
		return Result{}, fmt.Errorf("parallel: start/target out of range for %dx%d grid", g.Width, g.Height)
	}
	if start == target {
		return Result{Success: true, Cost: 0, Path: []int{start}}, nil
	}

	a := newArena(n)
	fr := newFrontier()
	tx, ty := g.ToXY(target)
	h := func(id int) float64 {
		x, y := g.ToXY(id)
		return s.opts.Heuristic(x, y, tx, ty)
	}

	startVersion, _ := a.relax(start, 0, -1)
	fr.insertBatch([]item{{id: start, f: h(start), version: startVersion}})
	fr.merge()

	for !fr.empty() {
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("parallel: %w", ctx.Err())
		default:
		}

		batch := fr.extractTopK(s.opts.K)
		valid := batch[:0]
		for _, e := range batch {
			if a.stale(e.id, e.version) {
				continue
			}
			valid = append(valid, e)
		}
		if len(valid) == 0 {
			fr.merge()
			continue
		}

		for _, e := range valid {
			a.close(e.id)
		}

		// Early termination (spec.md §4.4.1 step 2): if the target was
		// extracted this round and no remaining open entry has a
		// strictly smaller f, its g is final.
		for _, e := range valid {
			if e.id != target {
				continue
			}
			remainingMin, any := fr.minF()
			if !any || e.f <= remainingMin {
				rec := a.load(target)
				return Result{Success: true, Cost: rec.g, Path: reconstructPath(a, target)}, nil
			}
		}

		candidates, err := s.expand(ctx, g, a, valid)
		if err != nil {
			return Result{}, fmt.Errorf("parallel: %w", err)
		}

		candidates = dedup(candidates)

		accepted := s.relaxBatch(a, h, candidates)
		fr.insertBatch(accepted)
		fr.merge()
	}

	return Result{Success: false}, nil
}

// expand generates successor candidates for every node in batch, split
// across a bounded worker pool and joined with an errgroup so a single
// worker's error aborts the round (spec.md §4.4.1 step 4, §4.4.5).
func (s *Solver) expand(ctx context.Context, g *grid.Grid, a *arena, batch []item) ([]candidate, error) {
	workers := s.opts.Workers
	if workers > len(batch) {
		workers = len(batch)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([][]candidate, workers)
	eg, _ := errgroup.WithContext(ctx)
	chunk := (len(batch) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(batch) {
			break
		}
		hi := lo + chunk
		if hi > len(batch) {
			hi = len(batch)
		}
		w, lo, hi := w, lo, hi
		eg.Go(func() error {
			var local []candidate
			var nbuf []grid.Neighbour
			for _, e := range batch[lo:hi] {
				rec := a.load(e.id)
				if rec == nil {
					return fmt.Errorf("expand: missing record for extracted cell %d", e.id)
				}
				nbuf = g.AppendNeighbours(nbuf[:0], e.id)
				for _, nb := range nbuf {
					if a.closedAt(nb.ID) {
						continue
					}
					local = append(local, candidate{id: nb.ID, g: rec.g + nb.Cost, pred: int32(e.id)})
				}
			}
			results[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]candidate, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

// dedup implements spec.md §4.4.1 step 5: sort by (cell, g) and keep the
// minimum-g candidate per cell, ties broken by the smaller predecessor id.
func dedup(candidates []candidate) []candidate {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.id != b.id {
			return a.id < b.id
		}
		if a.g != b.g {
			return a.g < b.g
		}
		return a.pred < b.pred
	})
	out := candidates[:0]
	for i := 0; i < len(candidates); {
		out = append(out, candidates[i])
		j := i + 1
		for j < len(candidates) && candidates[j].id == candidates[i].id {
			j++
		}
		i = j
	}
	return out
}

// relaxBatch performs spec.md §4.4.1 step 6 (global relax) for each
// deduplicated candidate and returns the open-set items to reinsert for
// every cell that was newly installed or improved (step 7).
func (s *Solver) relaxBatch(a *arena, h func(int) float64, candidates []candidate) []item {
	accepted := make([]item, 0, len(candidates))
	for _, c := range candidates {
		version, ok := a.relax(c.id, c.g, int(c.pred))
		if !ok {
			continue
		}
		accepted = append(accepted, item{id: c.id, f: c.g + h(c.id), version: version})
	}
	return accepted
}

// reconstructPath walks predecessor indices from target back to start
// (spec.md §4.4.4). The chain is acyclic because every predecessor was
// closed before its successor was relaxed from it, so each predecessor's g
// is strictly smaller than its successor's (step costs are positive).
func reconstructPath(a *arena, target int) []int {
	var path []int
	cur := target
	for {
		path = append(path, cur)
		rec := a.load(cur)
		if rec == nil || rec.pred < 0 {
			break
		}
		cur = int(rec.pred)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
