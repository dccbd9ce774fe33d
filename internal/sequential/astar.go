// Package sequential implements the reference A* solver: a single-threaded
// binary-heap search used as the correctness baseline for the parallel
// solver (spec.md §4.3).
package sequential

import (
	"fmt"

	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/heuristic"
	"github.com/wrenfield/gridstar/internal/pathresult"
)

// Result is the public contract shared by both solvers (spec.md §4.3, §6).
type Result = pathresult.Result

// Solver is the sequential reference A*.
type Solver struct {
	h heuristic.Func
}

// New creates a sequential solver using the Octile heuristic
// (spec.md §4.2). Use NewWithHeuristic to override it for tests.
func New() *Solver {
	return &Solver{h: heuristic.Octile}
}

// NewWithHeuristic creates a sequential solver using a custom heuristic,
// for admissibility tests and benchmarking alternative heuristics.
func NewWithHeuristic(h heuristic.Func) *Solver {
	return &Solver{h: h}
}

// FindPath runs A* from start to target on g, following the algorithm of
// spec.md §4.3: pop min-f, close it, relax neighbours, repeat until the
// target is closed or the open set empties.
func (s *Solver) FindPath(g *grid.Grid, start, target int) (Result, error) {
	n := g.N()
	if start < 0 || start >= n || target < 0 || target >= n {
		return Result{}, fmt.Errorf("sequential: start/target out of range for %dx%d grid", g.Width, g.Height)
	}

	nodes := make([]node, n)
	closed := make([]bool, n)
	gx, gy := g.ToXY(target)

	open := newOpenSet()
	nodes[start] = node{g: 0, pred: noPredecessor, seen: true}
	sx, sy := g.ToXY(start)
	open.push(start, s.h(sx, sy, gx, gy))

	if start == target {
		return Result{Success: true, Cost: 0, Path: []int{start}}, nil
	}

	var neighbourBuf []grid.Neighbour
	for !open.empty() {
		e := open.pop()
		if closed[e.id] {
			continue
		}
		closed[e.id] = true

		if e.id == target {
			return Result{Success: true, Cost: nodes[e.id].g, Path: reconstruct(nodes, e.id)}, nil
		}

		neighbourBuf = g.AppendNeighbours(neighbourBuf[:0], e.id)
		for _, nb := range neighbourBuf {
			if closed[nb.ID] {
				continue
			}
			tentative := nodes[e.id].g + nb.Cost
			if !nodes[nb.ID].seen || tentative < nodes[nb.ID].g {
				nodes[nb.ID] = node{g: tentative, pred: e.id, seen: true}
				nx, ny := g.ToXY(nb.ID)
				open.push(nb.ID, tentative+s.h(nx, ny, gx, gy))
			}
		}
	}

	return Result{Success: false}, nil
}

func reconstruct(nodes []node, target int) []int {
	var path []int
	for cur := target; cur != noPredecessor; cur = nodes[cur].pred {
		path = append(path, cur)
		if nodes[cur].pred == noPredecessor {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

