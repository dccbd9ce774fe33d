// Package grid implements the 8-connected grid model: a width x height
// cell space where each cell carries an 8-bit connectivity mask rather than
// a simple obstacle flag, so a map source can describe one-way or partially
// open terrain.
package grid

import "fmt"

// Mask is the per-cell connectivity mask. Bit k (0-7) set means the step
// to neighbour k (see directionTable) is permitted, subject to the target
// cell also being in range.
type Mask uint8

// Grid is the fixed search space for a single query. It is read-only once
// built: the connectivity masks are supplied by a map source and never
// mutated by a solver.
type Grid struct {
	Width, Height int
	masks         []Mask // row-major, len == Width*Height
}

// New creates a grid with the given dimensions. masks must be in row-major
// order (id = y*width + x) and have exactly width*height entries; passing
// nil allocates an all-closed grid the caller can populate via SetMask.
func New(width, height int, masks []Mask) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: width and height must be positive, got %dx%d", width, height)
	}
	n := width * height
	if masks == nil {
		masks = make([]Mask, n)
	} else if len(masks) != n {
		return nil, fmt.Errorf("grid: expected %d masks for %dx%d grid, got %d", n, width, height, len(masks))
	}
	return &Grid{Width: width, Height: height, masks: masks}, nil
}

// N is the total number of cells, W*H.
func (g *Grid) N() int { return g.Width * g.Height }

// InRange reports whether (x, y) lies within the grid bounds.
func (g *Grid) InRange(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// ToID maps in-range coordinates to their cell ID. Behaviour is undefined
// for out-of-range coordinates; callers must check InRange first.
func (g *Grid) ToID(x, y int) int {
	return y*g.Width + x
}

// ToXY is the inverse of ToID.
func (g *Grid) ToXY(id int) (x, y int) {
	return id % g.Width, id / g.Width
}

// Mask returns the connectivity mask for a cell ID.
func (g *Grid) Mask(id int) Mask {
	return g.masks[id]
}

// SetMask overwrites the connectivity mask for a cell ID. Intended for map
// sources and tests building a grid programmatically.
func (g *Grid) SetMask(id int, m Mask) {
	g.masks[id] = m
}

// Neighbour is one reachable neighbour of a cell together with the cost of
// the step onto it.
type Neighbour struct {
	ID   int
	Cost float64
}

// Neighbours enumerates the reachable neighbours of id: every direction bit
// set in its mask whose target cell is in range. The returned slice is
// freshly allocated; hot callers (the solvers) may prefer AppendNeighbours.
func (g *Grid) Neighbours(id int) []Neighbour {
	return g.AppendNeighbours(nil, id)
}

// AppendNeighbours appends id's reachable neighbours to dst and returns the
// extended slice, letting callers reuse a scratch buffer across expansions.
func (g *Grid) AppendNeighbours(dst []Neighbour, id int) []Neighbour {
	x, y := g.ToXY(id)
	m := g.masks[id]
	for d := Dir(0); d < numDirs; d++ {
		if m&(1<<d) == 0 {
			continue
		}
		delta := directionTable[d]
		nx, ny := x+delta.dx, y+delta.dy
		if !g.InRange(nx, ny) {
			continue
		}
		dst = append(dst, Neighbour{ID: g.ToID(nx, ny), Cost: directionCost[d]})
	}
	return dst
}

// StepCost returns the fixed step cost for direction d, independent of the
// cells it connects (the only weighting the model supports, per spec).
func StepCost(d Dir) float64 {
	return directionCost[d]
}
