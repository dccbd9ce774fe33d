// Package mapsource defines the external collaborator interface spec.md
// §6 describes: something that fills a grid's connectivity masks and
// names a start/target pair. Map generation itself (random or file-based)
// is explicitly out of scope for the pathfinding core (spec.md §1); the
// subpackages here are reference implementations the driver wires in.
package mapsource

import "github.com/wrenfield/gridstar/internal/grid"

// Source produces a grid plus its fixed start and target endpoints.
// Generate fills buf (len == width*height) with connectivity masks in
// row-major order using the direction convention fixed in
// internal/grid/directions.go. Start and Target return coordinates that
// must be in range; they need not be connected to each other.
type Source interface {
	Generate(buf []grid.Mask)
	Width() int
	Height() int
	Start() (x, y int)
	Target() (x, y int)
}

// Build runs a Source end to end: allocates the grid, calls Generate, and
// returns the grid plus start/target cell IDs.
func Build(s Source) (*grid.Grid, int, int, error) {
	g, err := grid.New(s.Width(), s.Height(), make([]grid.Mask, s.Width()*s.Height()))
	if err != nil {
		return nil, 0, 0, err
	}
	buf := make([]grid.Mask, s.Width()*s.Height())
	s.Generate(buf)
	for id, m := range buf {
		g.SetMask(id, m)
	}
	sx, sy := s.Start()
	tx, ty := s.Target()
	return g, g.ToID(sx, sy), g.ToID(tx, ty), nil
}
