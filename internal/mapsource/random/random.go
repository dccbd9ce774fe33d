// Package random implements a seeded pseudo-random MapSource, grounded on
// the random-generation style used for map/terrain test fixtures
// elsewhere in the retrieved pack. Start is fixed at the top-left corner
// and target at the bottom-right; a query run against this source is not
// guaranteed to have a path, which is the point — scenario S3 and the
// no-path property (spec.md §8) need a source that can legitimately fail.
package random

import (
	"math/rand/v2"

	"github.com/wrenfield/gridstar/internal/grid"
)

// Source is a seeded random connectivity generator.
type Source struct {
	width, height int
	seed          uint64
	density       float64 // probability, per direction bit, that a step is open
}

// New creates a random map source. density is clamped to [0, 1]; 0.7 is a
// reasonable default that yields mostly-connected but not-trivial grids.
func New(width, height int, seed uint64, density float64) *Source {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	return &Source{width: width, height: height, seed: seed, density: density}
}

func (s *Source) Width() int  { return s.width }
func (s *Source) Height() int { return s.height }

func (s *Source) Start() (x, y int)  { return 0, 0 }
func (s *Source) Target() (x, y int) { return s.width - 1, s.height - 1 }

// Generate fills buf with a symmetric random connectivity mask: each
// candidate step is first drawn independently, then the result is
// symmetrised (if u can step to v, v can step to u) so the grid behaves
// like ordinary undirected terrain rather than one-way corridors, which
// spec.md §6 leaves to the map source to decide.
func (s *Source) Generate(buf []grid.Mask) {
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9E3779B97F4A7C15))
	w, h := s.width, s.height
	for id := range buf {
		buf[id] = 0
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			for d := grid.Dir(0); d < 8; d++ {
				if rng.Float64() < s.density {
					buf[id] |= 1 << d
				}
			}
		}
	}
	symmetrise(buf, w, h)
}

func symmetrise(buf []grid.Mask, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			for d := grid.Dir(0); d < 8; d++ {
				if buf[id]&(1<<d) == 0 {
					continue
				}
				ddx, ddy := grid.Delta(d)
				nx, ny := x+ddx, y+ddy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					buf[id] &^= 1 << d
					continue
				}
				nid := ny*w + nx
				back, ok := grid.DirBetween(x-nx, y-ny)
				if ok {
					buf[nid] |= 1 << back
				}
			}
		}
	}
}
