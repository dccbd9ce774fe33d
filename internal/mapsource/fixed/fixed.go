// Package fixed implements a MapSource backed by a literal grid, used for
// deterministic test fixtures and for loading a small hand-authored map
// description from YAML.
package fixed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wrenfield/gridstar/internal/grid"
)

// Source is a MapSource over an explicit, already-built mask layout.
type Source struct {
	W, H   int
	Masks  []grid.Mask
	SX, SY int
	TX, TY int
}

func (s *Source) Width() int  { return s.W }
func (s *Source) Height() int { return s.H }

func (s *Source) Start() (x, y int)  { return s.SX, s.SY }
func (s *Source) Target() (x, y int) { return s.TX, s.TY }

func (s *Source) Generate(buf []grid.Mask) {
	copy(buf, s.Masks)
}

// FullyConnected returns a fixed source where every in-range 8-neighbour
// step is enabled, the basis for scenario S1 of spec.md §8.
func FullyConnected(w, h, sx, sy, tx, ty int) *Source {
	masks := make([]grid.Mask, w*h)
	for i := range masks {
		masks[i] = 0xFF
	}
	return &Source{W: w, H: h, Masks: masks, SX: sx, SY: sy, TX: tx, TY: ty}
}

// document is the YAML shape a fixed map fixture file is parsed from.
type document struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	// Rows holds one string per grid row, top to bottom: '.' for a
	// fully-open cell, '#' for fully closed. Finer-grained per-direction
	// masks are built programmatically, not authored by hand.
	Rows   []string `yaml:"rows"`
	Start  [2]int   `yaml:"start"`
	Target [2]int   `yaml:"target"`
}

// Load reads a fixed map fixture from a YAML file. Open cells ('.') get a
// fully-connected mask that is later trimmed to in-range neighbours by the
// grid itself; closed cells ('#') get a zero mask.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixed: reading %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixed: parsing %s: %w", path, err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("fixed: %s: width and height must be positive", path)
	}
	if len(doc.Rows) != doc.Height {
		return nil, fmt.Errorf("fixed: %s: expected %d rows, got %d", path, doc.Height, len(doc.Rows))
	}
	masks := make([]grid.Mask, doc.Width*doc.Height)
	for y, row := range doc.Rows {
		if len(row) != doc.Width {
			return nil, fmt.Errorf("fixed: %s: row %d has length %d, want %d", path, y, len(row), doc.Width)
		}
		for x, r := range row {
			if r == '.' {
				masks[y*doc.Width+x] = 0xFF
			}
		}
	}
	return &Source{
		W: doc.Width, H: doc.Height, Masks: masks,
		SX: doc.Start[0], SY: doc.Start[1],
		TX: doc.Target[0], TY: doc.Target[1],
	}, nil
}
