// Package present implements the solution-consumer side of spec.md §6: a
// text printer and a machine-readable form, for whatever renders the
// result next (a bitmap renderer is explicitly out of scope, per spec.md
// §1).
package present

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/pathresult"
)

// Text writes a human-readable rendering of res to w.
func Text(w io.Writer, g *grid.Grid, res pathresult.Result) {
	if !res.Success {
		fmt.Fprintln(w, "no path found")
		return
	}
	fmt.Fprintf(w, "success cost=%.4f steps=%d\n", res.Cost, len(res.Path)-1)
	for i, id := range res.Path {
		x, y := g.ToXY(id)
		if i > 0 {
			fmt.Fprint(w, " -> ")
		}
		fmt.Fprintf(w, "(%d,%d)", x, y)
	}
	fmt.Fprintln(w)
}

// document is the YAML shape Structured renders.
type document struct {
	Success bool     `yaml:"success"`
	Cost    float64  `yaml:"cost,omitempty"`
	Path    [][2]int `yaml:"path,omitempty"`
}

// Structured writes res as YAML to w, for consumers that script against
// the result rather than read it.
func Structured(w io.Writer, g *grid.Grid, res pathresult.Result) error {
	doc := document{Success: res.Success, Cost: res.Cost}
	for _, id := range res.Path {
		x, y := g.ToXY(id)
		doc.Path = append(doc.Path, [2]int{x, y})
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
