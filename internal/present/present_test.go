package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wrenfield/gridstar/internal/grid"
	"github.com/wrenfield/gridstar/internal/pathresult"
)

func smallGrid(t *testing.T) *grid.Grid {
	t.Helper()
	masks := make([]grid.Mask, 9)
	for i := range masks {
		masks[i] = 0xFF
	}
	g, err := grid.New(3, 3, masks)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

func TestTextFailure(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, smallGrid(t), pathresult.Result{Success: false})
	if !strings.Contains(buf.String(), "no path found") {
		t.Errorf("expected failure message, got %q", buf.String())
	}
}

func TestTextSuccess(t *testing.T) {
	g := smallGrid(t)
	var buf bytes.Buffer
	res := pathresult.Result{Success: true, Cost: 2.828, Path: []int{g.ToID(0, 0), g.ToID(1, 1), g.ToID(2, 2)}}
	Text(&buf, g, res)
	out := buf.String()
	if !strings.Contains(out, "(0,0) -> (1,1) -> (2,2)") {
		t.Errorf("expected rendered path, got %q", out)
	}
}

func TestStructuredWritesSuccessField(t *testing.T) {
	g := smallGrid(t)
	res := pathresult.Result{Success: true, Cost: 1.414, Path: []int{g.ToID(0, 0), g.ToID(1, 1)}}
	var buf bytes.Buffer
	if err := Structured(&buf, g, res); err != nil {
		t.Fatalf("Structured: %v", err)
	}
	if !strings.Contains(buf.String(), "success: true") {
		t.Errorf("expected YAML success field, got %q", buf.String())
	}
}
