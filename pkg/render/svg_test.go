package render

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/maze/generate"
	"github.com/matzehuels/mazetower/pkg/maze/solve"
)

func TestRectSVGStructure(t *testing.T) {
	g, err := maze.NewRect(3, 2)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	link(t, g, maze.Pos(0, 0), maze.Pos(0, 1))

	out, err := SVG(g, DefaultStyle())
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg := string(out)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element: %.60s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}
	// 3x30 cells + 4x5 walls = 110 wide, 2x30 + 3x5 = 75 high.
	if !strings.Contains(svg, `viewBox="0 0 110 75"`) {
		t.Errorf("unexpected viewBox in %.120s", svg)
	}
	if got := strings.Count(svg, "<rect"); got == 0 {
		t.Error("no wall rects emitted")
	}
}

func TestRectSVGHeatAndSolution(t *testing.T) {
	g, err := maze.NewRect(4, 4)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	if err := generate.Backtracker(g, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("Backtracker: %v", err)
	}
	if _, err := solve.Solve(g, maze.Pos(0, 0), maze.Pos(3, 3)); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	plain, err := SVG(g, DefaultStyle())
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	decorated, err := SVG(g, NewStyle(WithHeatMap(), WithSolution()))
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}

	if len(decorated) <= len(plain) {
		t.Error("heat map and solution overlay emitted no extra fills")
	}
	if !bytes.Contains(decorated, []byte(DefaultStyle().Solution.Hex())) {
		t.Error("solution color absent from decorated output")
	}
}

func TestPolarSVGStructure(t *testing.T) {
	g, err := maze.NewPolar(3)
	if err != nil {
		t.Fatalf("NewPolar: %v", err)
	}
	if err := generate.HuntAndKill(g, rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("HuntAndKill: %v", err)
	}

	out, err := SVG(g, DefaultStyle())
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg := string(out)

	if !strings.Contains(svg, "<circle") {
		t.Error("polar output missing boundary circle")
	}
	if !strings.Contains(svg, "<path") && !strings.Contains(svg, "<line") {
		t.Error("polar output has no interior walls for a carved 3-ring maze")
	}
}

func TestHeatColorBounds(t *testing.T) {
	if c := HeatColor(0, 0); !c.IsValid() {
		t.Error("HeatColor(0,0) out of gamut")
	}
	near := HeatColor(0, 10)
	far := HeatColor(10, 10)
	if near == far {
		t.Error("palette endpoints must differ")
	}
	if !HeatColor(5, 10).IsValid() {
		t.Error("midpoint out of gamut")
	}
}
