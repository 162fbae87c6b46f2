package maze

import "github.com/matzehuels/mazetower/pkg/errors"

// RectGrid is a rectangular maze grid. Cells are addressed by (row, column)
// with row 0 at the top, and traversed row-major.
type RectGrid struct {
	gridCore
	width  int
	height int
}

// NewRect creates a width × height rectangular grid with no links. It fails
// with INVALID_DIMENSIONS if either extent is not positive.
func NewRect(width, height int) (*RectGrid, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	g := &RectGrid{
		gridCore: newGridCore(width * height),
		width:    width,
		height:   height,
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.addCell(Pos(row, col))
		}
	}

	// Neighbor order is north, south, east, west. Generators index into
	// this list with the injected random source, so the order is part of
	// the reproducibility contract.
	for _, p := range g.order {
		var ns []Position
		if n, ok := g.North(p); ok {
			ns = append(ns, n)
		}
		if s, ok := g.South(p); ok {
			ns = append(ns, s)
		}
		if e, ok := g.East(p); ok {
			ns = append(ns, e)
		}
		if w, ok := g.West(p); ok {
			ns = append(ns, w)
		}
		g.neighbors[p] = ns
	}

	return g, nil
}

// Width returns the number of columns.
func (g *RectGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *RectGrid) Height() int { return g.height }

// North returns the position directly above p, if it exists.
func (g *RectGrid) North(p Position) (Position, bool) {
	n := Pos(p.Row-1, p.Col)
	return n, g.Contains(p) && p.Row > 0
}

// South returns the position directly below p, if it exists.
func (g *RectGrid) South(p Position) (Position, bool) {
	s := Pos(p.Row+1, p.Col)
	return s, g.Contains(p) && p.Row < g.height-1
}

// East returns the position directly right of p, if it exists.
func (g *RectGrid) East(p Position) (Position, bool) {
	e := Pos(p.Row, p.Col+1)
	return e, g.Contains(p) && p.Col < g.width-1
}

// West returns the position directly left of p, if it exists.
func (g *RectGrid) West(p Position) (Position, bool) {
	w := Pos(p.Row, p.Col-1)
	return w, g.Contains(p) && p.Col > 0
}

// Corners returns the four extreme positions in a fixed order: top-left,
// top-right, bottom-left, bottom-right. Degenerate grids (1×1, 1×n) repeat
// positions; the solver's furthest-corner search tolerates that.
func (g *RectGrid) Corners() []Position {
	return []Position{
		Pos(0, 0),
		Pos(0, g.width-1),
		Pos(g.height-1, 0),
		Pos(g.height-1, g.width-1),
	}
}
