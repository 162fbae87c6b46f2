package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// SVG renders a maze as a vector image. Rectangular grids use the pixel
// layout of the classic raster renderer (cells separated by full-thickness
// walls); polar grids are drawn as concentric rings with arc and spoke
// walls. The output converts cleanly with [ToPNG] and [ToPDF].
func SVG(g maze.Grid, style Style) ([]byte, error) {
	switch t := g.(type) {
	case *maze.RectGrid:
		return rectSVG(t, style), nil
	case *maze.PolarGrid:
		return polarSVG(t, style), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no svg renderer for grid type %T", g)
	}
}

// maxWeight returns the largest solver weight on the grid, 0 when nothing
// has been solved.
func maxWeight(g maze.Grid) int {
	max := 0
	for _, p := range g.Positions() {
		cell, _ := g.Cell(p)
		if w := cell.Weight(); w > max {
			max = w
		}
	}
	return max
}

// cellFill decides the fill for a single cell, ok=false for plain
// background.
func cellFill(cell *maze.Cell, style Style, max int) (colorful.Color, bool) {
	if style.DrawSolution && cell.InSolution() {
		return style.Solution, true
	}
	if style.HeatMap {
		return style.Color(cell.Weight(), max), true
	}
	return colorful.Color{}, false
}

func rectSVG(g *maze.RectGrid, style Style) []byte {
	cell, wall := style.CellSize, style.WallThickness
	width := g.Width()*cell + (g.Width()+1)*wall
	height := g.Height()*cell + (g.Height()+1)*wall

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, height, style.Background.Hex())

	max := maxWeight(g)
	for _, pos := range g.Positions() {
		c, _ := g.Cell(pos)
		fill, ok := cellFill(c, style, max)
		if !ok {
			continue
		}

		// Extend the fill over the passage toward linked east and south
		// neighbors so corridors read as continuous.
		x := pos.Col*(cell+wall) + wall
		y := pos.Row*(cell+wall) + wall
		w, h := cell, cell
		if east, exists := g.East(pos); exists && g.IsLinked(pos, east) {
			w += wall
		}
		if south, exists := g.South(pos); exists && g.IsLinked(pos, south) {
			h += wall
		}
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x, y, w, h, fill.Hex())
	}

	wallHex := style.Wall.Hex()
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, wall, wallHex)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", wall, height, wallHex)

	for _, pos := range g.Positions() {
		if east, ok := g.East(pos); !ok || !g.IsLinked(pos, east) {
			x := (pos.Col + 1) * (cell + wall)
			y := pos.Row * (cell + wall)
			fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x, y, wall, cell+2*wall, wallHex)
		}
		if south, ok := g.South(pos); !ok || !g.IsLinked(pos, south) {
			x := pos.Col * (cell + wall)
			y := (pos.Row + 1) * (cell + wall)
			fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x, y, cell+2*wall, wall, wallHex)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func polarSVG(g *maze.PolarGrid, style Style) []byte {
	cell := float64(style.CellSize)
	wall := float64(style.WallThickness)
	radius := float64(g.Rings()) * cell
	size := 2 * (radius + wall)
	cx, cy := size/2, size/2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", size, size, style.Background.Hex())

	max := maxWeight(g)
	for _, pos := range g.Positions() {
		c, _ := g.Cell(pos)
		fill, ok := cellFill(c, style, max)
		if !ok {
			continue
		}
		if pos.Row == 0 {
			fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				cx, cy, cell, fill.Hex())
			continue
		}
		writeSector(&buf, cx, cy, pos, g, cell, fill.Hex())
	}

	wallHex := style.Wall.Hex()
	for _, pos := range g.Positions() {
		if pos.Row == 0 {
			continue
		}
		cols := g.ColumnCount(pos.Row)
		theta := 2 * math.Pi / float64(cols)
		a1 := float64(pos.Col) * theta
		a2 := a1 + theta
		inner := float64(pos.Row) * cell
		outer := inner + cell

		if in, ok := g.Inward(pos); ok && !g.IsLinked(pos, in) {
			x1, y1 := polarXY(cx, cy, inner, a1)
			x2, y2 := polarXY(cx, cy, inner, a2)
			fmt.Fprintf(&buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f" stroke="%s" stroke-width="%.1f" fill="none"/>`+"\n",
				x1, y1, inner, inner, x2, y2, wallHex, wall)
		}
		if cw, ok := g.Clockwise(pos); ok && !g.IsLinked(pos, cw) {
			x1, y1 := polarXY(cx, cy, inner, a2)
			x2, y2 := polarXY(cx, cy, outer, a2)
			fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
				x1, y1, x2, y2, wallHex, wall)
		}
	}

	fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" stroke="%s" stroke-width="%.1f" fill="none"/>`+"\n",
		cx, cy, radius, wallHex, wall)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeSector fills one annular sector: inner arc out, spoke, outer arc
// back, close.
func writeSector(buf *bytes.Buffer, cx, cy float64, pos maze.Position, g *maze.PolarGrid, cell float64, hex string) {
	cols := g.ColumnCount(pos.Row)
	theta := 2 * math.Pi / float64(cols)
	a1 := float64(pos.Col) * theta
	a2 := a1 + theta
	inner := float64(pos.Row) * cell
	outer := inner + cell

	ix1, iy1 := polarXY(cx, cy, inner, a1)
	ix2, iy2 := polarXY(cx, cy, inner, a2)
	ox1, oy1 := polarXY(cx, cy, outer, a1)
	ox2, oy2 := polarXY(cx, cy, outer, a2)

	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f Z" fill="%s"/>`+"\n",
		ix1, iy1, inner, inner, ix2, iy2, ox2, oy2, outer, outer, ox1, oy1, hex)
}

func polarXY(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}
