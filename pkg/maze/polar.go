package maze

import (
	"math"

	"github.com/matzehuels/mazetower/pkg/errors"
)

// PolarGrid is a circular maze grid. Cells are addressed by (ring, index)
// with ring 0 a single hub cell at the center. Each outer ring subdivides
// into a multiple of its inward neighbor's cell count so that cells keep a
// roughly square aspect ratio; the subdivision factor is the rounded ratio
// of the ring's cell arc width to the ring height.
type PolarGrid struct {
	gridCore
	rings        int
	columnCounts []int
}

// NewPolar creates a polar grid with the given number of rings and no
// links. It fails with INVALID_DIMENSIONS if rings is not positive.
func NewPolar(rings int) (*PolarGrid, error) {
	if err := errors.ValidateDimensions(rings); err != nil {
		return nil, err
	}

	g := &PolarGrid{
		gridCore:     newGridCore(rings * rings),
		rings:        rings,
		columnCounts: make([]int, 0, rings),
	}

	g.addCell(Pos(0, 0))
	g.columnCounts = append(g.columnCounts, 1)

	ringHeight := 1.0 / float64(rings)
	for ring := 1; ring < rings; ring++ {
		radius := float64(ring) / float64(rings)
		circumference := 2 * math.Pi * radius

		prevCols := g.columnCounts[ring-1]
		estCellWidth := circumference / float64(prevCols)
		ratio := int(math.Round(estCellWidth / ringHeight))
		cols := ratio * prevCols

		g.columnCounts = append(g.columnCounts, cols)
		for col := 0; col < cols; col++ {
			g.addCell(Pos(ring, col))
		}
	}

	g.setNeighbors()
	return g, nil
}

// setNeighbors builds the per-cell adjacency lists. Order per cell is
// inward, outward (ascending index), clockwise, counter-clockwise; the hub
// has only outward neighbors. Like the rectangular grid, this order is part
// of the reproducibility contract for seeded generation.
func (g *PolarGrid) setNeighbors() {
	outward := make(map[Position][]Position, g.Size())
	for _, p := range g.order {
		if p.Row == 0 {
			continue
		}
		in, _ := g.Inward(p)
		outward[in] = append(outward[in], p)
	}

	for _, p := range g.order {
		var ns []Position
		if in, ok := g.Inward(p); ok {
			ns = append(ns, in)
		}
		ns = append(ns, outward[p]...)
		cw, hasCW := g.Clockwise(p)
		if hasCW {
			ns = append(ns, cw)
		}
		// On a two-cell ring the lateral neighbors coincide; list it once.
		if ccw, ok := g.CounterClockwise(p); ok && !(hasCW && ccw == cw) {
			ns = append(ns, ccw)
		}
		g.neighbors[p] = ns
	}
}

// Rings returns the number of rings.
func (g *PolarGrid) Rings() int { return g.rings }

// ColumnCount returns the number of cells in the given ring, or 0 if the
// ring does not exist.
func (g *PolarGrid) ColumnCount(ring int) int {
	if ring < 0 || ring >= len(g.columnCounts) {
		return 0
	}
	return g.columnCounts[ring]
}

// Inward returns the neighbor of p one ring toward the hub. The hub itself
// has no inward neighbor.
func (g *PolarGrid) Inward(p Position) (Position, bool) {
	if !g.Contains(p) || p.Row == 0 {
		return Position{}, false
	}
	ratio := g.columnCounts[p.Row] / g.columnCounts[p.Row-1]
	return Pos(p.Row-1, p.Col/ratio), true
}

// Clockwise returns the next cell around p's ring. Rings with a single cell
// (the hub) have no lateral neighbors.
func (g *PolarGrid) Clockwise(p Position) (Position, bool) {
	if !g.Contains(p) || g.columnCounts[p.Row] < 2 {
		return Position{}, false
	}
	return Pos(p.Row, (p.Col+1)%g.columnCounts[p.Row]), true
}

// CounterClockwise returns the previous cell around p's ring.
func (g *PolarGrid) CounterClockwise(p Position) (Position, bool) {
	if !g.Contains(p) || g.columnCounts[p.Row] < 2 {
		return Position{}, false
	}
	cols := g.columnCounts[p.Row]
	return Pos(p.Row, (p.Col-1+cols)%cols), true
}

// Outward returns the neighbors of p one ring away from the hub, in
// ascending index order. Outermost-ring cells have none.
func (g *PolarGrid) Outward(p Position) []Position {
	var out []Position
	for _, n := range g.Neighbors(p) {
		if n.Row == p.Row+1 {
			out = append(out, n)
		}
	}
	return out
}

// Rim returns the positions of the outermost ring in traversal order.
func (g *PolarGrid) Rim() []Position {
	last := g.rings - 1
	cols := g.columnCounts[last]
	rim := make([]Position, 0, cols)
	for col := 0; col < cols; col++ {
		rim = append(rim, Pos(last, col))
	}
	return rim
}
