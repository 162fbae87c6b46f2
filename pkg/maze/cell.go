package maze

import "slices"

// Cell is a single node of the maze graph. It records which neighbor
// positions it is linked to, the distance weight stamped by the most recent
// solve pass, and whether it lies on the most recently computed solution
// path. A Cell never owns or points at other Cells; the Grid owns all of
// them flatly.
type Cell struct {
	pos        Position
	links      map[Position]struct{}
	weight     int
	inSolution bool
}

func newCell(pos Position) *Cell {
	return &Cell{pos: pos, links: make(map[Position]struct{})}
}

// Pos returns the cell's own position.
func (c *Cell) Pos() Position { return c.pos }

// Links returns the linked neighbor positions in sorted (row-major) order.
// The slice is freshly allocated; callers may keep it.
func (c *Cell) Links() []Position {
	out := make([]Position, 0, len(c.links))
	for p := range c.links {
		out = append(out, p)
	}
	slices.SortFunc(out, Position.Compare)
	return out
}

// LinkCount returns the number of links, the cell's degree in the maze graph.
func (c *Cell) LinkCount() int { return len(c.links) }

// IsLinkedPos reports whether the cell is linked to the given position.
func (c *Cell) IsLinkedPos(p Position) bool {
	_, ok := c.links[p]
	return ok
}

// Weight returns the distance stamped by the most recent solve pass.
// It is zero until a pass has run.
func (c *Cell) Weight() int { return c.weight }

// SetWeight updates the cell's distance weight.
func (c *Cell) SetWeight(w int) { c.weight = w }

// InSolution reports whether the cell is on the most recently computed
// solution path.
func (c *Cell) InSolution() bool { return c.inSolution }

// MarkInSolution flags the cell as part of the current solution path.
func (c *Cell) MarkInSolution() { c.inSolution = true }

// ClearSolution removes the cell from the solution path.
func (c *Cell) ClearSolution() { c.inSolution = false }

// link records a one-directional link. Grid.Link calls it on both endpoints
// to preserve symmetry; it is unexported so symmetry cannot be broken from
// outside the package.
func (c *Cell) link(p Position) { c.links[p] = struct{}{} }

// unlink removes a one-directional link. No-op if absent.
func (c *Cell) unlink(p Position) { delete(c.links, p) }
