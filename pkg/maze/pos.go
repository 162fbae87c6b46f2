package maze

import "fmt"

// Position identifies a cell within a grid. It is a comparable value type
// usable as a map key. Rectangular grids interpret it as (row, column);
// polar grids interpret Row as the ring index and Col as the cell index
// within the ring.
type Position struct {
	Row int
	Col int
}

// Pos is a shorthand constructor for Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Compare returns -1, 0 or 1 ordering positions row-major. This order
// matches grid traversal order for both topologies and is used wherever a
// deterministic tie-break is required.
func (p Position) Compare(o Position) int {
	switch {
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before o in row-major order.
func (p Position) Less(o Position) bool {
	return p.Compare(o) < 0
}

// String formats the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}
