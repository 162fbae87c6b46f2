package maze

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/errors"
)

// Grid is the owning container for a maze's cells plus the topology rule
// that decides which positions are structural neighbors (linkable). The two
// implementations are [RectGrid] and [PolarGrid].
//
// A Grid is not safe for concurrent mutation. Generation, post-processing
// and solving run strictly one after another; renderers only read.
type Grid interface {
	// Contains reports whether the position exists in the grid.
	Contains(p Position) bool

	// Cell returns the cell at p, or false if p is outside the grid.
	Cell(p Position) (*Cell, bool)

	// Neighbors returns the structural neighbors of p in a fixed
	// topology-specific order, independent of link state. Empty if p is
	// outside the grid.
	Neighbors(p Position) []Position

	// Positions enumerates every position in deterministic traversal order:
	// row-major for rectangular grids, ring-then-index for polar grids.
	Positions() []Position

	// Size returns the number of cells.
	Size() int

	// Link marks a and b as linked in both directions. It fails with
	// INVALID_LINK if the two are not structural neighbors.
	Link(a, b Position) error

	// Unlink removes the link between a and b in both directions. It fails
	// with INVALID_LINK for non-neighbors and is a no-op for unlinked
	// neighbors.
	Unlink(a, b Position) error

	// IsLinked reports whether a and b are linked. Symmetric by
	// construction.
	IsLinked(a, b Position) bool
}

// gridCore holds the cell storage and link bookkeeping shared by both
// topologies. The topology constructors populate cells, order and the
// per-cell neighbor lists once; everything afterwards is lookups.
type gridCore struct {
	cells     map[Position]*Cell
	order     []Position
	neighbors map[Position][]Position
}

func newGridCore(capacity int) gridCore {
	return gridCore{
		cells:     make(map[Position]*Cell, capacity),
		order:     make([]Position, 0, capacity),
		neighbors: make(map[Position][]Position, capacity),
	}
}

// addCell registers a cell in traversal order. Constructor use only.
func (g *gridCore) addCell(p Position) {
	g.cells[p] = newCell(p)
	g.order = append(g.order, p)
}

func (g *gridCore) Contains(p Position) bool {
	_, ok := g.cells[p]
	return ok
}

func (g *gridCore) Cell(p Position) (*Cell, bool) {
	c, ok := g.cells[p]
	return c, ok
}

func (g *gridCore) Neighbors(p Position) []Position {
	return g.neighbors[p]
}

func (g *gridCore) Positions() []Position {
	return g.order
}

func (g *gridCore) Size() int {
	return len(g.cells)
}

func (g *gridCore) Link(a, b Position) error {
	if err := g.checkNeighbors(a, b); err != nil {
		return err
	}
	g.cells[a].link(b)
	g.cells[b].link(a)
	return nil
}

func (g *gridCore) Unlink(a, b Position) error {
	if err := g.checkNeighbors(a, b); err != nil {
		return err
	}
	g.cells[a].unlink(b)
	g.cells[b].unlink(a)
	return nil
}

func (g *gridCore) IsLinked(a, b Position) bool {
	c, ok := g.cells[a]
	if !ok {
		return false
	}
	return c.IsLinkedPos(b)
}

// checkNeighbors verifies that a and b exist and are mutual structural
// neighbors. Neighbor lists are built symmetrically at construction, so
// checking one direction suffices.
func (g *gridCore) checkNeighbors(a, b Position) error {
	if !g.Contains(a) || !g.Contains(b) {
		return errors.New(errors.ErrCodeInvalidLink, "position %s or %s is outside the grid", a, b)
	}
	for _, n := range g.neighbors[a] {
		if n == b {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidLink, "%s and %s are not structural neighbors", a, b)
}

// Degree returns the number of links at p, or 0 if p is outside the grid.
func Degree(g Grid, p Position) int {
	c, ok := g.Cell(p)
	if !ok {
		return 0
	}
	return c.LinkCount()
}

// HasLinks reports whether the cell at p has at least one link. Generators
// use this as the "visited" test when carving into a previously linked
// region.
func HasLinks(g Grid, p Position) bool {
	return Degree(g, p) > 0
}

// IsDeadEnd reports whether p has exactly one link. Cells with no structural
// neighbors at all (single-cell grids, the polar hub of a one-ring grid)
// can never reach degree one and are therefore never dead ends.
func IsDeadEnd(g Grid, p Position) bool {
	return Degree(g, p) == 1
}

// RandomPosition picks a uniformly random position using the supplied
// source. Selection is over the deterministic traversal order, so a fixed
// seed always picks the same position.
func RandomPosition(g Grid, rng *rand.Rand) Position {
	order := g.Positions()
	return order[rng.Intn(len(order))]
}
