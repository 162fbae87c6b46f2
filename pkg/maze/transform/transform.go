// Package transform post-processes generated mazes.
//
// Generators leave a perfect maze: connected, acyclic, with every leaf of
// the spanning tree a dead end. [DeadEnds] finds those leaves; [Braid]
// removes a configurable fraction of them by adding extra links, which
// introduces cycles and turns the tree into a braided maze. The solver
// handles the resulting cyclic graphs without modification.
package transform

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// DeadEnds returns every position with exactly one link, in traversal
// order. On a perfect maze these are the leaves of the spanning tree.
func DeadEnds(g maze.Grid) []maze.Position {
	var out []maze.Position
	for _, p := range g.Positions() {
		if maze.IsDeadEnd(g, p) {
			out = append(out, p)
		}
	}
	return out
}

// Braid removes dead ends by linking them to one additional structural
// neighbor. Each dead end present when Braid starts is processed with
// probability p; among its not-yet-linked neighbors, one that is itself a
// dead end is preferred, otherwise any neighbor qualifies. p = 1 removes
// every dead end that has an eligible neighbor, which leaves only
// degenerate one- and two-cell grids with dead ends.
//
// The dead-end list is snapshotted up front; a cell rescued by an earlier
// braid link in the same pass keeps its slot and may gain a second link.
func Braid(g maze.Grid, rng *rand.Rand, p float64) error {
	if err := errors.ValidateProbability(p); err != nil {
		return err
	}

	for _, pos := range DeadEnds(g) {
		if rng.Float64() >= p {
			continue
		}

		candidates := braidCandidates(g, pos)
		if len(candidates) == 0 {
			continue
		}

		choice := candidates[rng.Intn(len(candidates))]
		if err := g.Link(pos, choice); err != nil {
			return err
		}
	}
	return nil
}

// braidCandidates lists the structural neighbors of pos that are not
// already linked to it, narrowed to fellow dead ends when any exist.
func braidCandidates(g maze.Grid, pos maze.Position) []maze.Position {
	cell, ok := g.Cell(pos)
	if !ok {
		return nil
	}

	var unlinked []maze.Position
	for _, n := range g.Neighbors(pos) {
		if !cell.IsLinkedPos(n) {
			unlinked = append(unlinked, n)
		}
	}

	var best []maze.Position
	for _, n := range unlinked {
		if maze.IsDeadEnd(g, n) {
			best = append(best, n)
		}
	}
	if len(best) > 0 {
		return best
	}
	return unlinked
}
