package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// SelectFunc picks the index of the next frontier cell to expand. The
// frontier slice is in insertion order and always non-empty.
type SelectFunc func(active []maze.Position, rng *rand.Rand) int

// SelectRandom expands a uniformly random frontier cell, which makes
// GrowingTree behave like [SimplifiedPrims].
func SelectRandom(active []maze.Position, rng *rand.Rand) int {
	return rng.Intn(len(active))
}

// SelectLast expands the most recently added cell, which makes GrowingTree
// behave like the backtracker.
func SelectLast(active []maze.Position, _ *rand.Rand) int {
	return len(active) - 1
}

// SelectMixed flips a coin between [SelectLast] and [SelectRandom],
// blending corridor length and branching.
func SelectMixed(active []maze.Position, rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return SelectLast(active, rng)
	}
	return SelectRandom(active, rng)
}

// GrowingTree carves a maze by repeatedly selecting a frontier cell with
// sel and linking it to a random unvisited neighbor; cells with no
// unvisited neighbors leave the frontier. The selection policy is the only
// difference between several classic algorithms, so it is injectable.
func GrowingTree(g maze.Grid, rng *rand.Rand, sel SelectFunc) error {
	visited := make(map[maze.Position]bool, g.Size())

	start := maze.RandomPosition(g, rng)
	visited[start] = true
	active := newActiveSet(start)

	for active.len() > 0 {
		idx := sel(active.items, rng)
		pos := active.at(idx)

		candidates := unvisitedNeighbors(g, visited, pos)
		if len(candidates) == 0 {
			active.remove(idx)
			continue
		}

		next := choose(rng, candidates)
		if err := g.Link(pos, next); err != nil {
			return err
		}
		visited[next] = true
		active.add(next)
	}
	return nil
}
