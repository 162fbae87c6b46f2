package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// AldousBroder carves a maze with a uniform random walk: starting anywhere,
// it repeatedly steps to a random structural neighbor, linking each step
// that enters an unvisited cell. The walk continues until every cell has
// been visited, which yields an unbiased uniform spanning tree. Expected
// running time is worse than linear on large grids; the walk itself is a
// flat loop, never recursion.
func AldousBroder(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())

	pos := maze.RandomPosition(g, rng)
	visited[pos] = true
	unvisited := g.Size() - 1

	for unvisited > 0 {
		next := choose(rng, g.Neighbors(pos))
		if !visited[next] {
			if err := g.Link(pos, next); err != nil {
				return err
			}
			visited[next] = true
			unvisited--
		}
		pos = next
	}
	return nil
}
