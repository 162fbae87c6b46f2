package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// HuntAndKill carves a maze with a random walk that links each step into an
// unvisited neighbor. When the walk gets stuck it "hunts": scans traversal
// order for the first unvisited cell adjacent to the visited region, links
// it to one random visited neighbor and resumes walking from there. The
// generator terminates when no unvisited cell borders the visited region,
// which on a connected topology means every cell is visited.
func HuntAndKill(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())

	current := maze.RandomPosition(g, rng)
	visited[current] = true

	for {
		if candidates := unvisitedNeighbors(g, visited, current); len(candidates) > 0 {
			next := choose(rng, candidates)
			if err := g.Link(current, next); err != nil {
				return err
			}
			visited[next] = true
			current = next
			continue
		}

		next, linkable, ok := hunt(g, visited)
		if !ok {
			return nil
		}
		if err := g.Link(next, choose(rng, linkable)); err != nil {
			return err
		}
		visited[next] = true
		current = next
	}
}

// hunt finds the first unvisited position (traversal order) that touches
// the visited region, together with its visited neighbors. Returns
// ok=false when the visited region has no frontier left.
func hunt(g maze.Grid, visited map[maze.Position]bool) (pos maze.Position, linkable []maze.Position, ok bool) {
	for _, p := range g.Positions() {
		if visited[p] {
			continue
		}
		for _, n := range g.Neighbors(p) {
			if visited[n] {
				linkable = append(linkable, n)
			}
		}
		if len(linkable) > 0 {
			return p, linkable, true
		}
	}
	return maze.Position{}, nil, false
}
