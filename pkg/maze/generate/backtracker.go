package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Backtracker carves a maze depth-first using an explicit heap-allocated
// stack: while the cell on top of the stack has unvisited neighbors, one is
// picked at random, linked and pushed; otherwise the cell is popped. Memory
// use is bounded by the grid size, not by call depth, which makes this the
// form to use for externally supplied (unbounded) grid sizes.
//
// For the same grid and seed, Backtracker and [RecursiveBacktracker]
// produce identical mazes.
func Backtracker(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())

	start := maze.RandomPosition(g, rng)
	visited[start] = true
	stack := []maze.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := unvisitedNeighbors(g, visited, current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := choose(rng, candidates)
		if err := g.Link(current, next); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}
	return nil
}

// RecursiveBacktracker is the call-stack form of [Backtracker], kept for
// its direct correspondence with the textbook definition. Stack depth grows
// with the longest carved corridor, so prefer [Backtracker] for large or
// externally sized grids.
func RecursiveBacktracker(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())

	var carve func(current maze.Position) error
	carve = func(current maze.Position) error {
		for {
			candidates := unvisitedNeighbors(g, visited, current)
			if len(candidates) == 0 {
				return nil
			}

			next := choose(rng, candidates)
			if err := g.Link(current, next); err != nil {
				return err
			}
			visited[next] = true
			if err := carve(next); err != nil {
				return err
			}
		}
	}

	start := maze.RandomPosition(g, rng)
	visited[start] = true
	return carve(start)
}
