package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// SimplifiedPrims carves a maze by growing a frontier of active cells.
// Each round picks a random active cell; if it has unvisited neighbors one
// is linked at random and joins the frontier, otherwise the cell retires.
// Equivalent to Prim's algorithm with all edge weights equal.
func SimplifiedPrims(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())

	start := maze.RandomPosition(g, rng)
	visited[start] = true
	active := newActiveSet(start)

	for active.len() > 0 {
		idx := rng.Intn(active.len())
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

// TruePrims carves a maze the way Prim's algorithm grows a minimum
// spanning tree: every cell gets a random cost up front, and each round
// expands from the cheapest active cell into its cheapest unvisited
// neighbor. Costs are assigned in traversal order so the maze is a pure
// function of the seed. Ties break toward the earlier position.
func TruePrims(g maze.Grid, rng *rand.Rand) error {
	costs := make(map[maze.Position]int, g.Size())
	for _, p := range g.Positions() {
		costs[p] = rng.Intn(100)
	}

	visited := make(map[maze.Position]bool, g.Size())

	start := maze.RandomPosition(g, rng)
	visited[start] = true
	active := newActiveSet(start)

	for active.len() > 0 {
		idx := cheapest(active.items, costs)
		pos := active.at(idx)

		candidates := unvisitedNeighbors(g, visited, pos)
		if len(candidates) == 0 {
			active.remove(idx)
			continue
		}

		next := candidates[cheapest(candidates, costs)]
		if err := g.Link(pos, next); err != nil {
			return err
		}
		visited[next] = true
		active.add(next)
	}
	return nil
}

// cheapest returns the index of the lowest-cost position. First occurrence
// wins on ties, keeping selection deterministic.
func cheapest(positions []maze.Position, costs map[maze.Position]int) int {
	best := 0
	for i, p := range positions {
		if costs[p] < costs[positions[best]] {
			best = i
		}
	}
	return best
}

// activeSet is an insertion-ordered frontier. Ordering matters: random and
// minimum selections index into the slice, so iteration must not depend on
// map order.
type activeSet struct {
	items []maze.Position
}

func newActiveSet(start maze.Position) *activeSet {
	return &activeSet{items: []maze.Position{start}}
}

func (s *activeSet) len() int               { return len(s.items) }
func (s *activeSet) at(i int) maze.Position { return s.items[i] }
func (s *activeSet) add(p maze.Position)    { s.items = append(s.items, p) }
func (s *activeSet) remove(i int)           { s.items = append(s.items[:i], s.items[i+1:]...) }
