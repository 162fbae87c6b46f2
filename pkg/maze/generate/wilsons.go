package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Wilsons carves a maze with loop-erased random walks. One random cell
// seeds the visited set; each round starts a walk from a random unvisited
// cell and steps to random structural neighbors. If the walk crosses
// itself, the loop it just closed is erased; when it reaches any visited
// cell, the surviving path is linked in and all its cells become visited.
// The result is an unbiased uniform spanning tree with better expected
// performance than Aldous-Broder on large grids. The walk path lives in a
// heap slice indexed by position, bounded by grid size.
func Wilsons(g maze.Grid, rng *rand.Rand) error {
	visited := make(map[maze.Position]bool, g.Size())
	visited[maze.RandomPosition(g, rng)] = true

	for {
		remaining := unvisitedPositions(g, visited)
		if len(remaining) == 0 {
			return nil
		}

		start := choose(rng, remaining)
		if err := walk(g, rng, visited, start); err != nil {
			return err
		}
	}
}

// walk performs one loop-erased random walk from start until it touches
// the visited region, then links the path into the maze.
func walk(g maze.Grid, rng *rand.Rand, visited map[maze.Position]bool, start maze.Position) error {
	path := []maze.Position{start}
	onPath := map[maze.Position]int{start: 0}

	for {
		current := path[len(path)-1]
		next := choose(rng, g.Neighbors(current))

		if visited[next] {
			path = append(path, next)
			for i := 0; i < len(path)-1; i++ {
				if err := g.Link(path[i], path[i+1]); err != nil {
					return err
				}
				visited[path[i]] = true
			}
			return nil
		}

		if i, ok := onPath[next]; ok {
			// Erase the loop the walk just closed.
			for _, p := range path[i+1:] {
				delete(onPath, p)
			}
			path = path[:i+1]
			continue
		}

		onPath[next] = len(path)
		path = append(path, next)
	}
}
