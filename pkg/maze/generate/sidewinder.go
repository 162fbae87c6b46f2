package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// Sidewinder carves a maze row by row. Each row accumulates a run of
// eastward-linked cells; at each cell a biased coin decides whether to keep
// extending east or to close the run by linking one random member to its
// north neighbor. The top row has no north neighbors and becomes a single
// open corridor. Runs also close at the east edge.
func Sidewinder(g *maze.RectGrid, rng *rand.Rand) error {
	for row := 0; row < g.Height(); row++ {
		var run []maze.Position

		for col := 0; col < g.Width(); col++ {
			p := maze.Pos(row, col)
			run = append(run, p)

			east, hasEast := g.East(p)
			_, hasNorth := g.North(p)

			// Same closing bias as the original: one in three.
			endRun := !hasEast || (hasNorth && rng.Intn(3) == 0)

			if endRun {
				member := choose(rng, run)
				if n, ok := g.North(member); ok {
					if err := g.Link(member, n); err != nil {
						return err
					}
				}
				run = run[:0]
			} else {
				if err := g.Link(p, east); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
