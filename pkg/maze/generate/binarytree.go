package generate

import (
	"math/rand"

	"github.com/matzehuels/mazetower/pkg/maze"
)

// BinaryTree carves a maze by visiting every cell in traversal order and
// linking it to its north or east neighbor, chosen at random when both
// exist. Cells on the north edge always link east and cells on the east
// edge always link north, which makes those two edges open corridors and
// biases paths toward the north-east corner. Single pass, O(n).
func BinaryTree(g *maze.RectGrid, rng *rand.Rand) error {
	for _, p := range g.Positions() {
		var choices []maze.Position
		if n, ok := g.North(p); ok {
			choices = append(choices, n)
		}
		if e, ok := g.East(p); ok {
			choices = append(choices, e)
		}
		if len(choices) == 0 {
			continue
		}
		if err := g.Link(p, choose(rng, choices)); err != nil {
			return err
		}
	}
	return nil
}
