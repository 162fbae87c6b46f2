package solve

import (
	"slices"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// Solve computes a shortest path from start to target over the link graph,
// marks every position on it as in-solution (clearing marks from any
// previous solve), and returns the path ordered start → target.
//
// It fails with INVALID_POSITION if either endpoint is outside the grid and
// with UNREACHABLE if target is not connected to start. The latter cannot
// happen on an intact generated maze and signals upstream corruption.
//
// Reconstruction walks backward from target, stepping to any linked
// neighbor whose distance is exactly one less. Ties between equal-distance
// neighbors resolve to the first in sorted link order, so the chosen path
// is deterministic even on braided grids with several shortest paths.
func Solve(g maze.Grid, start, target maze.Position) ([]maze.Position, error) {
	if !g.Contains(start) {
		return nil, errors.New(errors.ErrCodeInvalidPosition, "start %s is outside the grid", start)
	}
	if !g.Contains(target) {
		return nil, errors.New(errors.ErrCodeInvalidPosition, "target %s is outside the grid", target)
	}

	clearSolution(g)

	dist, err := DistancesFrom(g, start)
	if err != nil {
		return nil, err
	}
	if _, ok := dist[target]; !ok {
		return nil, errors.New(errors.ErrCodeUnreachable, "target %s is not connected to start %s", target, start)
	}

	path := []maze.Position{target}
	current := target
	for current != start {
		cell, _ := g.Cell(current)

		var stepped bool
		for _, link := range cell.Links() {
			if d, ok := dist[link]; ok && d == dist[current]-1 {
				current = link
				path = append(path, link)
				stepped = true
				break
			}
		}
		if !stepped {
			// Distances guarantee a descending neighbor exists; reaching
			// this means the grid mutated mid-solve.
			return nil, errors.New(errors.ErrCodeUnreachable, "no descending link from %s", current)
		}
	}

	slices.Reverse(path)
	for _, p := range path {
		cell, _ := g.Cell(p)
		cell.MarkInSolution()
	}
	return path, nil
}

// clearSolution removes in-solution marks left by a previous pass.
func clearSolution(g maze.Grid) {
	for _, p := range g.Positions() {
		cell, _ := g.Cell(p)
		cell.ClearSolution()
	}
}

// FurthestCorners returns the pair of corner positions with the greatest
// link-graph distance between them, computed by running a distance map
// from each corner. For a fixed maze the result is deterministic: corners
// are scanned in their fixed order and only a strictly greater distance
// replaces the current best.
func FurthestCorners(g *maze.RectGrid) (from, to maze.Position, err error) {
	corners := g.Corners()

	var (
		bestFrom, bestTo maze.Position
		bestDist         = -1
	)
	for _, c := range corners {
		dist, err := DistancesFrom(g, c)
		if err != nil {
			return maze.Position{}, maze.Position{}, err
		}
		for _, o := range corners {
			if d, ok := dist[o]; ok && d > bestDist {
				bestFrom, bestTo, bestDist = c, o, d
			}
		}
	}

	if bestDist < 0 {
		return maze.Position{}, maze.Position{}, errors.New(errors.ErrCodeUnreachable, "no corner pair is connected")
	}
	return bestFrom, bestTo, nil
}

// FurthestOnRim returns the outermost-ring position with the greatest
// distance from the reference position, breaking ties toward the earlier
// rim position in traversal order.
func FurthestOnRim(g *maze.PolarGrid, from maze.Position) (maze.Position, error) {
	dist, err := DistancesFrom(g, from)
	if err != nil {
		return maze.Position{}, err
	}

	var (
		best     maze.Position
		bestDist = -1
	)
	for _, p := range g.Rim() {
		if d, ok := dist[p]; ok && d > bestDist {
			best, bestDist = p, d
		}
	}

	if bestDist < 0 {
		return maze.Position{}, errors.New(errors.ErrCodeUnreachable, "no rim position reachable from %s", from)
	}
	return best, nil
}
