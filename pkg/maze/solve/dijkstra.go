package solve

import (
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// DistanceMap records link-graph distances from a single source position.
// It is transient: each solve pass builds a fresh map, nothing is persisted
// on the grid beyond the per-cell weight stamp.
type DistanceMap map[maze.Position]int

// Distance returns the distance to p and whether p was reachable from the
// source.
func (m DistanceMap) Distance(p maze.Position) (int, bool) {
	d, ok := m[p]
	return d, ok
}

// Max returns the reachable position with the greatest distance, breaking
// ties toward the smaller position in traversal order. The boolean is
// false for an empty map.
func (m DistanceMap) Max() (maze.Position, int, bool) {
	var (
		best     maze.Position
		bestDist = -1
	)
	for p, d := range m {
		if d > bestDist || (d == bestDist && p.Less(best)) {
			best, bestDist = p, d
		}
	}
	return best, bestDist, bestDist >= 0
}

// DistancesFrom expands a breadth-first frontier over the link graph from
// start and returns the resulting distance map. Every reached cell also
// gets its weight stamped so renderers can color by distance. Cells not
// connected to start are absent from the map.
//
// The frontier lives on the heap and the expansion is a flat loop;
// memory is bounded by grid size, never by call depth. Cycles introduced
// by braiding are skipped via the distance map itself.
func DistancesFrom(g maze.Grid, start maze.Position) (DistanceMap, error) {
	if !g.Contains(start) {
		return nil, errors.New(errors.ErrCodeInvalidPosition, "start %s is outside the grid", start)
	}

	dist := make(DistanceMap, g.Size())
	dist[start] = 0

	frontier := []maze.Position{start}
	for d := 1; len(frontier) > 0; d++ {
		var next []maze.Position
		for _, pos := range frontier {
			cell, _ := g.Cell(pos)
			cell.SetWeight(dist[pos])

			for _, link := range cell.Links() {
				if _, seen := dist[link]; seen {
					continue
				}
				dist[link] = d
				next = append(next, link)
			}
		}
		frontier = next
	}

	return dist, nil
}
