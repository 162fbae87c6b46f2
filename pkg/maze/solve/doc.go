// Package solve computes distances and shortest paths over carved mazes.
//
// # Overview
//
// All links have uniform cost, so Dijkstra's algorithm degenerates to a
// breadth-first frontier expansion. [DistancesFrom] produces a
// [DistanceMap] and stamps each cell's weight for renderers;
// [Solve] reconstructs a shortest path and marks it on the grid;
// [FurthestCorners] and [FurthestOnRim] answer furthest-point queries used
// to pick interesting start/target pairs.
//
// The expansion is iterative with a heap-allocated frontier; grid sizes
// are externally supplied, so recursion depth proportional to maze size is
// treated as a correctness bug. Braided (cyclic) grids are handled by the
// visited set; distances keep standard shortest-path semantics on cyclic
// undirected graphs.
//
// Solving never mutates links. The only grid side effects are cell weights
// and in-solution flags, both of which renderers consume read-only.
package solve
