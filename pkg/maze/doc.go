// Package maze provides the core grid abstraction for maze generation.
//
// # Overview
//
// A maze is an undirected graph carved into a fixed spatial topology. The
// package models this with three layers:
//
//   - [Position]: a value-type coordinate with a total order. Rectangular
//     grids read it as (row, column); polar grids as (ring, index).
//   - [Cell]: a graph node owning its set of linked neighbor positions, a
//     weight (distance from the most recent solve source) and an
//     in-solution flag. Cells reference each other by Position only, never
//     by pointer, so the graph stays flat even after braiding adds cycles.
//   - [Grid]: the owning container mapping Position → Cell together with the
//     topology's structural-adjacency rule. [RectGrid] and [PolarGrid] are
//     the two concrete topologies.
//
// # Invariants
//
// Links are always symmetric: IsLinked(a, b) == IsLinked(b, a). Link and
// Unlink reject pairs that are not structural neighbors. Topology is fixed
// at construction; cells are never added or removed afterwards.
//
// # Determinism
//
// Positions() enumerates cells in a deterministic traversal order (row-major
// for rectangular grids, ring-then-index for polar grids) and Cell.Links()
// returns linked positions in sorted order. Generation algorithms rely on
// both so that a fixed random seed reproduces the exact same maze.
//
// # Typical Use
//
//	g, err := maze.NewRect(8, 8)
//	if err != nil { ... }
//	generate.Backtracker(g, rand.New(rand.NewSource(42)))
//	transform.Braid(g, rng, 0.5)
//	path, err := solve.Solve(g, maze.Pos(0, 0), maze.Pos(7, 7))
package maze
