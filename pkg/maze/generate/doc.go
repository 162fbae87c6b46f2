// Package generate implements randomized maze-carving algorithms.
//
// # Overview
//
// Every algorithm takes an unlinked [maze.Grid] and an injected *rand.Rand
// and carves a spanning tree over all positions: after generation the link
// graph is connected, acyclic, and has exactly n−1 links for n cells (a
// "perfect maze"). Identical seed and grid dimensions reproduce the exact
// same maze, which the test suite relies on.
//
// # Algorithms
//
//   - [BinaryTree]: per cell, link north or east at random. Fast, heavily
//     biased toward the north-east corner. Rectangular grids only.
//   - [Sidewinder]: row-wise runs closed by a random northward link.
//     Rectangular grids only.
//   - [AldousBroder]: uniform random walk; unbiased spanning trees but
//     potentially slow on large grids.
//   - [Wilsons]: loop-erased random walks; unbiased with better expected
//     performance than Aldous-Broder.
//   - [HuntAndKill]: random walk with a deterministic hunt phase when stuck.
//   - [Backtracker] / [RecursiveBacktracker]: depth-first carving. The two
//     forms produce identical mazes for the same seed; the explicit-stack
//     form exists so memory stays bounded by grid size instead of call
//     depth.
//   - [SimplifiedPrims], [TruePrims]: frontier-growth carving, the true
//     variant weighting cells with random costs.
//   - [GrowingTree]: generalized frontier carving with a pluggable
//     selection policy ([SelectRandom], [SelectLast], [SelectMixed]).
//
// # Registry
//
// [Algorithms], [Names] and [Lookup] expose the named registry used by the
// CLI and pipeline to validate user input and to route polar grids away
// from the rectangular-only algorithms.
package generate
