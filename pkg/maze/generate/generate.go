package generate

import (
	"math/rand"
	"slices"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// Func carves a maze into g using the supplied random source. The caller
// owns the source; algorithms never re-seed it, so a fixed seed reproduces
// a fixed maze.
type Func func(g maze.Grid, rng *rand.Rand) error

// Algorithm describes a registered generation algorithm.
type Algorithm struct {
	Name        string // registry key, kebab-case
	Description string // one-line summary for the CLI listing
	Polar       bool   // whether the algorithm supports polar grids
	Run         Func
}

// algorithms is the registry backing Names and Lookup, in display order.
var algorithms = []Algorithm{
	{
		Name:        "binary-tree",
		Description: "link north or east per cell; fast, corner-biased",
		Polar:       false,
		Run:         requireRect("binary-tree", BinaryTree),
	},
	{
		Name:        "sidewinder",
		Description: "row runs closed by random northward links",
		Polar:       false,
		Run:         requireRect("sidewinder", Sidewinder),
	},
	{
		Name:        "aldous-broder",
		Description: "uniform random walk; unbiased but slow on large grids",
		Polar:       true,
		Run:         AldousBroder,
	},
	{
		Name:        "wilsons",
		Description: "loop-erased random walks; unbiased",
		Polar:       true,
		Run:         Wilsons,
	},
	{
		Name:        "hunt-and-kill",
		Description: "random walk with deterministic hunting when stuck",
		Polar:       true,
		Run:         HuntAndKill,
	},
	{
		Name:        "backtracker",
		Description: "depth-first carving with an explicit stack",
		Polar:       true,
		Run:         Backtracker,
	},
	{
		Name:        "recursive-backtracker",
		Description: "depth-first carving, call-stack form",
		Polar:       true,
		Run:         RecursiveBacktracker,
	},
	{
		Name:        "simplified-prims",
		Description: "frontier growth from random active cells",
		Polar:       true,
		Run:         SimplifiedPrims,
	},
	{
		Name:        "true-prims",
		Description: "frontier growth weighted by random cell costs",
		Polar:       true,
		Run:         TruePrims,
	},
	{
		Name:        "growing-tree",
		Description: "frontier growth, mixed newest/random selection",
		Polar:       true,
		Run: func(g maze.Grid, rng *rand.Rand) error {
			return GrowingTree(g, rng, SelectMixed)
		},
	},
}

// Algorithms returns the registered algorithms in display order.
// The returned slice is a copy.
func Algorithms() []Algorithm {
	return slices.Clone(algorithms)
}

// Names returns the registered algorithm names in display order.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

// Lookup finds an algorithm by name. It fails with INVALID_ALGORITHM for
// unknown names.
func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
}

// requireRect adapts a rectangular-only algorithm to the registry
// signature, rejecting other topologies with INVALID_ALGORITHM.
func requireRect(name string, fn func(*maze.RectGrid, *rand.Rand) error) Func {
	return func(g maze.Grid, rng *rand.Rand) error {
		rect, ok := g.(*maze.RectGrid)
		if !ok {
			return errors.New(errors.ErrCodeInvalidAlgorithm, "%s requires a rectangular grid", name)
		}
		return fn(rect, rng)
	}
}

// choose picks a uniformly random element. Callers guarantee a non-empty
// slice built in deterministic order.
func choose(rng *rand.Rand, options []maze.Position) maze.Position {
	return options[rng.Intn(len(options))]
}

// unvisitedNeighbors filters the structural neighbors of p down to those
// not yet visited, preserving the grid's neighbor order.
func unvisitedNeighbors(g maze.Grid, visited map[maze.Position]bool, p maze.Position) []maze.Position {
	var out []maze.Position
	for _, n := range g.Neighbors(p) {
		if !visited[n] {
			out = append(out, n)
		}
	}
	return out
}

// unvisitedPositions lists unvisited positions in traversal order, so that
// random selection among them is reproducible.
func unvisitedPositions(g maze.Grid, visited map[maze.Position]bool) []maze.Position {
	var out []maze.Position
	for _, p := range g.Positions() {
		if !visited[p] {
			out = append(out, p)
		}
	}
	return out
}
