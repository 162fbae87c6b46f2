package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/maze/generate"
	"github.com/matzehuels/mazetower/pkg/maze/solve"
	"github.com/matzehuels/mazetower/pkg/maze/transform"
)

// Runner executes the maze pipeline. It is stateless except for the
// logger; multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the carved (and possibly braided, solved) maze.
	Grid maze.Grid

	// Start and Target are the solve endpoints; meaningful when Solved.
	Start  maze.Position
	Target maze.Position

	// Path is the marked solution, start to target; nil when not solved.
	Path []maze.Position

	// Solved reports whether the solve stage ran.
	Solved bool

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CellCount    int
	LinkCount    int
	DeadEnds     int
	GenerateTime time.Duration
	SolveTime    time.Duration
	RenderTime   time.Duration
}

// Execute runs the complete generate → transform → solve → render
// pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	genStart := time.Now()
	g, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.CellCount = g.Size()
	result.Stats.LinkCount = countLinks(g)
	result.Stats.DeadEnds = len(transform.DeadEnds(g))

	r.Logger.Info("carved maze",
		"topology", opts.Topology,
		"algorithm", opts.Algorithm,
		"cells", result.Stats.CellCount,
		"links", result.Stats.LinkCount,
		"dead_ends", result.Stats.DeadEnds,
		"duration", result.Stats.GenerateTime)

	if opts.Solve {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		solveStart := time.Now()
		if err := r.solveStage(g, opts, result); err != nil {
			return nil, err
		}
		result.Stats.SolveTime = time.Since(solveStart)

		r.Logger.Info("solved maze",
			"start", result.Start,
			"target", result.Target,
			"path_length", len(result.Path),
			"duration", result.Stats.SolveTime)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, err := Render(g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the grid and carves it. The braid transform runs here
// too, sharing the seeded source so one seed fixes the whole maze.
func (r *Runner) Generate(ctx context.Context, opts Options) (maze.Grid, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var g maze.Grid
	var err error
	if opts.IsPolar() {
		g, err = maze.NewPolar(opts.Rings)
	} else {
		g, err = maze.NewRect(opts.Width, opts.Height)
	}
	if err != nil {
		return nil, err
	}

	alg, err := generate.Lookup(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	if err := alg.Run(g, rng); err != nil {
		return nil, err
	}

	if opts.Braid > 0 {
		before := len(transform.DeadEnds(g))
		if err := transform.Braid(g, rng, opts.Braid); err != nil {
			return nil, err
		}
		r.Logger.Debug("braided maze",
			"probability", opts.Braid,
			"dead_ends_before", before,
			"dead_ends_after", len(transform.DeadEnds(g)))
	}
	return g, nil
}

// solveStage resolves endpoints, runs the solver and records the path.
func (r *Runner) solveStage(g maze.Grid, opts Options, result *Result) error {
	start, target, err := resolveEndpoints(g, opts)
	if err != nil {
		return err
	}

	path, err := solve.Solve(g, start, target)
	if err != nil {
		return err
	}

	result.Start = start
	result.Target = target
	result.Path = path
	result.Solved = true
	return nil
}

// resolveEndpoints parses explicit endpoints or auto-picks interesting
// ones: the furthest corner pair on rectangular grids, hub to furthest rim
// cell on polar grids.
func resolveEndpoints(g maze.Grid, opts Options) (start, target maze.Position, err error) {
	if opts.Start != "" || opts.Target != "" {
		if start, err = ParsePosition(opts.Start); err != nil {
			return start, target, err
		}
		if target, err = ParsePosition(opts.Target); err != nil {
			return start, target, err
		}
		return start, target, nil
	}

	switch t := g.(type) {
	case *maze.RectGrid:
		return solve.FurthestCorners(t)
	case *maze.PolarGrid:
		start = maze.Pos(0, 0)
		target, err = solve.FurthestOnRim(t, start)
		return start, target, err
	default:
		return start, target, errors.New(errors.ErrCodeInternal, "no endpoint heuristic for grid type %T", g)
	}
}

// countLinks returns the number of undirected links in the grid.
func countLinks(g maze.Grid) int {
	total := 0
	for _, p := range g.Positions() {
		cell, _ := g.Cell(p)
		total += cell.LinkCount()
	}
	return total / 2
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
