// Package pipeline provides the core maze pipeline for Mazetower.
//
// This package implements the complete generate → transform → solve →
// render pipeline used by the CLI. Centralizing it keeps behavior
// consistent across entry points and gives library users a one-call way to
// produce finished artifacts.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: Build a grid and carve a maze with a registered algorithm
//  2. Transform: Optionally braid away dead ends
//  3. Solve: Optionally compute and mark a shortest path
//  4. Render: Produce output in various formats (ASCII, SVG, PNG, PDF, DOT)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Topology:  pipeline.TopologyRect,
//	    Width:     12,
//	    Height:    12,
//	    Algorithm: "backtracker",
//	    Solve:     true,
//	    Formats:   []string{pipeline.FormatSVG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze/generate"
	"github.com/matzehuels/mazetower/pkg/render"
)

// Default values, the single source of truth for CLI flags.
const (
	// DefaultWidth and DefaultHeight size rectangular grids.
	DefaultWidth  = 10
	DefaultHeight = 10

	// DefaultRings sizes polar grids.
	DefaultRings = 6

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = int64(42)

	// DefaultAlgorithm is the default generation algorithm.
	DefaultAlgorithm = "backtracker"

	// DefaultPNGScale is the raster scale factor for PNG export.
	DefaultPNGScale = 2.0
)

// Topology constants for grid shapes.
const (
	TopologyRect  = "rect"
	TopologyPolar = "polar"
)

// Format constants for output formats.
const (
	FormatASCII = "ascii"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatDOT   = "dot"
)

// VizType constants for visualization styles.
const (
	VizTypeMaze     = "maze"
	VizTypeNodelink = "nodelink"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatASCII: true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatDOT:   true,
}

// ValidTopologies is the set of supported grid topologies.
var ValidTopologies = map[string]bool{
	TopologyRect:  true,
	TopologyPolar: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeMaze:     true,
	VizTypeNodelink: true,
}

// Options contains all configuration for the maze pipeline.
type Options struct {
	// Generate options
	Topology  string `json:"topology,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Rings     int    `json:"rings,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Seed      int64  `json:"seed,omitempty"`

	// Transform options
	Braid float64 `json:"braid,omitempty"`

	// Solve options. Start and Target take "row,col" form; empty values
	// auto-pick the furthest pair (rectangular) or hub-to-rim (polar).
	Solve  bool   `json:"solve,omitempty"`
	Start  string `json:"start,omitempty"`
	Target string `json:"target,omitempty"`

	// Render options
	VizType  string       `json:"viz_type,omitempty"`
	Formats  []string     `json:"formats,omitempty"`
	Style    render.Style `json:"-"`
	HeatMap  bool         `json:"heat_map,omitempty"`
	Labels   bool         `json:"labels,omitempty"`
	PNGScale float64      `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := errors.ValidateProbability(o.Braid); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks and defaults the generation options.
func (o *Options) ValidateForGenerate() error {
	if o.Topology == "" {
		o.Topology = TopologyRect
	}
	if !ValidTopologies[o.Topology] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid topology %q (must be rect or polar)", o.Topology)
	}

	switch o.Topology {
	case TopologyRect:
		if o.Width == 0 {
			o.Width = DefaultWidth
		}
		if o.Height == 0 {
			o.Height = DefaultHeight
		}
		if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
			return err
		}
	case TopologyPolar:
		if o.Rings == 0 {
			o.Rings = DefaultRings
		}
		if err := errors.ValidateDimensions(o.Rings); err != nil {
			return err
		}
	}

	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	alg, err := generate.Lookup(o.Algorithm)
	if err != nil {
		return err
	}
	if o.Topology == TopologyPolar && !alg.Polar {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "%s does not support polar grids", alg.Name)
	}

	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.applyLoggerDefault()
	return nil
}

// ValidateForRender checks and defaults the render options.
func (o *Options) ValidateForRender() error {
	if o.VizType == "" {
		o.VizType = VizTypeMaze
	}
	if !ValidVizTypes[o.VizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type %q (must be maze or nodelink)", o.VizType)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: ascii, svg, png, pdf, dot)", f)
		}
	}

	if o.Style.Color == nil {
		o.Style = render.DefaultStyle()
	}
	if o.HeatMap {
		o.Style.HeatMap = true
	}
	if o.Labels {
		o.Style.Labels = true
	}
	if o.Solve {
		o.Style.DrawSolution = true
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	o.applyLoggerDefault()
	return nil
}

// IsPolar reports whether the pipeline targets a polar grid.
func (o *Options) IsPolar() bool {
	return o.Topology == TopologyPolar
}

// IsNodelink reports whether output uses the node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

func (o *Options) applyLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
