package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/pipeline"
	"github.com/matzehuels/mazetower/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	topology  string  // grid shape: "rect" or "polar"
	width     int     // columns (rect)
	height    int     // rows (rect)
	rings     int     // rings including the hub (polar)
	algorithm string  // generation algorithm name
	seed      int64   // random seed for reproducible mazes
	braid     float64 // dead-end removal probability in [0,1]
	solve     bool    // compute and mark a shortest path
	start     string  // solve start as "row,col" (empty = auto)
	target    string  // solve target as "row,col" (empty = auto)
	vizType   string  // visualization type: "maze" or "nodelink"
	output    string  // output file or base path
	styleFile string  // TOML style file path
	heatMap   bool    // tint cells by distance from the solve start
	labels    bool    // print distances in ASCII cells
	scale     float64 // raster scale factor for PNG export
}

// generateCommand creates the generate command, the main entry point of
// the CLI. It runs the full pipeline and writes one file per requested
// format.
//
// Default settings:
//   - topology: rect, 10x10 (polar: 6 rings)
//   - algorithm: backtracker
//   - seed: 42 (fixed, so repeated runs agree)
//   - format: svg
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		topology:  pipeline.TopologyRect,
		width:     pipeline.DefaultWidth,
		height:    pipeline.DefaultHeight,
		rings:     pipeline.DefaultRings,
		algorithm: pipeline.DefaultAlgorithm,
		seed:      pipeline.DefaultSeed,
		vizType:   pipeline.VizTypeMaze,
		scale:     pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a maze and render it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts, parseFormats(formatsStr))
		},
	}

	cmd.Flags().StringVar(&opts.topology, "topology", opts.topology, "grid topology: rect (default), polar")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "grid width (rect)")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "grid height (rect)")
	cmd.Flags().IntVar(&opts.rings, "rings", opts.rings, "ring count including the hub (polar)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "generation algorithm (see 'mazetower algorithms')")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed for reproducible mazes")
	cmd.Flags().Float64Var(&opts.braid, "braid", 0, "dead-end removal probability in [0,1]")
	cmd.Flags().BoolVar(&opts.solve, "solve", false, "compute and mark a shortest path")
	cmd.Flags().StringVar(&opts.start, "start", "", "solve start as row,col (default: auto-picked)")
	cmd.Flags().StringVar(&opts.target, "target", "", "solve target as row,col (default: auto-picked)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: maze (default), nodelink")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), ascii, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "TOML style file")
	cmd.Flags().BoolVar(&opts.heatMap, "heatmap", false, "tint cells by distance from the solve start")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print distances in ASCII cells")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG export")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts, formats []string) error {
	style := render.DefaultStyle()
	if opts.styleFile != "" {
		var err error
		if style, err = loadStyle(opts.styleFile); err != nil {
			return err
		}
	}

	popts := pipeline.Options{
		Topology:  opts.topology,
		Width:     opts.width,
		Height:    opts.height,
		Rings:     opts.rings,
		Algorithm: opts.algorithm,
		Seed:      opts.seed,
		Braid:     opts.braid,
		Solve:     opts.solve,
		Start:     opts.start,
		Target:    opts.target,
		VizType:   opts.vizType,
		Formats:   formats,
		Style:     style,
		HeatMap:   opts.heatMap,
		Labels:    opts.labels,
		PNGScale:  opts.scale,
		Logger:    c.Logger,
	}

	spinner := newSpinner(ctx, "carving maze")
	spinner.Start()
	result, err := pipeline.NewRunner(c.Logger).Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		printError("%s", err)
		return err
	}

	if err := writeArtifacts(result, opts.output, formats); err != nil {
		return err
	}

	printSuccess("generated %s maze", opts.algorithm)
	printStats(result.Stats.CellCount, result.Stats.LinkCount, result.Stats.DeadEnds)
	if result.Solved {
		fmt.Println("  " + StyleDim.Render(fmt.Sprintf("solved %s %s %s in %d steps",
			result.Start, iconArrow, result.Target, len(result.Path)-1)))
	}
	return nil
}

// writeArtifacts writes each rendered format to disk. A lone ASCII
// artifact without an explicit output path goes to stdout instead.
func writeArtifacts(result *pipeline.Result, output string, formats []string) error {
	if len(formats) == 1 && formats[0] == pipeline.FormatASCII && output == "" {
		fmt.Print(string(result.Artifacts[pipeline.FormatASCII]))
		return nil
	}

	base := basePath(output)
	for _, format := range formats {
		path := base + "." + fileExt(format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// fileExt maps a format to its file extension.
func fileExt(format string) string {
	if format == pipeline.FormatASCII {
		return "txt"
	}
	return format
}

// basePath derives the base output path. An empty output falls back to
// "maze"; a known format extension on the output is stripped so multiple
// formats fan out from one flag value.
func basePath(output string) string {
	if output == "" {
		return "maze"
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "txt" || pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}
