package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Weights tints each node by its solver weight using the style's
	// heat palette and adds the weight to the node label.
	Weights bool

	// Solution thickens the outline of nodes on the solved path.
	Solution bool

	// Style supplies the palette; zero value falls back to
	// [render.DefaultStyle].
	Style render.Style
}

// ToDOT converts a maze to Graphviz DOT format for node-link
// visualization. Cells become nodes keyed by position, links become
// undirected edges. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g maze.Grid, opts Options) string {
	style := opts.Style
	if style.Color == nil {
		style = render.DefaultStyle()
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	max := 0
	if opts.Weights {
		for _, p := range g.Positions() {
			cell, _ := g.Cell(p)
			if w := cell.Weight(); w > max {
				max = w
			}
		}
	}

	for _, p := range g.Positions() {
		cell, _ := g.Cell(p)
		attrs := fmtAttrs(cell, opts, style, max)
		fmt.Fprintf(&buf, "  %q [%s];\n", p.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range g.Positions() {
		cell, _ := g.Cell(p)
		for _, l := range cell.Links() {
			// Emit each undirected edge once, from the smaller endpoint.
			if p.Less(l) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", p.String(), l.String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(cell *maze.Cell, opts Options, style render.Style, max int) []string {
	label := cell.Pos().String()
	if opts.Weights {
		label = fmt.Sprintf("%s\n%d", label, cell.Weight())
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if opts.Weights {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", style.Color(cell.Weight(), max).Hex()))
	}
	if opts.Solution && cell.InSolution() {
		attrs = append(attrs,
			fmt.Sprintf("color=%q", style.Solution.Hex()),
			"penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
