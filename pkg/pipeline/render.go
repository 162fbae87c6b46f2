package pipeline

import (
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/render"
	"github.com/matzehuels/mazetower/pkg/render/nodelink"
)

// Render produces every requested format for a carved grid. PNG and PDF
// are derived from the SVG form, which is built once and reused.
func Render(g maze.Grid, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = renderSVG(g, opts)
		return svg, err
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatASCII:
			text, err := render.ASCII(g, opts.Style)
			if err != nil {
				return nil, err
			}
			artifacts[format] = []byte(text)

		case FormatDOT:
			artifacts[format] = []byte(nodelink.ToDOT(g, dotOptions(opts)))

		case FormatSVG:
			data, err := svgOnce()
			if err != nil {
				return nil, err
			}
			artifacts[format] = data

		case FormatPNG:
			data, err := svgOnce()
			if err != nil {
				return nil, err
			}
			png, err := render.ToPNG(data, opts.PNGScale)
			if err != nil {
				return nil, err
			}
			artifacts[format] = png

		case FormatPDF:
			data, err := svgOnce()
			if err != nil {
				return nil, err
			}
			pdf, err := render.ToPDF(data)
			if err != nil {
				return nil, err
			}
			artifacts[format] = pdf

		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", format)
		}
	}
	return artifacts, nil
}

// renderSVG picks the spatial or node-link SVG form per the options.
func renderSVG(g maze.Grid, opts Options) ([]byte, error) {
	if opts.IsNodelink() {
		return nodelink.RenderSVG(nodelink.ToDOT(g, dotOptions(opts)))
	}
	return render.SVG(g, opts.Style)
}

func dotOptions(opts Options) nodelink.Options {
	return nodelink.Options{
		Weights:  opts.Style.HeatMap,
		Solution: opts.Style.DrawSolution,
		Style:    opts.Style,
	}
}
