// Package render turns carved grids into viewable output.
//
// Three sinks are provided:
//
//   - [ASCII] writes the classic +---+ text form of a rectangular maze,
//     optionally labelled with solver weights.
//   - [SVG] draws rectangular and polar mazes as vector graphics, with
//     optional distance heat maps and solution overlays.
//   - [ToPNG] and [ToPDF] convert SVG output to raster and print formats
//     by shelling out to rsvg-convert.
//
// Rendering is read-only: sinks consume link state, weights and solution
// flags but never mutate the grid. Appearance is controlled by [Style],
// built with functional options so callers only name what they change.
//
// For graph-shaped output instead of spatial output, see the nodelink
// subpackage.
package render
