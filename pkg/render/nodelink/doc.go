// Package nodelink renders mazes as abstract node-link diagrams instead of
// spatial drawings: every cell becomes a node, every link an edge, and
// Graphviz does the layout. The view makes the spanning-tree structure of
// a perfect maze visible in a way wall drawings cannot.
//
// [ToDOT] produces the DOT source; [RenderSVG], [RenderPNG] and
// [RenderPDF] run it through Graphviz (and librsvg for the raster
// formats).
package nodelink
