package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorFunc maps a cell's solver weight onto a fill color. max is the
// largest weight on the grid; implementations must handle max == 0.
type ColorFunc func(weight, max int) colorful.Color

// Style controls the appearance of rendered mazes. Zero values are not
// useful; start from [DefaultStyle] and refine with options.
type Style struct {
	CellSize      int            // cell edge length in pixels
	WallThickness int            // wall stroke width in pixels
	Background    colorful.Color // page fill
	Wall          colorful.Color // wall stroke
	Solution      colorful.Color // fill for cells on the solved path
	Labels        bool           // ASCII only: print solver weights in cells
	DrawSolution  bool           // tint cells marked in-solution
	HeatMap       bool           // tint every cell by its solver weight
	Color         ColorFunc      // heat map palette, defaults to [HeatColor]
}

// DefaultStyle returns the stock look: 30px cells, 5px black walls on
// white, red solution overlay.
func DefaultStyle() Style {
	return Style{
		CellSize:      30,
		WallThickness: 5,
		Background:    colorful.Color{R: 1, G: 1, B: 1},
		Wall:          colorful.Color{R: 0, G: 0, B: 0},
		Solution:      colorful.Color{R: 0.9, G: 0.3, B: 0.25},
		Color:         HeatColor,
	}
}

// Option mutates a Style during construction.
type Option func(*Style)

// NewStyle builds a Style from [DefaultStyle] plus the given options.
func NewStyle(opts ...Option) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithCellSize(px int) Option      { return func(s *Style) { s.CellSize = px } }
func WithWallThickness(px int) Option { return func(s *Style) { s.WallThickness = px } }
func WithLabels() Option              { return func(s *Style) { s.Labels = true } }
func WithSolution() Option            { return func(s *Style) { s.DrawSolution = true } }
func WithHeatMap() Option             { return func(s *Style) { s.HeatMap = true } }

func WithBackground(c colorful.Color) Option { return func(s *Style) { s.Background = c } }
func WithWall(c colorful.Color) Option       { return func(s *Style) { s.Wall = c } }
func WithSolutionColor(c colorful.Color) Option {
	return func(s *Style) { s.Solution = c }
}
func WithColorFunc(fn ColorFunc) Option { return func(s *Style) { s.Color = fn } }

// HeatColor is the default heat map palette: a perceptual blend from warm
// white near the source to deep blue at the furthest cell.
func HeatColor(weight, max int) colorful.Color {
	if max <= 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	t := float64(weight) / float64(max)
	near := colorful.Color{R: 1, G: 0.96, B: 0.9}
	far := colorful.Color{R: 0.1, G: 0.2, B: 0.55}
	return near.BlendLuv(far, t).Clamped()
}
