package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// ASCII renders a rectangular maze as text, one "+---+" lattice cell per
// grid cell. With [WithLabels] each cell shows its solver weight, centered
// in three columns. Polar grids have no sensible text form and are
// rejected with INVALID_FORMAT.
func ASCII(g maze.Grid, style Style) (string, error) {
	rect, ok := g.(*maze.RectGrid)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "ascii rendering supports rectangular grids only")
	}

	var out strings.Builder
	out.WriteString("+")
	out.WriteString(strings.Repeat("---+", rect.Width()))
	out.WriteString("\n")

	for row := 0; row < rect.Height(); row++ {
		var top strings.Builder
		var bot strings.Builder
		top.WriteString("|")
		bot.WriteString("+")

		for col := 0; col < rect.Width(); col++ {
			pos := maze.Pos(row, col)
			cell, _ := rect.Cell(pos)

			if style.Labels {
				top.WriteString(center(fmt.Sprint(cell.Weight()), 3))
			} else {
				top.WriteString("   ")
			}

			if east, ok := rect.East(pos); ok && rect.IsLinked(pos, east) {
				top.WriteString(" ")
			} else {
				top.WriteString("|")
			}

			if south, ok := rect.South(pos); ok && rect.IsLinked(pos, south) {
				bot.WriteString("   +")
			} else {
				bot.WriteString("---+")
			}
		}

		out.WriteString(top.String())
		out.WriteString("\n")
		out.WriteString(bot.String())
		out.WriteString("\n")
	}
	return out.String(), nil
}

// center pads s to width, biasing extra padding to the right. Strings
// wider than width pass through untouched.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
