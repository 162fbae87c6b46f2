package pipeline

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
)

// ParsePosition parses a "row,col" string, the inverse of
// [maze.Position.String]. Whitespace around either number is tolerated.
func ParsePosition(s string) (maze.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Position{}, errors.New(errors.ErrCodeInvalidPosition, "position %q must take row,col form", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Position{}, errors.Wrap(errors.ErrCodeInvalidPosition, err, "position %q has a bad row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Position{}, errors.Wrap(errors.ErrCodeInvalidPosition, err, "position %q has a bad column", s)
	}
	return maze.Pos(row, col), nil
}
