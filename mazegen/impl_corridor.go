package mazegen

import (
	"strings"

	"github.com/katalvlaran/katas/maze"
)

// Corridor returns the deterministic 3-row straight maze of the given
// length: a fully open middle row between two solid walls, entered through
// the left side and left through the right. The shortest solvable fixture,
// handy for tick-count assertions. Fails with ErrBadDimension below
// length 2.
func Corridor(length int) ([]string, error) {
	if err := validateCorridor(length); err != nil {
		return nil, err
	}

	wall := strings.Repeat(string(maze.WallRune), length)

	return []string{
		wall,
		strings.Repeat(string(maze.OpenRune), length),
		wall,
	}, nil
}
