package mazegen

import (
	"strings"

	"github.com/katalvlaran/katas/maze"
)

// lattice tracks which walls between neighboring rooms have been knocked
// down on a rows×cols room grid. right[r][c] opens the wall toward room
// (r,c+1); down[r][c] opens the wall toward room (r+1,c).
type lattice struct {
	rows, cols int
	right      [][]bool
	down       [][]bool
}

func newLattice(rows, cols int) *lattice {
	l := &lattice{
		rows:  rows,
		cols:  cols,
		right: make([][]bool, rows),
		down:  make([][]bool, rows),
	}
	for r := 0; r < rows; r++ {
		l.right[r] = make([]bool, cols)
		l.down[r] = make([]bool, cols)
	}

	return l
}

// knock removes the wall on side d of the given room. Directions map onto
// the right/down flags of the owning room, so Up and Left mutate the
// neighbor's entry.
func (l *lattice) knock(room maze.Cell, d maze.Direction) {
	switch d {
	case maze.DirRight:
		l.right[room.Row][room.Col] = true
	case maze.DirLeft:
		l.right[room.Row][room.Col-1] = true
	case maze.DirDown:
		l.down[room.Row][room.Col] = true
	case maze.DirUp:
		l.down[room.Row-1][room.Col] = true
	}
}

// render expands the lattice to text rows: every room becomes an open cell
// at (2c+1, 2r+1), knocked walls open the cell between two rooms, lattice
// posts stay walls. One entrance is punched above room column topCol and
// one exit below room column bottomCol.
func (l *lattice) render(topCol, bottomCol int) []string {
	height, width := 2*l.rows+1, 2*l.cols+1
	buf := make([][]byte, height)
	for i := range buf {
		buf[i] = []byte(strings.Repeat(string(maze.WallRune), width))
	}

	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			buf[2*r+1][2*c+1] = byte(maze.OpenRune)
			if l.right[r][c] {
				buf[2*r+1][2*c+2] = byte(maze.OpenRune)
			}
			if l.down[r][c] {
				buf[2*r+2][2*c+1] = byte(maze.OpenRune)
			}
		}
	}
	buf[0][2*topCol+1] = byte(maze.OpenRune)
	buf[height-1][2*bottomCol+1] = byte(maze.OpenRune)

	rows := make([]string, height)
	for i, line := range buf {
		rows[i] = string(line)
	}

	return rows
}
