package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is an immutable rectangular maze built by Parse.
// wall[row][col] reports whether a cell is impassable; marked lists the
// cells flagged with ExitRune, in top-to-bottom, left-to-right scan order.
type Grid struct {
	rows, cols int
	wall       [][]bool
	marked     []Cell
}

// Parse builds a Grid from text rows. Blank rows are skipped; every
// remaining row must match the first row's length or Parse fails with
// ErrMalformedGrid. WallRune cells are walls, ExitRune cells are open and
// recorded as user exits, and any other rune is plain open space.
//
// The returned Grid never changes afterward; the engine and all render
// helpers treat it as read-only.
func Parse(rows []string) (*Grid, error) {
	// 1. Drop blank separator lines.
	lines := make([][]rune, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		lines = append(lines, []rune(row))
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	// 2. Enforce rectangularity against the first row.
	cols := len(lines[0])
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(line), cols)
		}
	}

	// 3. Classify cells.
	g := &Grid{
		rows: len(lines),
		cols: cols,
		wall: make([][]bool, len(lines)),
	}
	for r, line := range lines {
		g.wall[r] = make([]bool, cols)
		for c, ch := range line {
			switch ch {
			case WallRune:
				g.wall[r][c] = true
			case ExitRune:
				g.marked = append(g.marked, Cell{Col: c, Row: r})
			}
		}
	}

	return g, nil
}

// ParseReader reads newline-separated rows from r and parses them.
// Carriage returns are stripped, so Windows-style files load unchanged.
func ParseReader(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read rows: %w", err)
	}

	return Parse(rows)
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid rectangle.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// IsWall reports whether c is impassable. Querying a cell outside the grid
// returns ErrOutOfBounds. IsWall is a pure read: calling it any number of
// times leaves the grid byte-for-byte unchanged.
func (g *Grid) IsWall(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return g.wall[c.Row][c.Col], nil
}

// open reports whether c is inside the grid and not a wall.
// Out-of-bounds cells count as blocked, so the boundary needs no sentinel ring.
func (g *Grid) open(c Cell) bool {
	return g.InBounds(c) && !g.wall[c.Row][c.Col]
}

// MarkedExits returns a copy of the user-designated exit cells in scan order.
func (g *Grid) MarkedExits() []Cell {
	out := make([]Cell, len(g.marked))
	copy(out, g.marked)

	return out
}

// BoundaryEntrances discovers the traversable gaps in the grid border.
// Each of the four sides is scanned independently and contributes at most
// its first open cell, paired with the inward heading:
//
//	top row (left→right)            → heading down
//	bottom row (left→right)         → heading up
//	left column (interior rows)     → heading right
//	right column (interior rows)    → heading left
//
// Corner cells belong to the row scans only. Results are ordered
// top, bottom, left, right; the first entry is the default engine entrance.
// Complexity: O(rows + cols).
func (g *Grid) BoundaryEntrances() []Opening {
	var out []Opening

	// 1. Top row.
	for c := 0; c < g.cols; c++ {
		if !g.wall[0][c] {
			out = append(out, Opening{Cell: Cell{Col: c, Row: 0}, Heading: DirDown})
			break
		}
	}
	// 2. Bottom row, when distinct from the top.
	if g.rows > 1 {
		for c := 0; c < g.cols; c++ {
			if !g.wall[g.rows-1][c] {
				out = append(out, Opening{Cell: Cell{Col: c, Row: g.rows - 1}, Heading: DirUp})
				break
			}
		}
	}
	// 3. Left column, interior rows only.
	for r := 1; r < g.rows-1; r++ {
		if !g.wall[r][0] {
			out = append(out, Opening{Cell: Cell{Col: 0, Row: r}, Heading: DirRight})
			break
		}
	}
	// 4. Right column, when distinct from the left.
	if g.cols > 1 {
		for r := 1; r < g.rows-1; r++ {
			if !g.wall[r][g.cols-1] {
				out = append(out, Opening{Cell: Cell{Col: g.cols - 1, Row: r}, Heading: DirLeft})
				break
			}
		}
	}

	return out
}
