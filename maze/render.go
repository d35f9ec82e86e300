package maze

import "strings"

// Snapshot renders a frame of the traversal as text: walls as WallRune,
// marked exits as ExitRune, open space as OpenRune, then the trail painted
// as TrailRune and the robot as RobotRune on top. Rows are joined with
// newlines and the result carries a trailing one, so fmt.Print emits a
// clean frame. Trail cells outside the grid are skipped, which makes the
// function safe with any caller-supplied slice.
//
// Snapshot never mutates the grid; render an Engine mid-run with
// Snapshot(g, e.Position(), e.Path()).
func Snapshot(g *Grid, robot Cell, trail []Cell) string {
	// 1. Base layer from the immutable grid.
	rows := make([][]rune, g.rows)
	for r := 0; r < g.rows; r++ {
		rows[r] = make([]rune, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.wall[r][c] {
				rows[r][c] = WallRune
			} else {
				rows[r][c] = OpenRune
			}
		}
	}
	for _, c := range g.marked {
		rows[c.Row][c.Col] = ExitRune
	}

	// 2. Trail, then the robot wins the cell it stands on.
	for _, c := range trail {
		if g.InBounds(c) {
			rows[c.Row][c.Col] = TrailRune
		}
	}
	if g.InBounds(robot) {
		rows[robot.Row][robot.Col] = RobotRune
	}

	// 3. Join.
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	return b.String()
}
