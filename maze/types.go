// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/katas.
package maze

import "fmt"

// Rune markers recognized by Parse and emitted by Snapshot.
const (
	// WallRune marks an impassable cell.
	WallRune = 'X'
	// ExitRune marks an open cell that is also a user-designated exit.
	ExitRune = 'O'
	// OpenRune marks plain open space.
	OpenRune = ' '
	// RobotRune marks the robot's cell in a rendered snapshot.
	RobotRune = 'B'
	// TrailRune marks cells of the robot's current trail in a snapshot.
	TrailRune = '*'
)

// Cell addresses a single grid position by column and row.
// The origin (0,0) is the top-left corner; rows grow downward.
type Cell struct {
	Col, Row int
}

// Step returns the neighboring cell one move away in direction d.
// The result may lie outside the grid; callers must bounds-check.
func (c Cell) Step(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String renders the cell as "col,row".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// DirDown moves toward larger row indices.
	DirDown Direction = iota
	// DirUp moves toward smaller row indices.
	DirUp
	// DirLeft moves toward smaller column indices.
	DirLeft
	// DirRight moves toward larger column indices.
	DirRight
)

// backtrackOrder fixes the scan order used when hunting for an untried
// branch during backtracking. The order is part of the engine's contract:
// changing it changes which corridor a robot explores first.
var backtrackOrder = [4]Direction{DirDown, DirUp, DirLeft, DirRight}

// perpendicular maps a heading to the two side directions tried when the
// straight path is blocked, in attempt order.
var perpendicular = [4][2]Direction{
	DirDown:  {DirLeft, DirRight},
	DirUp:    {DirLeft, DirRight},
	DirLeft:  {DirUp, DirDown},
	DirRight: {DirUp, DirDown},
}

// Delta returns the column and row displacement of one step in d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	default: // DirRight
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	default: // DirRight
		return DirLeft
	}
}

// Perpendicular returns the two directions orthogonal to d, in the order
// the engine attempts them: vertical headings branch Left then Right,
// horizontal headings branch Up then Down.
func (d Direction) Perpendicular() [2]Direction {
	return perpendicular[d]
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// Opening is a traversable gap in the grid boundary: the open cell plus the
// inward heading a robot entering through it would take.
type Opening struct {
	Cell    Cell
	Heading Direction
}

// State is the engine's traversal phase.
type State uint8

const (
	// StateAdvancing means the robot is probing forward from the trail head.
	StateAdvancing State = iota
	// StateBacktracking means the robot is unwinding the trail, one node per tick.
	StateBacktracking
	// StateSolved is terminal: an exit cell was reached.
	StateSolved
	// StateStuck is terminal: the trail unwound completely without a branch.
	StateStuck
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAdvancing:
		return "advancing"
	case StateBacktracking:
		return "backtracking"
	case StateSolved:
		return "solved"
	default:
		return "stuck"
	}
}

// Outcome classifies what a single Step accomplished.
type Outcome uint8

const (
	// OutcomeMoved means the robot's cell changed (forward or retreating).
	OutcomeMoved Outcome = iota
	// OutcomeSolved means an exit was reached this tick (or earlier).
	OutcomeSolved
	// OutcomeStuck means every reachable corridor is exhausted.
	OutcomeStuck
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeSolved:
		return "solved"
	default:
		return "stuck"
	}
}

// Tick reports one engine step.
// Path is populated only when Outcome == OutcomeSolved and lists the
// surviving trail from entrance to exit, both ends included.
type Tick struct {
	Outcome Outcome
	Cell    Cell
	Path    []Cell
}

// Result is the aggregate of a full Solve run.
type Result struct {
	// Outcome is OutcomeSolved or OutcomeStuck.
	Outcome Outcome
	// Path is the entrance→exit trail when solved, nil when stuck.
	Path []Cell
	// Ticks is the number of steps consumed.
	Ticks int
}
