package maze

import (
	"fmt"
)

// Engine drives one robot through a Grid, one tick at a time.
// It owns every piece of traversal state: position, heading, goal set,
// trail and per-cell attempt flags. Construct with NewEngine; zero value is
// not usable. An Engine is not safe for concurrent use.
type Engine struct {
	grid  *Grid
	start Opening
	goals map[Cell]struct{}

	cell    Cell
	heading Direction

	nodes map[Cell]*visitedNode
	hist  trail

	state State
	ticks int

	opts EngineOptions
}

// NewEngine validates the grid's openings and prepares a traversal.
//
// The robot starts at the first boundary entrance (or the WithEntrance
// override) facing inward. Every other opening, meaning the remaining
// boundary gaps plus all user-marked exit cells, becomes a goal; reaching
// any one of them solves the maze. Construction fails with
// ErrInsufficientOpenings when no boundary entrance exists (and none was
// supplied) or when no goal remains after the entrance is taken.
//
// NewEngine never panics: malformed input surfaces as wrapped sentinels.
func NewEngine(g *Grid, opts ...Option) (*Engine, error) {
	// 1. Validate inputs and assemble options.
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Pick the entrance: explicit option first, else the first boundary gap.
	boundary := g.BoundaryEntrances()
	var start Opening
	switch {
	case o.Entrance != nil:
		if !g.open(o.Entrance.Cell) {
			return nil, fmt.Errorf("%w: entrance %v is not an open cell", ErrOptionViolation, o.Entrance.Cell)
		}
		start = *o.Entrance
	case len(boundary) > 0:
		start = boundary[0]
	default:
		return nil, fmt.Errorf("%w: no boundary entrance", ErrInsufficientOpenings)
	}

	// 3. Remaining openings form the goal set. The entrance consumes its
	// boundary gap, but user-marked exits always count, so a robot that
	// starts on a marked cell solves on its first tick.
	goals := make(map[Cell]struct{}, len(boundary)+len(g.marked))
	for _, op := range boundary {
		if op.Cell != start.Cell {
			goals[op.Cell] = struct{}{}
		}
	}
	for _, c := range g.marked {
		goals[c] = struct{}{}
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: no exit opening besides the entrance", ErrInsufficientOpenings)
	}

	return &Engine{
		grid:    g,
		start:   start,
		goals:   goals,
		cell:    start.Cell,
		heading: start.Heading,
		nodes:   make(map[Cell]*visitedNode),
		state:   StateAdvancing,
		opts:    o,
	}, nil
}

// Step advances the traversal by exactly one tick and reports what
// happened. Terminal states are idempotent: once solved or stuck, further
// calls replay the verdict without mutating anything. Complexity: O(1).
func (e *Engine) Step() Tick {
	// 0. Terminal states replay their verdict.
	switch e.state {
	case StateSolved:
		return Tick{Outcome: OutcomeSolved, Cell: e.cell, Path: e.Path()}
	case StateStuck:
		return Tick{Outcome: OutcomeStuck, Cell: e.cell}
	}

	e.ticks++
	if e.state == StateBacktracking {
		return e.retreat()
	}

	// 1. Anchor the trail at the current cell.
	node := e.ensure(e.cell)

	// 2. Standing on an exit solves immediately (covers entering on one).
	if e.isGoal(e.cell) {
		return e.solve()
	}

	// 3. Straight: keep the heading while the corridor is open and untried.
	if node.open[e.heading] && !node.went[e.heading] {
		return e.advance(node, e.heading)
	}

	// 4. Branch: first untried perpendicular wins.
	for _, d := range e.heading.Perpendicular() {
		if node.open[d] && !node.went[d] {
			return e.advance(node, d)
		}
	}

	// 5. Dead end: flip to backtracking and pop within the same tick.
	e.state = StateBacktracking

	return e.retreat()
}

// Solve drives Step until the traversal terminates, checking the
// configured context between ticks. The error is non-nil only on
// cancellation; a stuck robot is a Result, not an error.
func (e *Engine) Solve() (Result, error) {
	for {
		select {
		case <-e.opts.Ctx.Done():
			return Result{}, e.opts.Ctx.Err()
		default:
		}
		switch t := e.Step(); t.Outcome {
		case OutcomeSolved:
			return Result{Outcome: OutcomeSolved, Path: t.Path, Ticks: e.ticks}, nil
		case OutcomeStuck:
			return Result{Outcome: OutcomeStuck, Ticks: e.ticks}, nil
		}
	}
}

// State returns the engine's current traversal phase.
func (e *Engine) State() State { return e.state }

// Position returns the robot's current cell.
func (e *Engine) Position() Cell { return e.cell }

// Heading returns the robot's current heading.
func (e *Engine) Heading() Direction { return e.heading }

// Ticks returns the number of Step calls consumed so far.
func (e *Engine) Ticks() int { return e.ticks }

// Entrance returns the opening the robot started from.
func (e *Engine) Entrance() Opening { return e.start }

// Path returns the surviving trail from the entrance to the robot's
// current cell, both ends included. Abandoned dead ends never appear.
// Nil before the first tick and after the trail unwinds to empty.
func (e *Engine) Path() []Cell { return e.hist.cells() }

// advance moves one cell in direction d. The departed node's attempt flag
// is consumed, the arrival node's edge back is closed so backtracking never
// walks the same corridor in reverse, and the new cell is goal-checked
// within the same tick.
func (e *Engine) advance(from *visitedNode, d Direction) Tick {
	from.went[d] = true
	e.heading = d
	e.cell = from.cell.Step(d)

	to := e.ensure(e.cell)
	to.went[d.Opposite()] = true

	e.emitMove()
	if e.isGoal(e.cell) {
		return e.solve()
	}

	return Tick{Outcome: OutcomeMoved, Cell: e.cell}
}

// retreat pops the trail head. With the trail empty the robot is stuck;
// otherwise it falls back one cell and scans the exposed node in
// backtrackOrder for an untried branch. The guard on the popped cell keeps
// the robot from oscillating straight back into the corridor it just
// abandoned. A found branch only sets the heading; the move itself happens
// on the next tick's straight step.
func (e *Engine) retreat() Tick {
	popped := e.hist.pop()
	e.opts.OnBacktrack(popped.cell)

	if e.hist.empty() {
		e.state = StateStuck

		return Tick{Outcome: OutcomeStuck, Cell: e.cell}
	}

	prev := e.hist.top()
	e.cell = prev.cell

	for _, d := range backtrackOrder {
		if prev.open[d] && !prev.went[d] && prev.cell.Step(d) != popped.cell {
			e.heading = d
			e.state = StateAdvancing

			break
		}
	}

	e.emitMove()

	return Tick{Outcome: OutcomeMoved, Cell: e.cell}
}

// ensure returns the node for c, pushing it onto the trail unless it is
// already on top. Nodes are reused from the engine-lifetime map, so a cell
// re-entered through a different corridor keeps its earlier attempt flags.
func (e *Engine) ensure(c Cell) *visitedNode {
	if !e.hist.empty() && e.hist.top().cell == c {
		return e.hist.top()
	}
	n := e.nodes[c]
	if n == nil {
		n = &visitedNode{cell: c}
		for _, d := range backtrackOrder {
			n.open[d] = e.grid.open(c.Step(d))
		}
		e.nodes[c] = n
	}
	e.hist.push(n)

	return n
}

func (e *Engine) isGoal(c Cell) bool {
	_, ok := e.goals[c]

	return ok
}

func (e *Engine) solve() Tick {
	e.state = StateSolved

	return Tick{Outcome: OutcomeSolved, Cell: e.cell, Path: e.Path()}
}

// emitMove fires the movement hooks with the robot's new position.
func (e *Engine) emitMove() {
	e.opts.OnMove(e.cell, e.heading)
	e.opts.RenderHook(e.grid, e.cell, e.hist.cells())
}
