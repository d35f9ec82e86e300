package maze

import "context"

// Option configures engine behavior via functional arguments.
// An invalid option (e.g. an entrance on a wall) is recorded internally and
// surfaced as ErrOptionViolation when NewEngine is invoked.
type Option func(*EngineOptions)

// EngineOptions holds parameters and callbacks to customize a traversal.
type EngineOptions struct {
	// Ctx allows cancellation of Solve between ticks.
	Ctx context.Context

	// Entrance overrides the default starting opening
	// (the first boundary entrance). Nil keeps the default.
	Entrance *Opening

	// OnMove is called after every tick in which the robot's cell changed,
	// with the new cell and current heading. Retreats count as moves.
	OnMove func(cell Cell, heading Direction)

	// OnBacktrack is called when a trail node is popped, with the
	// abandoned cell.
	OnBacktrack func(cell Cell)

	// RenderHook is called after every tick in which the robot's cell
	// changed, receiving the grid, the robot's cell and the live trail
	// (entrance→robot). Snapshot turns the same triple into text.
	RenderHook func(g *Grid, robot Cell, trail []Cell)
}

// DefaultOptions returns EngineOptions with sane defaults:
//   - context.Background()
//   - default boundary entrance
//   - no-op hooks (OnMove, OnBacktrack, RenderHook).
func DefaultOptions() EngineOptions {
	return EngineOptions{
		Ctx:         context.Background(),
		Entrance:    nil,
		OnMove:      func(Cell, Direction) {},
		OnBacktrack: func(Cell) {},
		RenderHook:  func(*Grid, Cell, []Cell) {},
	}
}

// WithContext sets a custom context for cancelling Solve.
func WithContext(ctx context.Context) Option {
	return func(o *EngineOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEntrance starts the robot at e instead of the first boundary
// entrance. The cell must be open within the grid; NewEngine rejects a
// walled or out-of-bounds entrance with ErrOptionViolation.
func WithEntrance(e Opening) Option {
	return func(o *EngineOptions) {
		o.Entrance = &e
	}
}

// WithOnMove registers a callback to run after each position change.
func WithOnMove(fn func(cell Cell, heading Direction)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

// WithOnBacktrack registers a callback to run when a trail node is popped.
func WithOnBacktrack(fn func(cell Cell)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// WithRenderHook registers a frame callback for animation sinks.
func WithRenderHook(fn func(g *Grid, robot Cell, trail []Cell)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.RenderHook = fn
		}
	}
}
