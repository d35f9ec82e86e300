// Package maze models a rectangular text maze and solves it with a
// tick-driven robot: advance, branch, backtrack, one action per tick.
//
// What:
//
//   - Grid wraps rows of runes ('X' wall, 'O' user exit, else open) as an
//     immutable rectangle with bounds checks and boundary-opening discovery.
//   - Engine walks a robot from the entrance toward any other opening,
//     keeping a trail stack plus per-cell attempt flags, so dead ends are
//     abandoned and never re-explored.
//   - Snapshot renders grid + trail + robot as text; hook options expose
//     every movement for animation sinks.
//   - OpenRegions flood-fills the open cells into connected components.
//
// Why:
//
//   - Classic traversal exercise: depth-first wandering with explicit,
//     observable state instead of recursion.
//   - Frame-by-frame animation: each tick is one renderable action.
//   - Generator validation: region analysis proves a maze is one component.
//
// Tick model (state Advancing):
//
//  1. Anchor a trail node at the robot's cell; a cell seen before keeps
//     its earlier attempt flags.
//  2. Standing on an exit solves the maze.
//  3. Straight: continue the heading while open and untried; a move also
//     closes the arrival cell's edge back and goal-checks the new cell.
//  4. Branch: vertical headings try Left then Right, horizontal Up then
//     Down; the first open, untried side is taken.
//  5. Otherwise backtrack: pop the trail head and retreat one cell; the
//     exposed node is scanned Down, Up, Left, Right for an untried branch
//     that is not the just-abandoned cell. An empty trail means Stuck.
//
// Each (cell, direction) pair is consumed at most once, so a traversal
// terminates within O(rows × cols) ticks even on grids with cycles.
//
// Complexity:
//
//   - Parse / Snapshot / OpenRegions: O(rows × cols).
//   - BoundaryEntrances: O(rows + cols).
//   - Engine.Step: O(1); Engine.Solve: O(rows × cols) ticks.
//
// Options:
//
//   - WithEntrance: start from a chosen opening instead of the first
//     boundary gap.
//   - WithOnMove / WithOnBacktrack / WithRenderHook: observation hooks,
//     no-ops by default.
//   - WithContext: cancel Solve between ticks.
//
// Errors:
//
//   - ErrEmptyGrid: no non-blank rows.
//   - ErrMalformedGrid: rows of differing lengths.
//   - ErrOutOfBounds: cell query outside the rectangle.
//   - ErrNilGrid: NewEngine received a nil grid.
//   - ErrInsufficientOpenings: fewer than two openings, or no entrance.
//   - ErrOptionViolation: invalid option (e.g. a walled entrance).
//
// A robot that exhausts the maze is not an error: Step reports
// OutcomeStuck and the engine parks in StateStuck.
//
// See: docs/MAZE.md for the full walkthrough.
package maze
