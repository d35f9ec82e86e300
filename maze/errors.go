package maze

import "errors"

// Sentinel errors for grid parsing and engine construction.
// Traversal outcomes (Solved, Stuck) are values, never errors.
var (
	// ErrEmptyGrid indicates Parse received no non-blank rows.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrMalformedGrid indicates a row whose length differs from the first row's.
	ErrMalformedGrid = errors.New("maze: all rows must have the same length")

	// ErrOutOfBounds indicates a cell query outside the grid rectangle.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")

	// ErrNilGrid is returned if a nil grid pointer is passed to NewEngine.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrInsufficientOpenings indicates the grid offers fewer than two
	// traversable openings, or no boundary entrance to start from.
	ErrInsufficientOpenings = errors.New("maze: grid needs an entrance and at least one exit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)
