package mazegen

import "fmt"

// validateLattice rejects room grids that cannot hold a single room.
func validateLattice(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: lattice %d×%d, need at least 1×1 rooms", ErrBadDimension, rows, cols)
	}

	return nil
}

// validateCorridor rejects corridors too short to have two openings.
func validateCorridor(length int) error {
	if length < 2 {
		return fmt.Errorf("%w: corridor length %d, need at least 2", ErrBadDimension, length)
	}

	return nil
}
