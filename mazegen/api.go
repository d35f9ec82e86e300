package mazegen

import "fmt"

// Generate carves a random perfect maze over a rows×cols room lattice and
// returns it as (2·rows+1)×(2·cols+1) text rows ready for maze.Parse. The
// entrance opens above the top-left room, the exit below the bottom-right
// room, and every room is reachable, so the result is always solvable.
//
// Stochastic carving requires an explicit source: pass WithSeed or
// WithRand, or Generate fails with ErrNeedRandSource. Same seed, same maze.
//
// Complexity: AlgoKruskal is near-linear in rooms; AlgoWilson is
// O(rooms) expected with a larger constant.
func Generate(rows, cols int, opts ...Option) ([]string, error) {
	// 1. Validate the lattice.
	if err := validateLattice(rows, cols); err != nil {
		return nil, err
	}

	// 2. Resolve options; stochastic carving needs an explicit RNG.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	// 3. Carve.
	var lat *lattice
	switch cfg.algo {
	case AlgoKruskal:
		lat = kruskal(rows, cols, cfg.rng)
	case AlgoWilson:
		lat = wilson(rows, cols, cfg.rng)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.algo)
	}

	// 4. Render with the two boundary openings punched through.
	return lat.render(0, cols-1), nil
}
