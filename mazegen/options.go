package mazegen

import "math/rand"

// Option customizes Generate by mutating a generatorConfig before carving
// begins. Option constructors validate eagerly and panic on programmer
// error; the generators themselves never panic.
type Option func(*generatorConfig)

// generatorConfig carries everything a carving run needs. No globals:
// determinism is explicit through the rng field.
type generatorConfig struct {
	algo Algorithm
	rng  *rand.Rand
}

func defaultConfig() generatorConfig {
	return generatorConfig{algo: AlgoKruskal}
}

// WithAlgorithm selects the carving strategy. Generate rejects values
// outside the declared set with ErrUnknownAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(c *generatorConfig) {
		c.algo = a
	}
}

// WithSeed creates a deterministic RNG from seed. Use this in tests and
// examples to lock outcomes: same seed, same maze.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for carving. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}

	return func(c *generatorConfig) {
		c.rng = r
	}
}
