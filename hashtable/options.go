// Package hashtable provides functional options for table construction.
package hashtable

// config collects construction parameters before validation.
type config struct {
	buckets int
}

// defaultConfig returns the baseline configuration.
func defaultConfig() config {
	return config{buckets: DefaultBuckets}
}

// Option adjusts table construction.
type Option func(*config)

// WithBuckets sets the initial bucket count. The value is rounded up to
// the next power of two; n < 1 makes New return ErrOptionViolation.
func WithBuckets(n int) Option {
	return func(c *config) {
		c.buckets = n
	}
}
