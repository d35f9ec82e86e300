// Package mazegen defines the algorithm selector and sentinel errors for
// maze generation.
package mazegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for generator invocation.
var (
	// ErrBadDimension indicates a lattice smaller than 1×1 rooms or a
	// corridor shorter than two cells.
	ErrBadDimension = errors.New("mazegen: dimension too small")

	// ErrNeedRandSource indicates a stochastic generator was invoked
	// without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("mazegen: stochastic generation requires WithSeed or WithRand")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the
	// declared set.
	ErrUnknownAlgorithm = errors.New("mazegen: unknown algorithm")
)

// Algorithm selects the carving strategy used by Generate.
type Algorithm uint8

const (
	// AlgoKruskal knocks down random walls over a disjoint-set forest
	// until every room reaches every other. Fast and corridor-heavy.
	AlgoKruskal Algorithm = iota
	// AlgoWilson grows the maze by loop-erased random walks. Slower, but
	// the result is a uniformly random spanning tree.
	AlgoWilson
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoKruskal:
		return "kruskal"
	case AlgoWilson:
		return "wilson"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a name to its Algorithm, for flag and config wiring.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "kruskal":
		return AlgoKruskal, nil
	case "wilson":
		return AlgoWilson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
