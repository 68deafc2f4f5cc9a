package netbuild

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var (
	errTooFewVertices      = errors.New("netbuild: too few vertices")
	errInvalidProbability  = errors.New("netbuild: probability out of range")
	errNeedRandSource      = errors.New("netbuild: rng required for stochastic probability")
	errPartitionTooSmall   = errors.New("netbuild: bipartite partition too small")
)

// ErrTooFewVertices wraps errTooFewVertices with the offending method/n.
func ErrTooFewVertices(method string, n, min int) error {
	return ergmerr.Config(fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, errTooFewVertices))
}

// ErrInvalidProbability wraps errInvalidProbability with the offending value.
func ErrInvalidProbability(method string, p float64) error {
	return ergmerr.Config(fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, errInvalidProbability))
}

// ErrNeedRandSource wraps errNeedRandSource for stochastic constructors
// invoked with p strictly between 0 and 1 and a nil RNG.
func ErrNeedRandSource(method string) error {
	return ergmerr.Config(fmt.Errorf("%s: rng is required: %w", method, errNeedRandSource))
}

// ErrPartitionTooSmall wraps errPartitionTooSmall with the offending sizes.
func ErrPartitionTooSmall(method string, nA, nB, min int) error {
	return ergmerr.Config(fmt.Errorf("%s: nA=%d, nB=%d (each must be >= %d): %w",
		method, nA, nB, min, errPartitionTooSmall))
}
