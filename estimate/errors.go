package estimate

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var errDimensionMismatch = errors.New("estimate: observed statistics vector length mismatch")

// ErrDimensionMismatch wraps errDimensionMismatch with the expected/actual
// lengths.
func ErrDimensionMismatch(expected, actual int) error {
	return ergmerr.Config(fmt.Errorf("%w: expected %d, got %d", errDimensionMismatch, expected, actual))
}
