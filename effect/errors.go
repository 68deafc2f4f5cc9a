package effect

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var (
	errUnknownEffectName  = errors.New("effect: unknown effect name")
	errFilterMismatch     = errors.New("effect: filter mismatch for loaded graph")
	errMissingAttrIndex   = errors.New("effect: attribute index out of range for its kind")
	errMissingLambda      = errors.New("effect: lambda required and must be > 1")
)

// ErrUnknownEffectName wraps errUnknownEffectName with the offending name.
func ErrUnknownEffectName(name string) error {
	return ergmerr.Config(fmt.Errorf("%w: %q", errUnknownEffectName, name))
}

// ErrFilterMismatch wraps errFilterMismatch with the offending Kind.
func ErrFilterMismatch(k Kind) error {
	return ergmerr.Config(fmt.Errorf("%w: %s", errFilterMismatch, k))
}

// ErrMissingAttrIndex wraps errMissingAttrIndex with the offending Kind.
func ErrMissingAttrIndex(k Kind, idx int) error {
	return ergmerr.Config(fmt.Errorf("%w: %s attribute index %d", errMissingAttrIndex, k, idx))
}

// ErrMissingLambda wraps errMissingLambda with the offending Kind.
func ErrMissingLambda(k Kind) error {
	return ergmerr.Config(fmt.Errorf("%w: %s", errMissingLambda, k))
}
