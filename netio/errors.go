package netio

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var (
	errMalformed     = errors.New("netio: malformed input")
	errAttrMismatch  = errors.New("netio: attribute file row count does not match node count")
)

// ErrMalformed wraps errMalformed with a detail message, classed as an
// Input error since malformed Pajek/attribute data always originates from
// an external file.
func ErrMalformed(detail string) error {
	return ergmerr.Input(fmt.Errorf("%w: %s", errMalformed, detail))
}

// ErrAttrMismatch wraps errAttrMismatch with the expected/actual counts.
func ErrAttrMismatch(expected, actual int) error {
	return ergmerr.Input(fmt.Errorf("%w: expected %d rows, got %d", errAttrMismatch, expected, actual))
}

// ErrIO wraps a non-nil I/O error as Runtime-class; returns nil unchanged.
func ErrIO(err error) error {
	if err == nil {
		return nil
	}
	return ergmerr.Runtime(err)
}
