package sampler

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var (
	errNoValidDyad   = errors.New("sampler: no valid dyad found within retry budget")
	errUnknownScheme = errors.New("sampler: unknown scheme name")
	errUnknownMode   = errors.New("sampler: unknown run mode")
)

// ErrNoValidDyad is returned by Run when proposeDyad cannot find a legal
// dyad within maxProposalRetries tries, which signals a graph too small or
// too densely conditioned to admit a free toggle.
var ErrNoValidDyad = ergmerr.Runtime(errNoValidDyad)

// ErrUnknownScheme wraps errUnknownScheme with the offending name.
func ErrUnknownScheme(name string) error {
	return ergmerr.Config(fmt.Errorf("%w: %q", errUnknownScheme, name))
}

// ErrUnknownMode wraps errUnknownMode with the offending name.
func ErrUnknownMode(name string) error {
	return ergmerr.Config(fmt.Errorf("%w: %q", errUnknownMode, name))
}
