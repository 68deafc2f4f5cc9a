// Package ergmerr defines the shared error taxonomy used across ergmnet:
// Config, Input, Runtime, and InternalConsistency. Every package-level
// sentinel error elsewhere in the module wraps one of these four marker
// types so callers can branch on error CLASS with errors.As and on the
// precise cause with errors.Is, without string matching.
//
// Convention (mirrors the teacher's per-package sentinel style, e.g.
// core.ErrVertexNotFound / builder.ErrTooFewVertices): each producing
// package still declares its own `var ErrX = ergmerr.Config(...)`-style
// sentinel; this package only supplies the four wrapper constructors and
// the class markers themselves.
package ergmerr

import (
	"errors"
	"fmt"
)

// Class identifies which of the four error categories an error belongs to.
type Class int

const (
	// ClassConfig: unrecognised option, duplicate setting, effect
	// incompatible with graph type/mode, unknown attribute name.
	ClassConfig Class = iota
	// ClassInput: malformed Pajek or attribute file, node-count mismatch,
	// out-of-range node id, invalid set/zone value.
	ClassInput
	// ClassRuntime: I/O failure on an output file.
	ClassRuntime
	// ClassInternalConsistency: violated invariant, missing arc on delete,
	// cache entry disagreeing with recount.
	ClassInternalConsistency
)

func (c Class) String() string {
	switch c {
	case ClassConfig:
		return "config"
	case ClassInput:
		return "input"
	case ClassRuntime:
		return "runtime"
	case ClassInternalConsistency:
		return "internal-consistency"
	default:
		return "unknown"
	}
}

// ClassifiedError pairs a Class with an underlying sentinel or detail error.
// Producing code should construct these via Config/Input/Runtime/Internal
// below rather than building the struct directly.
type ClassifiedError struct {
	class Class
	err   error
}

// Error implements the error interface, rendering "<class>: <inner>".
func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %s", e.class, e.err)
}

// Unwrap exposes the underlying sentinel/detail error to errors.Is/errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.err
}

// Class reports which taxonomy bucket this error belongs to.
func (e *ClassifiedError) Class() Class {
	return e.class
}

// Config wraps err as a Config-class error.
func Config(err error) error { return &ClassifiedError{class: ClassConfig, err: err} }

// Input wraps err as an Input-class error.
func Input(err error) error { return &ClassifiedError{class: ClassInput, err: err} }

// Runtime wraps err as a Runtime-class error.
func Runtime(err error) error { return &ClassifiedError{class: ClassRuntime, err: err} }

// Internal wraps err as an InternalConsistency-class error. Internal errors
// indicate a bug, not a user mistake; callers should treat them as fatal.
func Internal(err error) error { return &ClassifiedError{class: ClassInternalConsistency, err: err} }

// Is reports whether err (or something it wraps) belongs to class c.
func Is(err error, c Class) bool {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.class == c
	}
	return false
}
