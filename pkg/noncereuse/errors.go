package noncereuse

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingLine is returned when the line input has fewer than five lines.
	ErrMissingLine = errors.New("missing input line")

	// ErrMissingField is returned when a structured input lacks one of the five values.
	ErrMissingField = errors.New("missing input field")

	// ErrInvalidHex is returned when a value is not a plain hexadecimal string.
	ErrInvalidHex = errors.New("invalid hexadecimal value")

	// ErrNotInvertible is returned when a denominator is a multiple of the curve order.
	ErrNotInvertible = errors.New("denominator is not invertible modulo the curve order")
)

// InputError reports a malformed input value.
type InputError struct {
	Line  int    // 1-based line number, 0 when the source is not line oriented
	Field string // One of s1, s2, r, h1, h2
	Value string // Offending raw value, if any
	Err   error  // ErrMissingLine, ErrMissingField or ErrInvalidHex
}

func (e *InputError) Error() string {
	msg := e.Err.Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d (%s): %s", e.Line, e.Field, msg)
	}
	return fmt.Sprintf("field %s: %s", e.Field, msg)
}

func (e *InputError) Unwrap() error { return e.Err }

// PreconditionError reports that the inputs make a denominator non-invertible,
// e.g. s1 ≡ s2 or r ≡ 0 modulo n.
type PreconditionError struct {
	Operand string
	Err     error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operand, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// IsInputError reports whether err is, or wraps, an *InputError.
func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

// IsPreconditionError reports whether err is, or wraps, a *PreconditionError.
func IsPreconditionError(err error) bool {
	var target *PreconditionError
	return errors.As(err, &target)
}
