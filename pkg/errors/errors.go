// Package errors provides the structured error types used by the
// statistics layer. Kernel packages never construct errors, since their
// contract is sentinel values or documented undefined behavior, so
// everything here belongs to the guarded, allocating tier.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel causes, usable with errors.Is.
var (
	ErrEmptyData  = errors.New("empty data")
	ErrDimension  = errors.New("dimension mismatch")
	ErrInvalidArg = errors.New("invalid argument")
	ErrDegenerate = errors.New("degenerate input")
)

// DimensionError reports mismatched input lengths for an operation that
// requires equal-length arrays.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Op, e.Expected, e.Got)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// NewDimensionError wraps a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got})
}

// NewEmptyDataError reports an operation invoked on zero-length input
// where a result cannot be defined even as a sentinel.
func NewEmptyDataError(op string) error {
	return errors.WithStack(errors.Wrapf(ErrEmptyData, "%s", op))
}

// NewValueError reports an argument outside its documented domain, such
// as a non-positive window size.
func NewValueError(op, format string, args ...any) error {
	return errors.WithStack(errors.Wrapf(ErrInvalidArg, "%s: %s", op, fmt.Sprintf(format, args...)))
}

// Is re-exports cockroachdb/errors.Is so callers need only one errors
// import.
func Is(err, target error) bool { return errors.Is(err, target) }
