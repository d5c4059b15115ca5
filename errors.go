package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols to count.
	ErrEmptyInput = errors.New("empty input")

	// ErrZeroCount is returned when a frequency table entry has a count of 0.
	ErrZeroCount = errors.New("symbol count must be positive")

	// ErrDuplicateSymbol is returned when a frequency table lists a symbol
	// more than once.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrInvalidSymbol is returned for negative symbols.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvariantViolation is matched by every *InvariantError.  It signals
	// a defect in the code construction itself, never bad user input.
	ErrInvariantViolation = errors.New("invariant violation")
)

// InvariantError reports a broken internal invariant.  These are not
// recoverable: retrying on identical input yields the identical failure.
type InvariantError struct {
	// Op names the pipeline stage that detected the problem.
	Op string

	// Msg describes what was wrong.
	Msg string
}

func newInvariantError(op string, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Error fulfills the error interface.
func (err *InvariantError) Error() string {
	return fmt.Sprintf("huffman: %s: %v: %s", err.Op, ErrInvariantViolation, err.Msg)
}

// Is returns true for ErrInvariantViolation.
func (err *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

var _ error = (*InvariantError)(nil)
