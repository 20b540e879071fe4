package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument classifies malformed input to the calendar functions.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which operation rejected its input and why.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidArgument, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
