package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: roster result", ErrNotFound)

	// Normalization errors
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyTable    = errors.New("table has no columns")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMissingColumnError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}
