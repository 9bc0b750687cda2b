package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors surfaced by boundary adapters (readers, config).
	// The scoring core itself never fails on malformed business input;
	// it clamps and degrades instead.
	ErrNotFound          = errors.New("resource not found")
	ErrFileNotFound      = fmt.Errorf("%w: file", ErrNotFound)
	ErrColumnNotFound    = fmt.Errorf("%w: column", ErrNotFound)
	ErrEmptyInput        = errors.New("input contains no data rows")
	ErrMissingHeader     = errors.New("input is missing a header row")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Error constructors with context
func NewReadError(path string, err error) error {
	return fmt.Errorf("reading dataset %s: %w", path, err)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMissingHeader) ||
		errors.Is(err, ErrUnsupportedFormat)
}
