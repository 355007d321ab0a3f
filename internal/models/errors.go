package models

import (
	"errors"
	"fmt"
)

// Validation failures for todo input
var (
	ErrEmptyTitle   = errors.New("todo title cannot be empty")
	ErrTitleTooLong = fmt.Errorf("todo title cannot exceed %d characters", MaxTitleLength)
	ErrInvalidTitle = errors.New("todo title must be valid single-line text")
	ErrInvalidOrder = errors.New("todo order must be positive")
)

// ValidationError reports structurally invalid input for a todo field.
// It is returned synchronously and never swallowed.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
