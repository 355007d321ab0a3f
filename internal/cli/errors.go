package cli

import (
	"errors"
	"fmt"
)

// UsageError reports bad arguments or flags
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IsUsageError checks if an error is a UsageError
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ReportedError marks an error the OutputFormatter already printed
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsReported checks if err was already shown to the user
func IsReported(err error) bool {
	var re *ReportedError
	return errors.As(err, &re)
}
