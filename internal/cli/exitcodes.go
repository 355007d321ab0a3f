package cli

import (
	"errors"

	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: bad arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested todo was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a corrupted store record or an unusable configuration.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: titles that are too long or contain control characters.
	ExitValidation = 5
)

// Error codes reported in JSON error output
const (
	CodeUsage      = "USAGE_ERROR"
	CodeNotFound   = "TODO_NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeConfig     = "CONFIG_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsUsageError(err):
		return ExitUsage
	case errors.Is(err, todoservice.ErrTodoNotFound):
		return ExitNotFound
	case models.IsValidationError(err):
		return ExitValidation
	case errors.Is(err, config.ErrUnknownBackend):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode maps an error to the code reported in JSON output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return CodeUsage
	case ExitNotFound:
		return CodeNotFound
	case ExitValidation:
		return CodeValidation
	case ExitDataErr:
		return CodeConfig
	default:
		return CodeInternal
	}
}
