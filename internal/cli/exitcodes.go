package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/planner/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Project not found, source project not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable config files or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names, duplicate names, or any case where input fails
	// the service rules.
	ExitValidation = 5
)

// UsageError reports a malformed flag value
type UsageError struct {
	Flag   string
	Reason string
}

func (e *UsageError) Error() string {
	return "invalid value for --" + e.Flag + ": " + e.Reason
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrBadRequest), errors.Is(err, models.ErrConflict):
		return ExitValidation
	default:
		return ExitError
	}
}

// HandleError prints err to w unless a formatter already reported it, and
// returns the exit code for it
func HandleError(w io.Writer, err error) int {
	if err != nil && !IsReported(err) {
		fmt.Fprintln(w, "Error:", err)
	}
	return ExitCode(err)
}

// errorCode names err for JSON output
func errorCode(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, models.ErrBadRequest):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrConflict):
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
