package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/planner/internal/cli/styles"
	"github.com/thenoetrevino/planner/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful result in JSON mode. Human and quiet output
// are written by each command since they depend on the data.
func (f *OutputFormatter) Success(data any) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.WarningStyle.Render("Hint"), suggestion)
	}
	return nil
}

// reportedError marks an error the formatter has already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err already went through Fail
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Fail reports err in the current mode and returns it so commands can
// `return formatter.Fail(err)`
func (f *OutputFormatter) Fail(err error) error {
	message := err.Error()
	if d := models.Detail(err); d != "" {
		message = d
	}
	if fmtErr := f.Error(errorCode(err), message); fmtErr != nil {
		return fmt.Errorf("%w (and failed to report it: %v)", err, fmtErr)
	}
	return &reportedError{err: err}
}
