package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/testutil"
)

// Output tests swap os.Stdout and must not run in parallel.

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(map[string]any{"name": "Alpha"}))
	})

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Alpha", result["data"].(map[string]any)["name"])
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "Project not found", "run project list"))
	})

	var result struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "NOT_FOUND", result.Error.Code)
	assert.Equal(t, "Project not found", result.Error.Message)
	assert.Equal(t, "run project list", result.Error.Suggestion)
}

func TestOutputFormatter_Error_OmitsEmptySuggestion(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Error("INTERNAL_ERROR", "boom"))
	})

	assert.NotContains(t, out, "suggestion")
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	f := &OutputFormatter{}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Error("VALIDATION_ERROR", "bad"))
	})

	assert.Empty(t, out)
}

func TestOutputFormatter_Fail(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	cause := models.NotFound("Source project not found")

	var returned error
	out := testutil.CaptureOutput(t, func() {
		returned = f.Fail(cause)
	})

	assert.ErrorIs(t, returned, models.ErrNotFound)
	assert.True(t, IsReported(returned))
	assert.Equal(t, ExitNotFound, ExitCode(returned))
	result := testutil.ParseJSON(t, strings.TrimSpace(out))
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "Source project not found", errData["message"])
}

func TestOutputFormatter_WritesToCurrentStdout(t *testing.T) {
	// guards against caching os.Stdout at construction time
	f := &OutputFormatter{JSON: true}
	orig := os.Stdout

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success("ok"))
	})

	assert.Contains(t, out, `"ok"`)
	assert.Equal(t, orig, os.Stdout)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"not found", models.NotFound("Project not found"), ExitNotFound, "NOT_FOUND"},
		{"bad request", models.BadRequest("Project name cannot be blank"), ExitValidation, "VALIDATION_ERROR"},
		{"conflict", models.Conflict("Project name already exists"), ExitValidation, "CONFLICT"},
		{"usage", &UsageError{Flag: "source", Reason: "required"}, ExitUsage, "USAGE_ERROR"},
		{"other", errors.New("disk full"), ExitError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
			assert.Equal(t, tt.code, errorCode(tt.err))
		})
	}

	assert.Equal(t, ExitSuccess, ExitCode(nil))
}

func TestHandleError(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	var reported error
	testutil.CaptureOutput(t, func() {
		reported = f.Fail(models.Conflict("Project name already exists"))
	})

	t.Run("already reported is not printed again", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, ExitValidation, HandleError(&buf, reported))
		assert.Empty(t, buf.String())
	})

	t.Run("unreported is printed once", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, ExitError, HandleError(&buf, errors.New("unknown command \"frob\"")))
		assert.Equal(t, "Error: unknown command \"frob\"\n", buf.String())
		assert.False(t, IsReported(errors.New("plain")))
	})

	t.Run("usage error keeps its code through the wrapper", func(t *testing.T) {
		var usageErr error
		testutil.CaptureOutput(t, func() {
			usageErr = f.Fail(&UsageError{Flag: "page", Reason: "must not be negative"})
		})
		var buf bytes.Buffer
		assert.Equal(t, ExitUsage, HandleError(&buf, usageErr))
		assert.Empty(t, buf.String())
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, ExitSuccess, HandleError(&buf, nil))
		assert.Empty(t, buf.String())
	})
}
