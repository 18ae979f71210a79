package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CaptureOutput captures stdout during fn. Callers must not run in parallel
// with other tests that write to stdout.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")

	os.Stdout = w
	restored := false
	restore := func() {
		if !restored {
			_ = w.Close()
			os.Stdout = orig
			restored = true
		}
	}
	// fn may call t.FailNow; stdout must come back either way
	t.Cleanup(restore)

	outC := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()
	restore()

	return <-outC
}

// ParseJSON decodes the last JSON document a command printed
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := lines[len(lines)-1]

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(last), &result), "output: %s", output)
	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
