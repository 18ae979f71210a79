package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/app"
	plannercli "github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so GetCLIFromContext
// uses the test database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteWithContext(t, plannercli.WithApp(context.Background(), testApp), cmd, args)
}

// ExecuteWithContext runs cmd under ctx with stdout captured
func ExecuteWithContext(t *testing.T, ctx context.Context, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}

// NewRoot wraps sub in a root command carrying the global flags, the way
// the planner binary assembles its commands
func NewRoot(sub ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "planner"}
	plannercli.AddGlobalFlags(root)
	root.AddCommand(sub...)
	return root
}
