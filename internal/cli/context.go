package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/config"
)

// ContextKey namespaces values the CLI stores on a command context
type ContextKey string

// AppKey carries a prebuilt *app.App, used by tests to run commands against
// an in-memory store
const AppKey ContextKey = "app"

// WithApp returns a context that makes GetCLIFromContext reuse a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// AddGlobalFlags registers the flags every planner command understands
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/planner/config.yaml)")
}

// ConfigPath returns the --config value, falling back to the default location
func ConfigPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	return config.DefaultPath()
}

// LoadConfig loads the config selected by --config
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := ConfigPath(cmd)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
