// Package cli holds the shared plumbing for the planner command line: the
// application handle, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/config"
	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/logging"
	"github.com/thenoetrevino/planner/internal/metrics"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
}

// NewCLI opens the configured database and wires the services
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(db),
		app.WithMetrics(metrics.New()),
		app.WithLogger(logging.Logger),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
	}, nil
}

// GetCLIFromContext returns the CLI for cmd. An app placed on the command
// context with WithApp is used as-is; otherwise the database named by the
// loaded config is opened.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.DefaultConfig()}, nil
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources. Injected apps are owned by the caller.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
