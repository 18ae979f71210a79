// Package server holds the commands that run or prepare the planner service
package server

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/api"
	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/logging"
	"github.com/thenoetrevino/planner/internal/metrics"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Open the database, apply migrations and serve the HTTP API until
interrupted. SIGINT and SIGTERM drain in-flight requests before exiting.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	if err := logging.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.File); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	mode, err := ginMode(cfg.Server.Mode)
	if err != nil {
		return err
	}
	gin.SetMode(mode)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(database.NewRepository(db),
		app.WithMetrics(metrics.New()),
		app.WithLogger(logging.Logger),
	)
	srv := api.NewServer(application, cfg)

	slog.Info("planner starting", "addr", cfg.Server.Addr, "database", cfg.Database.Path, "pid", os.Getpid())
	if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("planner shut down gracefully")
	return nil
}

// ginMode validates the configured mode, since gin.SetMode panics on unknown values
func ginMode(mode string) (string, error) {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid server.mode %q (must be: %s, %s, %s)",
			mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			// InitDB applies pending migrations
			db, err := database.InitDB(cmd.Context(), cfg.Database.Path)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Error("error closing database", "error", err)
				}
			}()

			version, err := database.SchemaVersion(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Printf("Database %s is at schema version %d\n", cfg.Database.Path, version)
			return nil
		},
	}
}
