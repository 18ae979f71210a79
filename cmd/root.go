package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/cli/project"
	"github.com/thenoetrevino/planner/internal/cli/server"
	"github.com/thenoetrevino/planner/internal/cli/setup"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Planner - project timelines over HTTP",
	Long: `Planner schedules tasks and tags against a project's start date and
serves them over a JSON HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(server.ServeCmd())
	rootCmd.AddCommand(server.MigrateCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(setup.ConfigCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
