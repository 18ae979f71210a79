// Package project holds all cli commands related to projects
//
// e.g., planner project ...
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
