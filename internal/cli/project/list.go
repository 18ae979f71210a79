package project

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/cli/styles"
	"github.com/thenoetrevino/planner/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List projects, newest first, one page at a time.

Examples:
  planner project list
  planner project list --page 1 --size 50
  planner project list --json
`,
		RunE: runList,
	}

	cmd.Flags().Int("page", 0, "Zero-based page number")
	cmd.Flags().Int("size", 0, "Page size (default from config)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")
	if page < 0 {
		return formatter.Fail(&cli.UsageError{Flag: "page", Reason: "must not be negative"})
	}
	if size == 0 {
		size = cliInstance.Config.Pagination.DefaultSize
	}
	req := models.PageRequest{Page: page, Size: size}.Normalize(cliInstance.Config.Pagination.MaxSize)

	result, err := cliInstance.App.ProjectService.ListProjects(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, p := range result.Content {
			fmt.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(result)
	}

	if result.TotalElements == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Page %d of %d (%d projects)\n\n", result.Page+1, result.TotalPages, result.TotalElements)
	for _, p := range result.Content {
		fmt.Printf("  %s  %s  %s\n",
			styles.TitleStyle.Render(p.Name),
			styles.Field("start", p.StartDate.String()),
			styles.SubtitleStyle.Render(p.ID.String()),
		)
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}

	return nil
}
