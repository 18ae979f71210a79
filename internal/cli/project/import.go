package project

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/cli/styles"
	projectservice "github.com/thenoetrevino/planner/internal/services/project"
)

// ImportCmd returns the project import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create a project from an existing one",
		Long: `Create a new project that copies the start date of a source project and,
optionally, its tasks, tags and notes. Copied tasks and tags keep their
absolute dates.

Examples:
  # Copy everything
  planner project import --source=<uuid> --name="Q3 launch" --tasks --tags --notes

  # Quiet mode for bash capture
  PROJECT_ID=$(planner project import --source=<uuid> --name="Copy" --quiet)
`,
		RunE: runImport,
	}

	// Required flags
	cmd.Flags().String("source", "", "Source project ID (required)")
	cmd.Flags().String("name", "", "Name of the new project (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Description of the new project (default: source description)")
	cmd.Flags().Bool("tasks", false, "Copy tasks")
	cmd.Flags().Bool("tags", false, "Copy tags")
	cmd.Flags().Bool("notes", false, "Copy project notes")
	cmd.Flags().Bool("actions", false, "Copy actions (currently copies nothing)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	sourceID, err := cli.ParseIDFlag(cmd, "source")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	name, _ := cmd.Flags().GetString("name")
	req := projectservice.ImportProjectRequest{
		SourceProjectID: sourceID,
		NewProjectName:  name,
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	req.ImportTasks, _ = cmd.Flags().GetBool("tasks")
	req.ImportTags, _ = cmd.Flags().GetBool("tags")
	req.ImportNotes, _ = cmd.Flags().GetBool("notes")
	req.ImportActions, _ = cmd.Flags().GetBool("actions")

	result, err := cliInstance.App.ProjectService.ImportProject(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Println(result.NewProjectID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(result)
	}

	fmt.Println(styles.SuccessStyle.Render("Imported") + " " + result.Message)
	fmt.Println(styles.RenderCard(fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		styles.Field("id", result.NewProjectID.String()),
		styles.Field("tasks", fmt.Sprint(result.ImportedTasksCount)),
		styles.Field("tags", fmt.Sprint(result.ImportedTagsCount)),
		styles.Field("notes", fmt.Sprint(result.ImportedNotesCount)),
		styles.Field("actions", fmt.Sprint(result.ImportedActionsCount)),
	)))
	return nil
}
