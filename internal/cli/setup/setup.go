// Package setup holds the commands that inspect and create planner's
// configuration
package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/planner/internal/cli"
	"github.com/thenoetrevino/planner/internal/cli/styles"
	"github.com/thenoetrevino/planner/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the planner configuration",
		Long: `Settings come from the config file, then PLANNER_* environment variables
(e.g. PLANNER_SERVER_ADDR, PLANNER_DATABASE_PATH) override them.`,
	}

	cmd.AddCommand(showCmd())
	cmd.AddCommand(initCmd())

	return cmd
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return (&cli.OutputFormatter{JSON: true}).Success(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ConfigPath(cmd)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return &cli.UsageError{Flag: "config", Reason: path + " already exists (use --force to overwrite)"}
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Println(styles.SuccessStyle.Render("Created") + " " + path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}
