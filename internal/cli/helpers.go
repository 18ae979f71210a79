package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// FormatterFor builds an OutputFormatter from the --json and --quiet flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ParseIDFlag reads a UUID-valued flag
func ParseIDFlag(cmd *cobra.Command, name string) (uuid.UUID, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, &UsageError{Flag: name, Reason: "required"}
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &UsageError{Flag: name, Reason: "not a valid UUID"}
	}
	return id, nil
}
