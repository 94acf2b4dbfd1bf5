package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/store"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []models.CustomEmoji `json:"items" yaml:"items"`
	Count int                  `json:"count" yaml:"count"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom emojis",
		Long: `List all custom emojis in the store.

Examples:
  # List as a table
  emopick list

  # List with JSON output
  emopick list -o json`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		PreRunE: requireProjectDir,
		RunE:    runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	records := store.Load()

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, ListResult{Items: records, Count: len(records)})
	}

	if len(records) == 0 {
		cli.PrintInfo("No custom emojis yet. Add one with 'emopick add'.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "SOURCE", "KEYWORDS")
	for _, rec := range records {
		table.Row(rec.ID, rec.Name, cli.TruncateString(rec.Src, 40), strings.Join(rec.Keywords, ", "))
	}
	table.Flush()

	return nil
}
