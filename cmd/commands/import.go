package commands

import (
	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/store"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import custom emojis from a JSON file",
		Long: `Import custom emojis from a JSON export file and merge them into the
store by id: existing ids are updated in place, new ids are appended. If any
record in the file is invalid the whole import is rejected and nothing is
written.

Examples:
  # Import a previously exported collection
  emopick import custom-emojis-2026-08-30.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProjectDir,
		RunE:    runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	added, updated, err := store.ImportFrom(args[0])
	if err != nil {
		return err
	}

	cli.PrintSuccess("Import complete: %d added, %d updated", added, updated)
	return nil
}
