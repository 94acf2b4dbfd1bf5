package commands

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/store"
)

var exportToFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the custom emoji collection to a JSON file",
		Long: `Export all custom emojis as a JSON file that 'emopick import' accepts.

Without --file the export is written to the configured export path under a
dated name, e.g. custom-emojis-2026-08-30.json.

Examples:
  # Export with the dated default name
  emopick export

  # Export to a specific file
  emopick export --file backup.json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProjectDir,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to a specific file")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := store.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	path := exportToFile
	if path == "" {
		name := store.ExportFilename(settings.Export.FilenamePrefix, time.Now())
		path = filepath.Join(settings.Export.Path, name)
	}

	count, err := store.ExportTo(path)
	if err != nil {
		return err
	}

	cli.PrintSuccess("%d custom emojis exported to: %s", count, path)
	return nil
}
