package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/store"
)

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all custom emojis",
		Long: `Remove every custom emoji from the store. The base emoji set is not
affected.

Examples:
  # Clear the store (asks for confirmation)
  emopick clear

  # Clear without the confirmation prompt
  emopick clear --yes`,
		Args:    cobra.NoArgs,
		PreRunE: requireProjectDir,
		RunE:    runClear,
	}

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	records := store.Load()
	if len(records) == 0 {
		cli.PrintInfo("The store is already empty")
		return nil
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		confirmed, err := cli.Confirm(fmt.Sprintf("Remove all %d custom emojis?", len(records)), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Clear cancelled")
			return nil
		}
	}

	if err := store.Clear(); err != nil {
		return err
	}

	cli.PrintSuccess("Removed %d custom emojis", len(records))
	return nil
}
