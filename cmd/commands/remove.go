package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/store"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a custom emoji",
		Long: `Remove the custom emoji with the given id from the store.

Examples:
  # Remove an emoji
  emopick remove party-parrot

  # Remove without the confirmation prompt
  emopick remove party-parrot --yes`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		PreRunE: requireProjectDir,
		RunE:    runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		confirmed, err := cli.Confirm(fmt.Sprintf("Remove custom emoji '%s'?", id), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Remove cancelled")
			return nil
		}
	}

	removed, err := store.Remove(id)
	if err != nil {
		return err
	}
	if !removed {
		cli.PrintWarning("No custom emoji with id '%s'", id)
		return nil
	}

	cli.PrintSuccess("Custom emoji '%s' removed", id)
	return nil
}
