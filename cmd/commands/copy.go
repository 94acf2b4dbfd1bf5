package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/composer"
	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/insert"
	"github.com/emopick/emopick-cli/pkg/store"
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy an emoji's insertion text to the clipboard",
		Long: `Copy the text an emoji would insert into a message: the native glyph
for standard emojis, a markdown image reference for custom ones.

The id is looked up in the composed dataset, so both base and custom emojis
work.

Examples:
  # Copy a standard emoji glyph
  emopick copy thumbsup

  # Copy a custom emoji's markdown reference
  emopick copy party-parrot`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip"},
		PreRunE: requireProjectDir,
		RunE:    runCopy,
	}

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	id := args[0]

	data := composer.Compose(emoji.Base(), store.Load())
	e, ok := data.Lookup(id)
	if !ok {
		return fmt.Errorf("no emoji with id '%s'. Run 'emopick list' to see custom emojis", id)
	}

	text := insert.ResolveText(e)
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("'%s' copied to clipboard", text)
	return nil
}
