package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/imgsrc"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/store"
)

var (
	addName      string
	addURL       string
	addFile      string
	addKeywords  []string
	addSkipCheck bool
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add or update a custom emoji",
		Long: `Add a custom emoji to the store, or update the one with the same id.

The image source is either a remote URL (--url) or a local image file
(--file) which is validated and embedded as an inline data URI. Remote URLs
are checked for existence and content type unless --skip-check is given.

Examples:
  # Add from a remote image
  emopick add party-parrot --name "Party Parrot" --url https://example.com/parrot.gif

  # Add from a local file, with extra search keywords
  emopick add wave --name "Wave" --file ./wave.png --keywords hello,goodbye

  # Update an existing emoji's image in place
  emopick add wave --name "Wave" --url https://example.com/wave2.png`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProjectDir,
		RunE:    runAdd,
	}

	cmd.Flags().StringVarP(&addName, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&addURL, "url", "u", "", "Remote image URL")
	cmd.Flags().StringVarP(&addFile, "file", "f", "", "Local image file to embed")
	cmd.Flags().StringSliceVarP(&addKeywords, "keywords", "k", nil, "Extra search keywords")
	cmd.Flags().BoolVar(&addSkipCheck, "skip-check", false, "Skip the live URL existence check")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	id := args[0]

	if err := store.ValidateID(id); err != nil {
		return err
	}
	if err := cli.ValidateEmojiName(addName); err != nil {
		return err
	}

	settings, err := store.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	var src string
	switch {
	case addURL != "" && addFile != "":
		return fmt.Errorf("--url and --file are mutually exclusive")
	case addURL != "":
		if err := imgsrc.ValidateURL(addURL); err != nil {
			return err
		}
		if settings.URLCheck.Enabled && !addSkipCheck {
			timeout := time.Duration(settings.URLCheck.TimeoutSeconds) * time.Second
			if err := imgsrc.CheckURL(addURL, timeout); err != nil {
				return fmt.Errorf("URL check failed: %w", err)
			}
		}
		src = addURL
	case addFile != "":
		encoded, err := imgsrc.EncodeFile(addFile, settings.Upload.MaxFileSize)
		if err != nil {
			return err
		}
		src = encoded
	default:
		return fmt.Errorf("one of --url or --file is required")
	}

	if err := store.Add(models.CustomEmoji{ID: id, Name: addName, Src: src, Keywords: addKeywords}); err != nil {
		return err
	}

	cli.PrintSuccess("Custom emoji '%s' saved", id)
	if addFile != "" {
		if info, err := os.Stat(addFile); err == nil {
			cli.PrintInfo("Embedded %s (%s)", addFile, cli.FormatBytes(info.Size()))
		}
	}

	return nil
}
