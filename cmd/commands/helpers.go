package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/pkg/store"
)

// requireProjectDir is the shared PreRunE guard: without the .emopick
// directory the commands refuse to run.
func requireProjectDir(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(store.EmopickDir); os.IsNotExist(err) {
		return fmt.Errorf("no .emopick directory found. Run 'emopick init' first")
	}
	return nil
}
