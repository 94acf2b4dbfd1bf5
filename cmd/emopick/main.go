package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/emopick/emopick-cli/cmd/commands"
	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/store"
	"github.com/emopick/emopick-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "emopick",
	Short: "Terminal emoji picker with custom image-backed emojis",
	Long: `Emopick is a terminal emoji picker for chat composing. It attaches a
searchable picker to a message composer, inserts the selected emoji at the
caret, and layers custom image-backed emojis on top: add them by file or
URL, and they are inserted as markdown image references.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
		return cli.ValidateOutputFormat(flagOutput)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// The TUI refuses to start without the project directory, the same
		// way the commands do.
		if _, err := os.Stat(store.EmopickDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .emopick directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'emopick init' first to initialize a new project.\n")
			os.Exit(1)
		}

		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Emopick project",
	Long:  `Creates the .emopick folder with default settings in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Emopick project in %s...\n", cwd)

		if err := store.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .emopick folder with default settings")
		fmt.Println("✓ You can now add custom emojis with 'emopick add'")
		fmt.Println("\nRun 'emopick' to start the interactive picker.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Emopick",
	Long:  `Display the current version of the Emopick CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Emopick version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewClearCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
}

func main() {
	// Store decode/write problems are logged rather than fatal; keep the log
	// on stderr at warn level so the TUI stays clean.
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	})))

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
