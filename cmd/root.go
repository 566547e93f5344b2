package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// debug enables verbose logging across the application.
	debug bool

	// configPath loads a single configuration file instead of the user and
	// project layers.
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aocctl",
	Short: "Solve Advent of Code puzzles from your terminal",
	Long: `aocctl is a puzzle console for Advent of Code. Pick a day, enter or
upload its puzzle input and both parts are solved right away, either by the
solvers built into aocctl or by your own program.

Running aocctl without a subcommand starts the interactive console.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable input files, invalid configuration)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runConsole,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "aocctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: ~/.config/aocctl/config.yaml and ./.aocctl/config.yaml)")
	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Use the line console instead of the TUI")

	rootCmd.AddCommand(newConsoleCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newPagesCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
