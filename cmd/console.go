package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aocctl/internal/app"
)

// noTUI selects the readline console, useful over plain SSH sessions or in
// terminals that cannot host the full screen UI.
var noTUI bool

func newConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive puzzle console",
		Long: `Starts the puzzle console. It can run in two modes:

1. Interactive TUI Mode (default):
   - Day pages in a sidebar, the selected puzzle on the right.
   - Edit the input in place, upload a file or paste the clipboard.
   - Both parts are solved whenever the input changes.

2. Line console (using --no-tui flag):
   - A prompt with commands such as 'select', 'load' and 'input'.
   - Answers are printed after every input change.`,
		Args: cobra.NoArgs,
		RunE: runConsole,
	}
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Use the line console instead of the TUI")
	return cmd
}

// runConsole is the entry point for the console and the root command.
func runConsole(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debug, configPath)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
