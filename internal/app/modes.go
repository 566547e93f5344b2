package app

import (
	"context"
	"os"

	"aocctl/internal/console"
	"aocctl/internal/tui/controller"
	"aocctl/pkg/logging"
)

// runCLIMode runs the line console on the terminal.
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	shell := console.New(services.Catalog, services.Engine,
		console.WithDispatcher(console.Synchronous),
		console.WithDefaultPage(config.Aocctl.DefaultPage),
	)
	defer shell.Close()

	repl := NewREPL(shell, os.Stdout)
	return repl.Run(ctx)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	p, m := controller.NewProgram(config.Aocctl, services.Catalog, services.Engine, logChan)
	defer m.Shutdown()

	// Quit the program when the caller's context ends, e.g. on SIGTERM.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
