package app

import (
	"context"
	"fmt"
	"os"

	"aocctl/internal/config"
	"aocctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs aocctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Log to stderr until the configured level is known; stdout carries answers.
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	aocCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load aocctl configuration")
		return nil, err
	}
	cfg.Aocctl = aocCfg
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// LoadConfig loads and validates the configuration, either from path or,
// when path is empty, from the user and project layers.
func LoadConfig(path string) (*config.AocctlConfig, error) {
	var (
		cfg *config.AocctlConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadConfigFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load aocctl configuration from path %s: %w", path, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", path)
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load aocctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the line console
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.services)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
