package app

import (
	"aocctl/internal/config"
	"aocctl/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath loads a single file instead of the user and project layers.
	ConfigPath string

	// Loaded aocctl configuration, set by NewApplication
	Aocctl *config.AocctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// LogLevel returns the effective log level. --debug wins over log_level.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.Aocctl != nil && c.Aocctl.LogLevel != "" {
		return logging.ParseLevel(c.Aocctl.LogLevel)
	}
	return logging.LevelInfo
}
