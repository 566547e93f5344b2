package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"aocctl/internal/catalog"
	"aocctl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/aocctl"
	projectConfigDir = ".aocctl"
	configFileName   = "config.yaml"

	// EnvPrefix prefixes environment overrides. A double underscore separates
	// nested keys: AOCCTL_ENGINE__TYPE=command.
	EnvPrefix = "AOCCTL_"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads the aocctl configuration by layering default, user and
// project settings, then environment overrides.
func LoadConfig() (*AocctlConfig, error) {
	k := koanf.New(".")

	// 1. User configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if err := loadFileLayer(k, userConfigPath); err != nil {
		return nil, err
	}

	// 2. Project configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if err := loadFileLayer(k, projectConfigPath); err != nil {
		return nil, err
	}

	return finishLoad(k)
}

// LoadConfigFromPath loads the defaults overlaid with the single file at path
// and environment overrides. Unlike LoadConfig, the file must exist.
func LoadConfigFromPath(path string) (*AocctlConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}
	k := koanf.New(".")
	if err := loadFileLayer(k, path); err != nil {
		return nil, err
	}
	return finishLoad(k)
}

// finishLoad applies environment overrides and decodes k onto the defaults.
func finishLoad(k *koanf.Koanf) (*AocctlConfig, error) {
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := GetDefaultConfig()
	if k.Exists("pages") {
		// A configured page list replaces the default one; decoding onto the
		// existing slice would merge fields index by index.
		cfg.Pages = nil
	}
	if k.Exists("engine.command") {
		cfg.Engine.Command = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKeyValue maps AOCCTL_UI__DARK_MODE to ui.dark_mode. List values are
// comma separated.
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if key == "engine.command" {
		return key, strings.Split(value, ",")
	}
	return key, value
}

// loadFileLayer merges the YAML file at path into k when it exists.
func loadFileLayer(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("accessing config %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// GetUserConfigPath returns the path of the user configuration file.
func GetUserConfigPath() (string, error) {
	return getUserConfigPath()
}

// GetProjectConfigPath returns the path of the project configuration file.
func GetProjectConfigPath() (string, error) {
	return getProjectConfigPath()
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *AocctlConfig) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML renders the configuration as it would be saved.
func (c *AocctlConfig) YAML() (string, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshalling config: %w", err)
	}
	return string(data), nil
}

var validEngineTypes = map[EngineType]bool{
	EngineBuiltin: true,
	EngineCommand: true,
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks that the configuration contains valid values.
func (c *AocctlConfig) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("%w: year %d is before the first event (2015)", ErrInvalidConfig, c.Year)
	}
	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: log_level %q must be one of debug, info, warn, error", ErrInvalidConfig, c.LogLevel)
	}
	for i, p := range c.Pages {
		if p.Day < 1 || p.Day > 25 {
			return fmt.Errorf("%w: pages[%d]: day %d is outside 1-25", ErrInvalidConfig, i, p.Day)
		}
	}
	if !validEngineTypes[c.Engine.Type] {
		return fmt.Errorf("%w: engine.type %q must be one of builtin, command", ErrInvalidConfig, c.Engine.Type)
	}
	if c.Engine.Type == EngineCommand && len(c.Engine.Command) == 0 {
		return fmt.Errorf("%w: engine.command is required for the command engine", ErrInvalidConfig)
	}
	if c.Engine.Timeout < 0 {
		return fmt.Errorf("%w: engine.timeout must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// DaySpecs converts the configured pages into catalog day specs.
func (c *AocctlConfig) DaySpecs() []catalog.DaySpec {
	specs := make([]catalog.DaySpec, 0, len(c.Pages))
	for _, p := range c.Pages {
		specs = append(specs, catalog.DaySpec{
			Day:         p.Day,
			Title:       p.Title,
			Name:        p.Name,
			PuzzleLink:  p.PuzzleLink,
			CodeLink:    p.CodeLink,
			Description: p.Description,
		})
	}
	return specs
}

// LinkTemplates returns the link templates for the configured year.
func (c *AocctlConfig) LinkTemplates() catalog.LinkTemplates {
	return catalog.LinkTemplates{
		Year:   c.Year,
		Puzzle: c.Links.PuzzleTemplate,
		Code:   c.Links.CodeTemplate,
	}
}

// Catalog builds the page catalog described by the configuration.
func (c *AocctlConfig) Catalog() *catalog.Catalog {
	return catalog.BuildDays(c.DaySpecs(), c.LinkTemplates())
}
