package app

import (
	"fmt"

	"aocctl/internal/catalog"
	"aocctl/internal/config"
	"aocctl/internal/engine"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

// Services holds the catalog and the engine shared by every front end.
type Services struct {
	Catalog *catalog.Catalog
	Engine  solve.Engine
}

// InitializeServices builds the catalog and the configured engine.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.Aocctl == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	eng, err := NewEngine(cfg.Aocctl.Engine)
	if err != nil {
		return nil, err
	}

	cat := cfg.Aocctl.Catalog()
	logging.Debug("Bootstrap", "Catalog has %d pages", cat.Len())

	return &Services{
		Catalog: cat,
		Engine:  eng,
	}, nil
}

// NewEngine returns the engine selected by ec.
func NewEngine(ec config.EngineConfig) (solve.Engine, error) {
	switch ec.Type {
	case config.EngineBuiltin, "":
		b := engine.NewBuiltin()
		logging.Debug("Bootstrap", "Using builtin engine for days %v", b.Days())
		return b, nil
	case config.EngineCommand:
		c, err := engine.NewCommand(ec.Command, ec.Timeout)
		if err != nil {
			return nil, fmt.Errorf("creating command engine: %w", err)
		}
		logging.Debug("Bootstrap", "Using command engine %v", ec.Command)
		return c, nil
	default:
		return nil, fmt.Errorf("unknown engine type %q", ec.Type)
	}
}
