package controller

import (
	"aocctl/internal/catalog"
	"aocctl/internal/config"
	"aocctl/internal/solve"
	"aocctl/internal/tui/design"
	"aocctl/internal/tui/model"
	"aocctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the puzzle console.
func NewProgram(
	cfg *config.AocctlConfig,
	cat *catalog.Catalog,
	engine solve.Engine,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, *model.Model) {
	design.Initialize(cfg.UI.DarkMode)

	m := model.InitializeModel(cat, engine, model.Options{
		Year:        cfg.Year,
		DefaultPage: cfg.DefaultPage,
		DarkMode:    cfg.UI.DarkMode,
	}, logChannel)

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tea.NewProgram(NewAppModel(m), opts...), m
}
