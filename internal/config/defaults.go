package config

import (
	"time"
)

// Puzzle names of the days bundled by default.
var defaultDayNames = []string{
	"Historian Hysteria",
	"Red-Nosed Reports",
	"Mull It Over",
	"Ceres Search",
	"Print Queue",
	"Guard Gallivant",
	"Bridge Repair",
	"Resonant Collinearity",
	"Disk Fragmenter",
}

// GetDefaultConfig returns the configuration used when no file overrides it:
// the 2024 days with builtin solving.
func GetDefaultConfig() *AocctlConfig {
	pages := make([]PageConfig, 0, len(defaultDayNames))
	for i, name := range defaultDayNames {
		pages = append(pages, PageConfig{Day: i + 1, Name: name})
	}

	return &AocctlConfig{
		Year:     2024,
		LogLevel: "info",
		Links: LinksConfig{
			PuzzleTemplate: "https://adventofcode.com/{year}/day/{day}",
		},
		Pages: pages,
		Engine: EngineConfig{
			Type:    EngineBuiltin,
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			DarkMode:  true,
			AltScreen: true,
		},
		Update: UpdateConfig{
			Repository: "advent-of-go/aocctl",
		},
	}
}
