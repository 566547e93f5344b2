package config

import (
	"time"
)

// AocctlConfig is the top-level configuration structure for aocctl.
type AocctlConfig struct {
	Year        int          `yaml:"year" koanf:"year"`
	DefaultPage string       `yaml:"default_page,omitempty" koanf:"default_page"`
	LogLevel    string       `yaml:"log_level" koanf:"log_level"`
	Links       LinksConfig  `yaml:"links" koanf:"links"`
	Pages       []PageConfig `yaml:"pages" koanf:"pages"`
	Engine      EngineConfig `yaml:"engine" koanf:"engine"`
	UI          UIConfig     `yaml:"ui" koanf:"ui"`
	Update      UpdateConfig `yaml:"update" koanf:"update"`
}

// PageConfig describes one day page of the catalog.
type PageConfig struct {
	Day         int    `yaml:"day" koanf:"day"`
	Title       string `yaml:"title,omitempty" koanf:"title"`               // Sidebar title, defaults to "Day NN"
	Name        string `yaml:"name,omitempty" koanf:"name"`                 // Puzzle name, e.g. "Print Queue"
	PuzzleLink  string `yaml:"puzzle_link,omitempty" koanf:"puzzle_link"`   // Overrides links.puzzle_template
	CodeLink    string `yaml:"code_link,omitempty" koanf:"code_link"`       // Overrides links.code_template
	Description string `yaml:"description,omitempty" koanf:"description"` // Markdown shown below the answers
}

// LinksConfig holds the templates used for pages without explicit links.
// Supported placeholders: {year}, {day}, {day2}.
type LinksConfig struct {
	PuzzleTemplate string `yaml:"puzzle_template" koanf:"puzzle_template"`
	CodeTemplate   string `yaml:"code_template,omitempty" koanf:"code_template"`
}

// EngineType selects how answers are computed.
type EngineType string

const (
	// EngineBuiltin uses the solvers compiled into aocctl.
	EngineBuiltin EngineType = "builtin"
	// EngineCommand runs an external program per part.
	EngineCommand EngineType = "command"
)

// EngineConfig configures the solving engine.
type EngineConfig struct {
	Type    EngineType    `yaml:"type" koanf:"type"`
	Command []string      `yaml:"command,omitempty" koanf:"command"` // e.g. ["go", "run", "./day{day2}", "-part", "{part}"]
	Timeout time.Duration `yaml:"timeout,omitempty" koanf:"timeout"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	DarkMode  bool `yaml:"dark_mode" koanf:"dark_mode"`
	AltScreen bool `yaml:"alt_screen" koanf:"alt_screen"`
}

// UpdateConfig configures self-update.
type UpdateConfig struct {
	Repository string `yaml:"repository" koanf:"repository"` // GitHub owner/repo
}
