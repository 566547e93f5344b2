package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocctl/internal/catalog"
)

// withConfigPaths points the user and project layers at files in a temp dir.
func withConfigPaths(t *testing.T) (userPath, projectPath string) {
	t.Helper()
	tempDir := t.TempDir()
	userPath = filepath.Join(tempDir, "user", "config.yaml")
	projectPath = filepath.Join(tempDir, "project", "config.yaml")

	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	withConfigPaths(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Pages, 9)
	assert.Equal(t, "Bridge Repair", cfg.Pages[6].Name)
}

func TestLoadConfig_UserAndProjectLayers(t *testing.T) {
	userPath, projectPath := withConfigPaths(t)

	writeFile(t, userPath, `
year: 2023
log_level: debug
ui:
  dark_mode: false
`)
	writeFile(t, projectPath, `
default_page: "Day 02"
engine:
  type: command
  command: ["./solve", "{day}", "{part}"]
  timeout: 5s
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.UI.DarkMode)
	assert.True(t, cfg.UI.AltScreen, "untouched keys keep their defaults")
	assert.Equal(t, "Day 02", cfg.DefaultPage)
	assert.Equal(t, EngineCommand, cfg.Engine.Type)
	assert.Equal(t, []string{"./solve", "{day}", "{part}"}, cfg.Engine.Command)
	assert.Equal(t, 5*time.Second, cfg.Engine.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userPath, projectPath := withConfigPaths(t)
	writeFile(t, userPath, "year: 2022\n")
	writeFile(t, projectPath, "year: 2021\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2021, cfg.Year)
}

func TestLoadConfig_PagesReplaceDefaults(t *testing.T) {
	_, projectPath := withConfigPaths(t)
	writeFile(t, projectPath, `
pages:
  - day: 7
  - day: 3
    title: "Mul"
    description: "Parse **mul** instructions."
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Len(t, cfg.Pages, 2)
	assert.Equal(t, PageConfig{Day: 7}, cfg.Pages[0])
	assert.Equal(t, "Mul", cfg.Pages[1].Title)
	assert.Equal(t, "", cfg.Pages[1].Name)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	withConfigPaths(t)
	t.Setenv("AOCCTL_YEAR", "2019")
	t.Setenv("AOCCTL_ENGINE__TYPE", "command")
	t.Setenv("AOCCTL_ENGINE__COMMAND", "python3,solve.py,{day}")
	t.Setenv("AOCCTL_UI__ALT_SCREEN", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2019, cfg.Year)
	assert.Equal(t, EngineCommand, cfg.Engine.Type)
	assert.Equal(t, []string{"python3", "solve.py", "{day}"}, cfg.Engine.Command)
	assert.False(t, cfg.UI.AltScreen)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	userPath, _ := withConfigPaths(t)
	writeFile(t, userPath, "year: [unclosed\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), userPath)
}

func TestLoadConfigFromPath(t *testing.T) {
	userPath, _ := withConfigPaths(t)
	writeFile(t, userPath, "year: 2016\n")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
year: 2022
pages:
  - day: 3
    name: Rucksack Reorganization
`)

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 2022, cfg.Year, "the layered user file is ignored")
	require.Len(t, cfg.Pages, 1)
	assert.Equal(t, "Rucksack Reorganization", cfg.Pages[0].Name)
	assert.Equal(t, EngineBuiltin, cfg.Engine.Type)
}

func TestLoadConfigFromPath_Missing(t *testing.T) {
	_, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AocctlConfig)
		wantErr string
	}{
		{"defaults", func(c *AocctlConfig) {}, ""},
		{"year too early", func(c *AocctlConfig) { c.Year = 2014 }, "year"},
		{"day zero", func(c *AocctlConfig) { c.Pages = []PageConfig{{Day: 0}} }, "outside 1-25"},
		{"day 26", func(c *AocctlConfig) { c.Pages = []PageConfig{{Day: 26}} }, "outside 1-25"},
		{"unknown engine", func(c *AocctlConfig) { c.Engine.Type = "wasm" }, "engine.type"},
		{"command without argv", func(c *AocctlConfig) { c.Engine.Type = EngineCommand }, "engine.command"},
		{"negative timeout", func(c *AocctlConfig) { c.Engine.Timeout = -time.Second }, "timeout"},
		{"bad log level", func(c *AocctlConfig) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_IsLoadable(t *testing.T) {
	userPath, _ := withConfigPaths(t)

	cfg := GetDefaultConfig()
	cfg.Year = 2023
	cfg.Engine.Timeout = 90 * time.Second
	require.NoError(t, cfg.Save(userPath))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestCatalog(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Pages = []PageConfig{
		{Day: 3, Name: "Mull It Over"},
		{Day: 4, Title: "XMAS", PuzzleLink: "https://example.test/4"},
	}

	cat := cfg.Catalog()
	assert.Equal(t, []string{"Day 03", "XMAS"}, cat.Titles())

	page, ok := cat.Resolve("Day 03")
	require.True(t, ok)
	day := page.Content.(catalog.DayContent)
	assert.Equal(t, "https://adventofcode.com/2024/day/3", day.PuzzleLink)

	page, _ = cat.Resolve("XMAS")
	assert.Equal(t, "https://example.test/4", page.Content.(catalog.DayContent).PuzzleLink)
}
