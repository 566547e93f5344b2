package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aocctl/internal/catalog"
	"aocctl/internal/config"
)

const day1Sample = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"

// useConfigFile points the commands at a config file in a temp dir.
func useConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	original := configPath
	t.Cleanup(func() { configPath = original })
	configPath = path
	return path
}

func TestFindDay(t *testing.T) {
	cat := config.GetDefaultConfig().Catalog()

	tests := []struct {
		arg     string
		wantDay int
		wantErr bool
	}{
		{"5", 5, false},
		{"Day 03", 3, false},
		{"17", 17, false},
		{"0", 0, true},
		{"26", 0, true},
		{"Day 99", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			day, err := findDay(cat, tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if day.Day != tt.wantDay {
				t.Errorf("Expected day %d, got %d", tt.wantDay, day.Day)
			}
		})
	}
}

func TestFindDay_PageWithoutPuzzle(t *testing.T) {
	cat := catalog.New(catalog.Page{Title: "About", Content: "hello"})
	if _, err := findDay(cat, "About"); err == nil {
		t.Error("Expected an error for a page without a puzzle")
	}
}

func TestSolveCommand_Stdin(t *testing.T) {
	useConfigFile(t, "year: 2024\n")

	var out bytes.Buffer
	solveCmd := newSolveCmd()
	solveCmd.SetIn(strings.NewReader(strings.ReplaceAll(day1Sample, "\n", "\r\n")))
	solveCmd.SetOut(&out)
	solveCmd.SetArgs([]string{"1"})

	if err := solveCmd.Execute(); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	want := "Day 01: Historian Hysteria\nPart 1: 11\nPart 2: 31\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestSolveCommand_File(t *testing.T) {
	useConfigFile(t, "year: 2024\n")
	inputPath := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(inputPath, []byte(day1Sample), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	solveCmd := newSolveCmd()
	solveCmd.SetOut(&out)
	solveCmd.SetArgs([]string{"Day 01", inputPath})

	if err := solveCmd.Execute(); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !strings.Contains(out.String(), "Part 1: 11") {
		t.Errorf("Unexpected output %q", out.String())
	}
}

func TestSolveCommand_Failures(t *testing.T) {
	useConfigFile(t, "year: 2024\n")

	t.Run("day without solver", func(t *testing.T) {
		solveCmd := newSolveCmd()
		solveCmd.SetIn(strings.NewReader("x\n"))
		solveCmd.SetOut(&bytes.Buffer{})
		solveCmd.SetErr(&bytes.Buffer{})
		solveCmd.SetArgs([]string{"20"})
		if err := solveCmd.Execute(); err == nil {
			t.Error("Expected an error for a day without solver")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		solveCmd := newSolveCmd()
		solveCmd.SetIn(strings.NewReader(""))
		solveCmd.SetOut(&bytes.Buffer{})
		solveCmd.SetErr(&bytes.Buffer{})
		solveCmd.SetArgs([]string{"1", "-"})
		if err := solveCmd.Execute(); err == nil {
			t.Error("Expected an error for empty input")
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		var out bytes.Buffer
		solveCmd := newSolveCmd()
		solveCmd.SetIn(strings.NewReader("1 2 3\n"))
		solveCmd.SetOut(&out)
		solveCmd.SetErr(&bytes.Buffer{})
		solveCmd.SetArgs([]string{"9"})
		if err := solveCmd.Execute(); err == nil {
			t.Error("Expected an error for input the solver rejects")
		}
		if !strings.Contains(out.String(), "<Input Error>") {
			t.Errorf("Expected the failure to be printed, got %q", out.String())
		}
	})
}

func TestWritePages(t *testing.T) {
	cat := config.GetDefaultConfig().Catalog()

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		if err := writePages(&out, cat, OutputFormatTable); err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"TITLE", "Day 01", "Historian Hysteria", "https://adventofcode.com/2024/day/9"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("Expected %q in pages table:\n%s", want, out.String())
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		if err := writePages(&out, cat, OutputFormatJSON); err != nil {
			t.Fatal(err)
		}
		var rows []pageRow
		if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if len(rows) != 9 || rows[4].Name != "Print Queue" || rows[4].Day != 5 {
			t.Errorf("Unexpected rows: %+v", rows)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		if err := writePages(&out, cat, OutputFormatYAML); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "- title: Day 01\n") {
			t.Errorf("Unexpected YAML:\n%s", out.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := writePages(&bytes.Buffer{}, cat, "xml"); err == nil {
			t.Error("Expected an error for an unknown format")
		}
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		if err := writePages(&out, catalog.New(), OutputFormatTable); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "No pages configured") {
			t.Errorf("Unexpected output %q", out.String())
		}
	})
}

func TestConfigShow(t *testing.T) {
	useConfigFile(t, "year: 2019\n")

	var out bytes.Buffer
	configCmd := newConfigCmd()
	configCmd.SetOut(&out)
	configCmd.SetArgs([]string{"show"})
	if err := configCmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out.String(), "year: 2019") {
		t.Errorf("Expected the loaded year, got:\n%s", out.String())
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Cleanup(func() { configInitForce = false })

	run := func(args ...string) error {
		configCmd := newConfigCmd()
		configCmd.SetOut(&bytes.Buffer{})
		configCmd.SetErr(&bytes.Buffer{})
		configCmd.SetArgs(append([]string{"init"}, args...))
		return configCmd.Execute()
	}

	if err := run(path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	loaded, err := config.LoadConfigFromPath(path)
	if err != nil {
		t.Fatalf("written config is not loadable: %v", err)
	}
	if loaded.Year != config.GetDefaultConfig().Year {
		t.Errorf("Expected default year, got %d", loaded.Year)
	}

	if err := run(path); err == nil {
		t.Error("Expected init to refuse overwriting")
	}
	if err := run(path, "--force"); err != nil {
		t.Errorf("Expected --force to overwrite: %v", err)
	}
}
