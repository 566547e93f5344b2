package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aocctl/internal/catalog"
)

// OutputFormat selects how the pages command prints the catalog.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

var pagesOutput string

// pageRow is one catalog entry as printed by the pages command.
type pageRow struct {
	Title      string `json:"title" yaml:"title"`
	Day        int    `json:"day,omitempty" yaml:"day,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	PuzzleLink string `json:"puzzle_link,omitempty" yaml:"puzzle_link,omitempty"`
	CodeLink   string `json:"code_link,omitempty" yaml:"code_link,omitempty"`
}

func newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages of the puzzle console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadServices()
			if err != nil {
				return err
			}
			return writePages(cmd.OutOrStdout(), application.Services().Catalog, OutputFormat(pagesOutput))
		},
	}
	cmd.Flags().StringVarP(&pagesOutput, "output", "o", string(OutputFormatTable), "Output format (table, json, yaml)")
	return cmd
}

func pageRows(cat *catalog.Catalog) []pageRow {
	rows := make([]pageRow, 0, cat.Len())
	for _, page := range cat.Pages() {
		row := pageRow{Title: page.Title}
		if day, ok := page.Content.(catalog.DayContent); ok {
			row.Day = day.Day
			row.Name = day.Name
			row.PuzzleLink = day.PuzzleLink
			row.CodeLink = day.CodeLink
		}
		rows = append(rows, row)
	}
	return rows
}

// writePages prints the catalog in display order.
func writePages(w io.Writer, cat *catalog.Catalog, format OutputFormat) error {
	rows := pageRows(cat)

	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil

	case OutputFormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil

	case OutputFormatTable, "":
		if len(rows) == 0 {
			fmt.Fprintln(w, text.FgYellow.Sprint("No pages configured"))
			return nil
		}
		fmt.Fprintln(w, renderPagesTable(rows))
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func renderPagesTable(rows []pageRow) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	headers := table.Row{}
	for _, h := range []string{"title", "day", "puzzle", "link"} {
		headers = append(headers, text.FgHiCyan.Sprint(strings.ToUpper(h)))
	}
	t.AppendHeader(headers)

	for _, r := range rows {
		day := "-"
		if r.Day > 0 {
			day = fmt.Sprintf("%d", r.Day)
		}
		t.AppendRow(table.Row{r.Title, day, r.Name, r.PuzzleLink})
	}
	return t.Render()
}
