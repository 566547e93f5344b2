package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aocctl/internal/catalog"
	"aocctl/internal/console"
	"aocctl/internal/input"
	"aocctl/internal/solve"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <day|title> [file|-]",
		Short: "Solve both parts of a day and print the answers",
		Long: `Solves both parts of a day without the interactive console.

The day is a number (5) or a page title ("Day 05"). The puzzle input is read
from the given file, or from stdin when the file is '-' or omitted.`,
		Example: `  aocctl solve 3 input.txt
  cat input.txt | aocctl solve "Day 03"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSolve,
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	application, err := loadServices()
	if err != nil {
		return err
	}
	services := application.Services()

	day, err := findDay(services.Catalog, args[0])
	if err != nil {
		return err
	}

	var text string
	if len(args) < 2 || args[1] == "-" {
		text, err = input.Load(cmd.InOrStdin())
	} else {
		text, err = input.ReadFile(args[1])
	}
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no puzzle input for %s", day.Heading())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pipeline := solve.New(services.Engine, day.Day)
	pipeline.Update(ctx, text)

	part1, part2 := pipeline.Outcomes()
	fmt.Fprintln(cmd.OutOrStdout(), day.Heading())
	fmt.Fprintln(cmd.OutOrStdout(), console.FormatAnswers(part1, part2))
	if part1.IsFailure() || part2.IsFailure() {
		return fmt.Errorf("%s could not be solved", day.Heading())
	}
	return nil
}

// findDay resolves a day number or a page title to its day content. Days
// missing from the catalog are still solvable by number.
func findDay(cat *catalog.Catalog, arg string) (catalog.DayContent, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > 25 {
			return catalog.DayContent{}, fmt.Errorf("day %d is outside 1-25", n)
		}
		for _, page := range cat.Pages() {
			if day, ok := page.Content.(catalog.DayContent); ok && day.Day == n {
				return day, nil
			}
		}
		return catalog.DayContent{Day: n}, nil
	}

	page, ok := cat.Resolve(arg)
	if !ok {
		return catalog.DayContent{}, fmt.Errorf("no page titled %q, see 'aocctl pages'", arg)
	}
	day, ok := page.Content.(catalog.DayContent)
	if !ok {
		return catalog.DayContent{}, fmt.Errorf("page %q has no puzzle", arg)
	}
	return day, nil
}
