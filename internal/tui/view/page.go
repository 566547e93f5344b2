package view

import (
	"fmt"
	"strings"

	"aocctl/internal/catalog"
	"aocctl/internal/console"
	"aocctl/internal/solve"
	"aocctl/internal/tui/components"
	"aocctl/internal/tui/design"
	"aocctl/internal/tui/model"
	"aocctl/internal/tui/utils"
)

// InputPreviewLines is how much of the input the page shows outside the
// editor.
const InputPreviewLines = 8

// PageBody renders the selected page's content at the given inner width.
func PageBody(m *model.Model, width int) string {
	switch content := m.Shell.View().(type) {
	case catalog.NotFoundContent:
		return components.RenderNotFound(width)
	case catalog.DayContent:
		sess, ok := m.CurrentSession()
		if !ok {
			return design.PageTitleStyle.Render(content.Heading())
		}
		return renderDay(m, sess, width)
	default:
		return fmt.Sprint(content)
	}
}

func renderDay(m *model.Model, sess *console.Session, width int) string {
	var sections []string
	sections = append(sections, design.PageTitleStyle.Render(sess.Day.Heading()))

	editing := m.CurrentAppMode == model.ModeEditInput && m.EditingTitle == sess.Title
	if editing {
		sections = append(sections,
			design.DimStyle.Render("ctrl+s solve • esc done"),
			m.Editor.View(),
		)
	} else {
		sections = append(sections, renderInput(sess.Input.Text(), width))
	}

	sections = append(sections, renderAnswers(m, sess))
	if links := renderLinks(sess.Day); links != "" {
		sections = append(sections, links)
	}
	if !editing {
		if desc := RenderMarkdown(sess.Day.Description, width, m.DarkMode); desc != "" {
			sections = append(sections, desc)
		}
	}
	return strings.Join(sections, "\n\n")
}

func renderInput(text string, width int) string {
	if text == "" {
		return design.TextSecondaryStyle.Render("Input text or upload file: ") +
			design.DimStyle.Render("enter to type • u to upload • p to paste")
	}

	lineCount := strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
	title := design.TextSecondaryStyle.Render(fmt.Sprintf("Input (%d lines, %d bytes)", lineCount, len(text)))

	lines, hidden := utils.PreviewLines(text, InputPreviewLines, max(width-2, 1))
	if hidden > 0 {
		lines = append(lines, design.DimStyle.Render(fmt.Sprintf("... %d more lines", hidden)))
	}
	return title + "\n" + design.InputPreviewStyle.Render(strings.Join(lines, "\n"))
}

func renderAnswers(m *model.Model, sess *console.Session) string {
	part1, part2 := sess.Outcomes()
	running := sess.Pipeline.Running()

	lines := make([]string, 0, len(solve.Parts))
	for i, o := range []solve.Outcome{part1, part2} {
		label := design.AnswerLabelStyle.Render(fmt.Sprintf("Part %d Answer: ", i+1))
		lines = append(lines, label+renderOutcome(o, running, m.Spinner.View()))
	}
	return strings.Join(lines, "\n")
}

func renderOutcome(o solve.Outcome, running bool, spinnerView string) string {
	if running {
		return spinnerView + " " + design.AnswerPendingStyle.Render("solving...")
	}
	text := console.FormatOutcome(o)
	switch o.Status {
	case solve.StatusSuccess:
		return design.AnswerStyle.Render(text)
	case solve.StatusFailure:
		return design.AnswerErrorStyle.Render(text)
	default:
		return design.AnswerPendingStyle.Render(text)
	}
}

func renderLinks(day catalog.DayContent) string {
	var parts []string
	if day.PuzzleLink != "" {
		parts = append(parts, "Puzzle: "+design.LinkStyle.Render(day.PuzzleLink))
	}
	if day.CodeLink != "" {
		parts = append(parts, "Solution: "+design.LinkStyle.Render(day.CodeLink))
	}
	return strings.Join(parts, "\n")
}
