package view

import (
	"fmt"
	"strings"

	"aocctl/internal/tui/components"
	"aocctl/internal/tui/design"
	"aocctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	// AppTitle heads every screen.
	AppTitle = "Advent of Go"
	// AppTagline is shown under the title.
	AppTagline = "--- Learn Go through Advent of Code ---"
)

// Render renders the whole screen for the model's current mode.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.TextStyle.Render(m.QuittingMessage)
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return overlay(m, renderHelpOverlay(m))
	case model.ModeLogOverlay:
		return overlay(m, renderLogOverlay(m))
	case model.ModeUploadPicker:
		return overlay(m, renderPickerOverlay(m))
	default:
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	l := ComputeLayout(m.Width, m.Height)

	header := components.NewHeader(AppTitle).
		WithTagline(AppTagline).
		WithYear(m.Year).
		WithWidth(m.Width)
	if sess, ok := m.CurrentSession(); ok && sess.Pipeline.Running() {
		header = header.WithSpinner(m.Spinner.View())
	}

	sidebar := components.NewSidebar(m.Shell.Catalog().Titles()).
		WithSelected(m.Shell.Selected()).
		WithDimensions(l.SidebarWidth, l.BodyHeight).
		SetFocused(m.CurrentAppMode == model.ModeMain)

	var pageContent string
	if m.CurrentAppMode == model.ModeEditInput {
		pageContent = PageBody(m, l.PageInnerWidth)
	} else {
		pageContent = m.PageViewport.View()
	}
	page := design.PageStyle.Copy().
		Width(l.PageWidth - panelFrame).
		Height(l.PageInnerHeight).
		MaxHeight(l.BodyHeight).
		Render(pageContent)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar.Render(), page)

	return lipgloss.JoinVertical(lipgloss.Left,
		header.Render(),
		body,
		renderStatusBar(m),
	)
}

func renderStatusBar(m *model.Model) string {
	left := m.Shell.Selected()
	if sess, ok := m.CurrentSession(); ok {
		left = sess.Day.Heading()
	}
	if m.CurrentAppMode != model.ModeMain {
		left = fmt.Sprintf("%s  [%s]", left, m.CurrentAppMode)
	}
	return components.NewStatusBar(m.Width).
		WithLeftText(left).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func overlay(m *model.Model, content string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())
	return design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, helpView),
	)
}

func renderLogOverlay(m *model.Model) string {
	l := ComputeLayout(m.Width, m.Height)
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.Copy().
		Width(l.OverlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(l.OverlayHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

func renderPickerOverlay(m *model.Model) string {
	l := ComputeLayout(m.Width, m.Height)
	lines := []string{
		design.HelpTitleStyle.Render("Upload input for " + m.UploadTitle),
		design.TextSecondaryStyle.Render(m.Picker.CurrentDirectory),
		"",
		m.Picker.View(),
		"",
		design.DimStyle.Render(strings.Join([]string{"enter select", "←/h up a directory", "esc cancel"}, " • ")),
	}
	return design.CenteredOverlayContainerStyle.Copy().
		Width(l.OverlayWidth - design.CenteredOverlayContainerStyle.GetHorizontalFrameSize()).
		Render(strings.Join(lines, "\n"))
}
