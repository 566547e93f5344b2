package controller

import (
	"fmt"
	"strings"

	"aocctl/internal/console"
	"aocctl/internal/input"
	"aocctl/internal/tui/design"
	"aocctl/internal/tui/model"
	"aocctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a key press according to the current mode.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeEditInput:
		return handleEditKey(m, msg)
	case model.ModeUploadPicker:
		return handlePickerKey(m, msg)
	case model.ModeHelpOverlay:
		return handleHelpKey(m, msg)
	case model.ModeLogOverlay:
		return handleLogKey(m, msg)
	default:
		return handleMainKey(m, msg)
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Merry Christmas!"
	m.Shutdown()
	return m, tea.Quit
}

func handleMainKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Up):
		m.Shell.Move(-1)
		m.PageViewport.GotoTop()

	case key.Matches(msg, m.Keys.Down):
		m.Shell.Move(1)
		m.PageViewport.GotoTop()

	case key.Matches(msg, m.Keys.PageUp, m.Keys.PageDown):
		var cmd tea.Cmd
		m.PageViewport, cmd = m.PageViewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.Keys.Edit):
		return startEditing(m)

	case key.Matches(msg, m.Keys.Upload):
		sess, cmd := requireSession(m)
		if sess == nil {
			return m, cmd
		}
		m.UploadTitle = sess.Title
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeUploadPicker
		return m, m.Picker.Init()

	case key.Matches(msg, m.Keys.Paste):
		sess, cmd := requireSession(m)
		if sess == nil {
			return m, cmd
		}
		return m, model.PasteClipboardCmd(sess.Title)

	case key.Matches(msg, m.Keys.CopyAnswer):
		sess, cmd := requireSession(m)
		if sess == nil {
			return m, cmd
		}
		part1, part2 := sess.Outcomes()
		return m, model.CopyToClipboardCmd(console.FormatAnswers(part1, part2))

	case key.Matches(msg, m.Keys.ClearInput):
		sess, cmd := requireSession(m)
		if sess == nil {
			return m, cmd
		}
		sess.SetText("")
		return m, m.SetStatusMessage("Cleared input of "+sess.Title, model.StatusBarInfo, statusTimeout)

	case key.Matches(msg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		design.Initialize(m.DarkMode)

	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay

	case key.Matches(msg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
	}
	return m, nil
}

// requireSession returns the selected page's session, or a status warning
// when the selection has none.
func requireSession(m *model.Model) (*console.Session, tea.Cmd) {
	sess, ok := m.CurrentSession()
	if !ok {
		return nil, m.SetStatusMessage("No puzzle on this page", model.StatusBarWarning, statusTimeout)
	}
	return sess, nil
}

func startEditing(m *model.Model) (*model.Model, tea.Cmd) {
	sess, cmd := requireSession(m)
	if sess == nil {
		return m, cmd
	}
	text := sess.Input.Text()
	if lines := strings.Count(text, "\n") + 1; lines > model.MaxEditorLines {
		return m, m.SetStatusMessage(
			fmt.Sprintf("Input has %d lines, too many to edit here; upload or clear it instead", lines),
			model.StatusBarWarning, statusTimeout)
	}

	m.Editor.SetValue(text)
	m.EditingTitle = sess.Title
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeEditInput
	return m, m.Editor.Focus()
}

func handleEditKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Commit):
		return m, commitEditor(m, true)

	case key.Matches(msg, m.Keys.Esc):
		cmd := commitEditor(m, false)
		m.Editor.Blur()
		m.EditingTitle = ""
		m.CurrentAppMode = model.ModeMain
		return m, cmd
	}

	var cmd tea.Cmd
	m.Editor, cmd = m.Editor.Update(msg)
	return m, cmd
}

// commitEditor hands the editor text to the session being edited. Unless
// force is set, unchanged text does not trigger a new solve.
func commitEditor(m *model.Model, force bool) tea.Cmd {
	sess, ok := m.Shell.Session(m.EditingTitle)
	if !ok {
		return nil
	}
	text := input.Normalize(m.Editor.Value())
	if !force && text == sess.Input.Text() {
		return nil
	}
	logging.Debug(controllerSubsystem, "committing %d bytes of input to %s", len(text), sess.Title)
	sess.SetText(text)
	return nil
}

func handlePickerKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.CurrentAppMode = model.ModeMain
		m.UploadTitle = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)

	if ok, path := m.Picker.DidSelectFile(msg); ok {
		title := m.UploadTitle
		m.CurrentAppMode = model.ModeMain
		m.UploadTitle = ""
		logging.Debug(controllerSubsystem, "reading %s for %s", path, title)
		return m, tea.Batch(cmd, model.ReadFileCmd(title, path))
	}
	if ok, path := m.Picker.DidSelectDisabledFile(msg); ok {
		return m, tea.Batch(cmd, m.SetStatusMessage(path+" cannot be uploaded", model.StatusBarWarning, statusTimeout))
	}
	return m, cmd
}

func handleHelpKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.Esc, m.Keys.Help):
		m.CurrentAppMode = model.ModeMain
	}
	return m, nil
}

func handleLogKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "L", "esc":
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case "q":
		return quit(m)
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}
