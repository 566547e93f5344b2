package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"aocctl/internal/tui/model"
	"aocctl/internal/tui/view"
	"aocctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerSubsystem = "Controller"
	statusTimeout       = 3 * time.Second
)

// Update applies msg to the model. Commands queued by the console while
// handling msg, such as dispatched solves, are returned along with the
// handler's own.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.SolveCompletedMsg:
		handleSolveCompleted(m, msg)

	case model.UploadCompletedMsg:
		cmds = append(cmds, handleUploadCompleted(m, msg))

	case model.UploadFailedMsg:
		cmds = append(cmds, handleUploadFailed(m, msg))

	case model.ClipboardPastedMsg:
		cmds = append(cmds, handleClipboardPasted(m, msg))

	case model.ClipboardCopiedMsg:
		cmds = append(cmds, m.SetStatusMessage("Answers copied to clipboard", model.StatusBarSuccess, statusTimeout))

	case model.ClipboardFailedMsg:
		logging.Warn(controllerSubsystem, "clipboard: %v", msg.Err)
		cmds = append(cmds, m.SetStatusMessage("Clipboard unavailable: "+msg.Err.Error(), model.StatusBarError, statusTimeout))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// The picker reads directories asynchronously and the editor blinks
		// its cursor; both need their own messages delivered.
		var cmd tea.Cmd
		m.Picker, cmd = m.Picker.Update(msg)
		cmds = append(cmds, cmd)
		if m.CurrentAppMode == model.ModeEditInput {
			m.Editor, cmd = m.Editor.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.TakePendingCmds()...)
	syncViewports(m)
	return m, tea.Batch(cmds...)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height

	l := view.ComputeLayout(m.Width, m.Height)
	m.PageViewport.Width = l.PageInnerWidth
	m.PageViewport.Height = l.PageInnerHeight
	m.Editor.SetWidth(l.PageInnerWidth)
	m.Editor.SetHeight(l.EditorHeight())
	m.Picker.SetHeight(max(l.OverlayHeight-8, 3))
	m.LogViewport.Width = l.OverlayWidth - 6
	m.LogViewport.Height = max(l.OverlayHeight-6, 1)
	m.Help.Width = m.Width
	m.ActivityLogDirty = true
	return m
}

// syncViewports refreshes the viewport contents after every update.
func syncViewports(m *model.Model) {
	if m.Width == 0 || m.Shell == nil {
		return
	}
	m.PageViewport.SetContent(view.PageBody(m, m.PageViewport.Width))
	if m.ActivityLogDirty {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	logLine := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
	}
	model.AddRawLineToActivityLog(m, logLine)
	return m
}

func handleSolveCompleted(m *model.Model, msg model.SolveCompletedMsg) {
	sess, ok := m.Shell.Session(msg.Title)
	if !ok {
		return
	}
	if sess.Pipeline.Apply(msg.Result) {
		logging.Debug(controllerSubsystem, "applied result for %s (generation %d)", msg.Title, msg.Result.Generation)
	}
}

func handleUploadCompleted(m *model.Model, msg model.UploadCompletedMsg) tea.Cmd {
	sess, ok := m.Shell.Session(msg.Title)
	if !ok {
		return nil
	}
	_ = sess.Upload(func() (string, error) { return msg.Text, nil })
	logging.Info(controllerSubsystem, "loaded %d bytes from %s into %s", len(msg.Text), msg.Path, msg.Title)
	return m.SetStatusMessage(fmt.Sprintf("Loaded %s into %s", filepath.Base(msg.Path), msg.Title), model.StatusBarSuccess, statusTimeout)
}

func handleUploadFailed(m *model.Model, msg model.UploadFailedMsg) tea.Cmd {
	if sess, ok := m.Shell.Session(msg.Title); ok {
		_ = sess.Upload(func() (string, error) { return "", msg.Err })
	}
	return m.SetStatusMessage("Upload failed: "+msg.Err.Error(), model.StatusBarError, statusTimeout)
}

func handleClipboardPasted(m *model.Model, msg model.ClipboardPastedMsg) tea.Cmd {
	if msg.Text == "" {
		return m.SetStatusMessage("Clipboard is empty", model.StatusBarWarning, statusTimeout)
	}
	sess, ok := m.Shell.Session(msg.Title)
	if !ok {
		return nil
	}
	_ = sess.Upload(func() (string, error) { return msg.Text, nil })
	return m.SetStatusMessage(fmt.Sprintf("Pasted %d bytes into %s", len(msg.Text), msg.Title), model.StatusBarSuccess, statusTimeout)
}
