package model

import (
	"context"
	"time"

	"aocctl/internal/console"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxEditorLines is the largest input the inline editor accepts. Larger
// inputs can still be uploaded or pasted, just not edited in place.
const MaxEditorLines = 10000

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DarkMode        bool
	Year            int
	QuittingMessage string

	// Pages, selection and per-page sessions
	Shell *console.Shell

	// Input editing. EditingTitle and UploadTitle pin the session an edit or
	// upload was started for, so a selection change cannot redirect it.
	Editor       textarea.Model
	EditingTitle string
	Picker       filepicker.Model
	UploadTitle  string

	// UI State & Output
	PageViewport     viewport.Model
	LogViewport      viewport.Model
	Spinner          spinner.Model
	Help             help.Model
	Keys             KeyMap
	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	ctx     context.Context
	cancel  context.CancelFunc
	pending []tea.Cmd
}

// Context is cancelled when the model shuts down; dispatched runs use it.
func (m *Model) Context() context.Context {
	return m.ctx
}

// Queue schedules cmd to be returned from the current Update.
func (m *Model) Queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// TakePendingCmds returns and clears the queued commands.
func (m *Model) TakePendingCmds() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Dispatch is the console.Dispatcher of the TUI: instead of executing in
// place it queues a command that executes the run off the update loop and
// reports back with a SolveCompletedMsg.
func (m *Model) Dispatch(s *console.Session, run *solve.Run) {
	m.Queue(SolveCmd(m.ctx, s.Title, run))
}

// CurrentSession returns the session of the selected page, if it has one.
func (m *Model) CurrentSession() (*console.Session, bool) {
	if m.Shell == nil {
		return nil, false
	}
	return m.Shell.CurrentSession()
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Shutdown cancels in-flight solves and detaches every session.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.Shell != nil {
		m.Shell.Close()
	}
}
