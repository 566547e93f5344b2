package model

import (
	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

// SolveCompletedMsg carries the result of a run dispatched for the session
// titled Title.
type SolveCompletedMsg struct {
	Title  string
	Result solve.Result
}

// UploadCompletedMsg carries the text read from Path for the session titled
// Title.
type UploadCompletedMsg struct {
	Title string
	Path  string
	Text  string
}

// UploadFailedMsg reports a failed read. The session input is not touched.
type UploadFailedMsg struct {
	Title string
	Path  string
	Err   error
}

// ClipboardPastedMsg carries clipboard text to use as input for Title.
type ClipboardPastedMsg struct {
	Title string
	Text  string
}

// ClipboardCopiedMsg reports that the answers were copied.
type ClipboardCopiedMsg struct{}

// ClipboardFailedMsg reports a clipboard read or write error.
type ClipboardFailedMsg struct {
	Err error
}

// NewLogEntryMsg carries a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the transient status bar message.
type ClearStatusBarMsg struct{}
