package model

import (
	"context"

	"aocctl/internal/input"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Replaced in tests.
var (
	readFile          = input.ReadFile
	clipboardReadAll  = clipboard.ReadAll
	clipboardWriteAll = clipboard.WriteAll
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed, which ends the listen loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// SolveCmd executes run and reports its result for the session titled title.
func SolveCmd(ctx context.Context, title string, run *solve.Run) tea.Cmd {
	return func() tea.Msg {
		return SolveCompletedMsg{Title: title, Result: run.Execute(ctx)}
	}
}

// ReadFileCmd reads path as input for the session titled title.
func ReadFileCmd(title, path string) tea.Cmd {
	return func() tea.Msg {
		text, err := readFile(path)
		if err != nil {
			return UploadFailedMsg{Title: title, Path: path, Err: err}
		}
		return UploadCompletedMsg{Title: title, Path: path, Text: text}
	}
}

// PasteClipboardCmd reads the clipboard as input for the session titled title.
func PasteClipboardCmd(title string) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboardReadAll()
		if err != nil {
			return ClipboardFailedMsg{Err: err}
		}
		return ClipboardPastedMsg{Title: title, Text: text}
	}
}

// CopyToClipboardCmd writes text to the clipboard.
func CopyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			return ClipboardFailedMsg{Err: err}
		}
		return ClipboardCopiedMsg{}
	}
}
