package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Edit       key.Binding
	Commit     key.Binding
	Esc        key.Binding
	Upload     key.Binding
	Paste      key.Binding
	CopyAnswer key.Binding
	ClearInput key.Binding
	ToggleDark key.Binding
	ToggleLog  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous day"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next day"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll page down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "edit input"),
		),
		Commit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "solve input"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done/back"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload file"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p", "ctrl+v"),
			key.WithHelp("p", "paste clipboard as input"),
		),
		CopyAnswer: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy answers"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear input"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Upload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Edit, k.Commit, k.Esc, k.Upload},
		{k.Paste, k.CopyAnswer, k.ClearInput},
		{k.ToggleDark, k.ToggleLog, k.Help, k.Quit},
	}
}
