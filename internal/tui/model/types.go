package model

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeEditInput
	ModeUploadPicker
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String returns the mode name used in logs and the status bar.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeEditInput:
		return "EditInput"
	case ModeUploadPicker:
		return "UploadPicker"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines bounds the in-memory activity log.
const MaxActivityLogLines = 1000
