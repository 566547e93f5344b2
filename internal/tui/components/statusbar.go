package components

import (
	"strings"

	"aocctl/internal/tui/design"
	"aocctl/internal/tui/model"
	"aocctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	inner := s.Width - design.SpaceSM*2

	var content string
	switch {
	case s.ShowMessage:
		content = utils.TruncateString(s.Message, inner)
	case s.LeftText != "" && s.RightText != "":
		padding := inner - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = utils.TruncateString(s.LeftText, inner)
		}
	case s.LeftText != "":
		content = s.LeftText
	default:
		content = s.RightText
	}

	return s.style().
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) style() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	case model.StatusBarInfo:
		return design.StatusBarInfoStyle
	default:
		return design.StatusBarStyle
	}
}
