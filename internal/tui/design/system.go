package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Component dimensions
	SidebarWidth   = 18
	MinPageWidth   = 30
	MinPanelHeight = 8
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#00873C",
		Dark:  "#00CC00",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#B58900",
		Dark:  "#FFFF66",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#FF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F23",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#10101A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262636",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#333340",
	}
	ColorBorderFocus = ColorPrimary

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#CCCCCC",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#666666",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E2E",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Component Styles
var (
	// Header Styles
	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	HeaderTaglineStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	HeaderYearStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			MarginBottom(SpaceXS)

	// Sidebar Styles
	SidebarStyle = BorderStyle.Copy().
			Padding(0, SpaceXS)

	SidebarFocusedStyle = SidebarStyle.Copy().
				BorderForeground(ColorBorderFocus)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ListItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// Page Styles
	PageStyle = BorderStyle.Copy().
			Padding(0, SpaceSM)

	PageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	AnswerLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	AnswerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	AnswerPendingStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	AnswerErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Underline(true)

	InputPreviewStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorBorder).
				PaddingLeft(SpaceXS)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.Copy().
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.Copy().
				Background(ColorInfo).
				Foreground(ColorBackground)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = CenteredOverlayContainerStyle.Copy()

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// CenterHorizontal pads content so that it is centered within width.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
