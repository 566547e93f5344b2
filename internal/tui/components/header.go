package components

import (
	"strconv"
	"strings"

	"aocctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title       string
	Tagline     string
	Year        int
	ShowSpinner bool
	SpinnerView string
	Width       int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithTagline adds the line shown under the title
func (h *Header) WithTagline(tagline string) *Header {
	h.Tagline = tagline
	return h
}

// WithYear shows the puzzle year on the right
func (h *Header) WithYear(year int) *Header {
	h.Year = year
	return h
}

// WithSpinner shows a spinner next to the title
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.ShowSpinner = true
	h.SpinnerView = spinnerView
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	left := design.HeaderTitleStyle.Render(h.Title)
	if h.ShowSpinner && h.SpinnerView != "" {
		left = h.SpinnerView + " " + left
	}

	titleLine := left
	if h.Year > 0 {
		right := design.HeaderYearStyle.Render(strconv.Itoa(h.Year))
		available := h.Width - design.SpaceSM*2
		padding := available - lipgloss.Width(left) - lipgloss.Width(right)
		if padding > 0 {
			titleLine = left + strings.Repeat(" ", padding) + right
		}
	}

	lines := []string{titleLine}
	if h.Tagline != "" {
		lines = append(lines, design.HeaderTaglineStyle.Render(h.Tagline))
	}

	return design.HeaderStyle.Copy().
		Width(h.Width).
		MaxWidth(h.Width).
		Render(strings.Join(lines, "\n"))
}
