package components

import (
	"strings"

	"aocctl/internal/tui/design"
	"aocctl/internal/tui/utils"
)

// SelectedMarker is appended to the selected sidebar entry.
const SelectedMarker = "*"

// Sidebar lists page titles and highlights the selected one. A selection
// that matches no title highlights nothing.
type Sidebar struct {
	Titles   []string
	Selected string
	Width    int
	Height   int
	Focused  bool
}

// NewSidebar creates a sidebar over titles
func NewSidebar(titles []string) *Sidebar {
	return &Sidebar{
		Titles: titles,
		Width:  design.SidebarWidth,
		Height: design.MinPanelHeight,
	}
}

// WithSelected sets the selected title
func (s *Sidebar) WithSelected(title string) *Sidebar {
	s.Selected = title
	return s
}

// WithDimensions sets the outer sidebar dimensions
func (s *Sidebar) WithDimensions(width, height int) *Sidebar {
	s.Width = width
	s.Height = height
	return s
}

// SetFocused updates the focus state
func (s *Sidebar) SetFocused(focused bool) *Sidebar {
	s.Focused = focused
	return s
}

// Lines returns the unstyled entries, the selected one carrying the marker.
func (s *Sidebar) Lines() []string {
	inner := s.innerWidth()
	lines := make([]string, 0, len(s.Titles))
	for _, title := range s.Titles {
		if title == s.Selected {
			lines = append(lines, utils.TruncateString(title, inner-len(SelectedMarker))+SelectedMarker)
			continue
		}
		lines = append(lines, utils.TruncateString(title, inner))
	}
	return lines
}

// Render returns the styled sidebar
func (s *Sidebar) Render() string {
	rows := s.Height - 2
	if rows < 1 {
		rows = 1
	}

	start := 0
	if idx := s.selectedIndex(); idx >= rows {
		start = idx - rows + 1
	}

	var b strings.Builder
	for i, line := range s.Lines() {
		if i < start || i >= start+rows {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if s.Titles[i] == s.Selected {
			b.WriteString(design.ListItemSelectedStyle.Render(line))
		} else {
			b.WriteString(design.ListItemStyle.Render(line))
		}
	}

	style := design.SidebarStyle
	if s.Focused {
		style = design.SidebarFocusedStyle
	}
	return style.Copy().
		Width(s.Width - 2).
		Height(rows).
		Render(b.String())
}

func (s *Sidebar) innerWidth() int {
	w := s.Width - 2 - design.SpaceXS*2
	if w < 1 {
		return 1
	}
	return w
}

func (s *Sidebar) selectedIndex() int {
	for i, title := range s.Titles {
		if title == s.Selected {
			return i
		}
	}
	return -1
}
