package view

import "aocctl/internal/tui/design"

const (
	headerHeight    = 3 // title, tagline, margin
	statusBarHeight = 1
	panelFrame      = 2 // border rows / columns
)

// Layout holds the dimensions derived from the terminal size. The controller
// sizes its viewports, editor and picker from it; Render lays out with it.
type Layout struct {
	Width           int
	Height          int
	BodyHeight      int
	SidebarWidth    int
	PageWidth       int
	PageInnerWidth  int
	PageInnerHeight int
	OverlayWidth    int
	OverlayHeight   int
}

// ComputeLayout derives the layout for a terminal of width x height.
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	l.BodyHeight = max(height-headerHeight-statusBarHeight, design.MinPanelHeight)

	l.SidebarWidth = design.SidebarWidth
	l.PageWidth = max(width-l.SidebarWidth, design.MinPageWidth)
	l.PageInnerWidth = max(l.PageWidth-panelFrame-design.SpaceSM*2, 1)
	l.PageInnerHeight = max(l.BodyHeight-panelFrame, 1)

	l.OverlayWidth = max(width*4/5, design.MinPageWidth)
	l.OverlayHeight = max(height*7/10, design.MinPanelHeight)
	return l
}

// EditorHeight is the editor height that leaves room for the heading and
// the answers below it.
func (l Layout) EditorHeight() int {
	return max(l.PageInnerHeight-8, 3)
}
