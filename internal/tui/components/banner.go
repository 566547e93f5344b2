package components

import (
	"strings"

	"aocctl/internal/tui/design"
)

// NotFoundTitle heads the fallback view.
const NotFoundTitle = "Day 404"

// NotFoundArt is the ASCII banner of the fallback view.
const NotFoundArt = `  _  _      ___    _  _                  _______   ____     _____
 | || |    / _ \  | || |                |__   __| |  _ \   / ____|
 | || |_  | | | | | || |_     ______       | |    | |_) | | |
 |__   _| | | | | |__   _|   |______|      | |    |  _ <  | |
    | |   | |_| |    | |                   | |    | |_) | | |____
    |_|    \___/     |_|                   |_|    |____/   \_____|`

// RenderNotFound renders the fallback view shown for a selection without a
// page. The banner is dropped when it does not fit width.
func RenderNotFound(width int) string {
	lines := []string{design.PageTitleStyle.Render(NotFoundTitle), ""}
	if width >= artWidth() {
		lines = append(lines, design.BannerStyle.Render(NotFoundArt))
	} else {
		lines = append(lines, design.BannerStyle.Render("404 - TBC"))
	}
	return strings.Join(lines, "\n")
}

func artWidth() int {
	w := 0
	for _, line := range strings.Split(NotFoundArt, "\n") {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}
