package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString shortens plain text to at most width terminal cells,
// marking the cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// PreviewLines returns at most limit lines of text, each truncated to width,
// plus the number of lines that were left out.
func PreviewLines(text string, limit, width int) ([]string, int) {
	if text == "" || limit <= 0 {
		return nil, 0
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	hidden := 0
	if len(lines) > limit {
		hidden = len(lines) - limit
		lines = lines[:limit]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = TruncateString(line, width)
	}
	return out, hidden
}
