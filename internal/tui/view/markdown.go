package view

import (
	"strings"
	"sync"

	"aocctl/pkg/logging"

	"github.com/charmbracelet/glamour"
)

const maxCachedDescriptions = 128

type markdownKey struct {
	source string
	width  int
	dark   bool
}

// The page body is rebuilt on every spinner tick; renderers and their output
// are cached per width and style.
var markdownCache = struct {
	sync.Mutex
	renderers map[markdownKey]*glamour.TermRenderer
	output    map[markdownKey]string
}{
	renderers: map[markdownKey]*glamour.TermRenderer{},
	output:    map[markdownKey]string{},
}

// RenderMarkdown renders a day description for the given wrap width. On a
// renderer error the source is returned unchanged.
func RenderMarkdown(source string, width int, dark bool) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	key := markdownKey{source: source, width: width, dark: dark}

	markdownCache.Lock()
	defer markdownCache.Unlock()

	if out, ok := markdownCache.output[key]; ok {
		return out
	}

	rKey := markdownKey{width: width, dark: dark}
	r, ok := markdownCache.renderers[rKey]
	if !ok {
		style := "light"
		if dark {
			style = "dark"
		}
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logging.Warn("View", "markdown renderer unavailable: %v", err)
			return source
		}
		markdownCache.renderers[rKey] = r
	}

	out, err := r.Render(source)
	if err != nil {
		logging.Warn("View", "rendering description failed: %v", err)
		return source
	}
	out = strings.Trim(out, "\n")
	if len(markdownCache.output) >= maxCachedDescriptions {
		clear(markdownCache.output)
	}
	markdownCache.output[key] = out
	return out
}
