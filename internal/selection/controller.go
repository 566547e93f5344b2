// Package selection holds the currently selected page title.
//
// Selection is deliberately unvalidated: Select accepts any title and only
// resolution against a catalog decides whether it matches a page.
package selection

import (
	"aocctl/internal/catalog"
)

// Controller owns the current selection.
type Controller struct {
	current string
}

// New returns a controller seeded with the given title.
func New(initial string) *Controller {
	return &Controller{current: initial}
}

// DefaultTitle picks the seed for a new controller: the configured title when
// set, otherwise the first catalog entry.
func DefaultTitle(cat *catalog.Catalog, configured string) string {
	if configured != "" {
		return configured
	}
	if first, ok := cat.At(0); ok {
		return first.Title
	}
	return ""
}

// Current returns the selected title.
func (c *Controller) Current() string {
	return c.current
}

// Select overwrites the selection. It never fails, even for titles the
// catalog does not contain.
func (c *Controller) Select(title string) {
	c.current = title
}

// Resolve returns the selected page, or catalog.NotFound.
func (c *Controller) Resolve(cat *catalog.Catalog) (catalog.Page, bool) {
	return cat.Resolve(c.current)
}

// Move selects the catalog entry delta positions away from the current one,
// wrapping at both ends. An unresolved selection moves to the first entry
// (delta > 0) or the last entry (delta < 0).
func (c *Controller) Move(cat *catalog.Catalog, delta int) {
	n := cat.Len()
	if n == 0 || delta == 0 {
		return
	}
	idx := cat.Index(c.current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+delta)%n + n) % n
	}
	page, _ := cat.At(next)
	c.current = page.Title
}
