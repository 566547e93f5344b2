package catalog

// Content is the renderable unit carried by a page. The catalog never
// inspects it; hosts type-switch on it when rendering.
type Content interface{}

// Page is a single selectable catalog entry.
type Page struct {
	Title   string
	Content Content
}

// NotFoundContent marks the fallback view rendered for an unresolved selection.
type NotFoundContent struct{}

// NotFound is the identity returned in place of a page when a selection has
// no catalog match.
var NotFound = Page{Title: "404", Content: NotFoundContent{}}

// Catalog is an ordered, immutable list of pages. Insertion order is display
// order. Titles are expected to be unique; when they are not, lookups return
// the first matching entry.
type Catalog struct {
	pages []Page
}

// New builds a catalog from the given pages. The slice is copied.
func New(pages ...Page) *Catalog {
	cp := make([]Page, len(pages))
	copy(cp, pages)
	return &Catalog{pages: cp}
}

// Len returns the number of pages.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pages)
}

// Pages returns a copy of the pages in display order.
func (c *Catalog) Pages() []Page {
	if c == nil {
		return nil
	}
	cp := make([]Page, len(c.pages))
	copy(cp, c.pages)
	return cp
}

// Titles returns the page titles in display order.
func (c *Catalog) Titles() []string {
	if c == nil {
		return nil
	}
	titles := make([]string, 0, len(c.pages))
	for _, p := range c.pages {
		titles = append(titles, p.Title)
	}
	return titles
}

// At returns the page at position i.
func (c *Catalog) At(i int) (Page, bool) {
	if c == nil || i < 0 || i >= len(c.pages) {
		return Page{}, false
	}
	return c.pages[i], true
}

// Index returns the position of the first page titled title, or -1.
func (c *Catalog) Index(title string) int {
	if c == nil {
		return -1
	}
	for i, p := range c.pages {
		if p.Title == title {
			return i
		}
	}
	return -1
}

// Resolve looks a page up by exact title. The boolean is false when no entry
// matches, in which case NotFound is returned.
func (c *Catalog) Resolve(title string) (Page, bool) {
	i := c.Index(title)
	if i < 0 {
		return NotFound, false
	}
	return c.pages[i], true
}

// Duplicates lists titles that occur more than once, in order of their
// second occurrence.
func (c *Catalog) Duplicates() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]int, len(c.pages))
	var dups []string
	for _, p := range c.pages {
		seen[p.Title]++
		if seen[p.Title] == 2 {
			dups = append(dups, p.Title)
		}
	}
	return dups
}
