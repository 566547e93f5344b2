package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// DaySpec describes one puzzle day. It is the only input the page factory
// needs; everything else is derived.
type DaySpec struct {
	Day         int
	Title       string // sidebar title, defaults to "Day NN"
	Name        string // puzzle name, e.g. "Mull It Over"
	PuzzleLink  string
	CodeLink    string
	Description string // markdown
}

// DayContent is the content of a solvable day page.
type DayContent struct {
	Day         int
	Name        string
	PuzzleLink  string
	CodeLink    string
	Description string
}

// Heading returns e.g. "Day 03: Mull It Over".
func (d DayContent) Heading() string {
	if d.Name == "" {
		return fmt.Sprintf("Day %02d", d.Day)
	}
	return fmt.Sprintf("Day %02d: %s", d.Day, d.Name)
}

// LinkTemplates produce puzzle and solution links for days that do not set
// them explicitly. Supported placeholders: {year}, {day} and {day2} (zero
// padded to two digits).
type LinkTemplates struct {
	Year   int
	Puzzle string
	Code   string
}

// Expand fills the placeholders of tmpl for the given day.
func (l LinkTemplates) Expand(tmpl string, day int) string {
	if tmpl == "" {
		return ""
	}
	r := strings.NewReplacer(
		"{year}", strconv.Itoa(l.Year),
		"{day}", strconv.Itoa(day),
		"{day2}", fmt.Sprintf("%02d", day),
	)
	return r.Replace(tmpl)
}

// DefaultDayTitle is the sidebar title used when a DaySpec carries none.
func DefaultDayTitle(day int) string {
	return fmt.Sprintf("Day %02d", day)
}

// NewDayPage builds the catalog entry for a single day.
func NewDayPage(spec DaySpec, links LinkTemplates) Page {
	title := spec.Title
	if title == "" {
		title = DefaultDayTitle(spec.Day)
	}
	puzzle := spec.PuzzleLink
	if puzzle == "" {
		puzzle = links.Expand(links.Puzzle, spec.Day)
	}
	code := spec.CodeLink
	if code == "" {
		code = links.Expand(links.Code, spec.Day)
	}
	return Page{
		Title: title,
		Content: DayContent{
			Day:         spec.Day,
			Name:        spec.Name,
			PuzzleLink:  puzzle,
			CodeLink:    code,
			Description: spec.Description,
		},
	}
}

// BuildDays builds a catalog of day pages in the order given.
func BuildDays(specs []DaySpec, links LinkTemplates) *Catalog {
	pages := make([]Page, 0, len(specs))
	for _, spec := range specs {
		pages = append(pages, NewDayPage(spec, links))
	}
	return New(pages...)
}
