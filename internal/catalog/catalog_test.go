package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cat := New(
		Page{Title: "1", Content: "A"},
		Page{Title: "2", Content: "B"},
		Page{Title: "3", Content: "C"},
	)

	tests := []struct {
		name      string
		title     string
		wantFound bool
		want      Content
	}{
		{"first entry", "1", true, "A"},
		{"last entry", "3", true, "C"},
		{"absent title", "9", false, NotFoundContent{}},
		{"empty title", "", false, NotFoundContent{}},
		{"no prefix matching", " 1", false, NotFoundContent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, found := cat.Resolve(tt.title)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, page.Content)
			if !found {
				assert.Equal(t, NotFound, page)
			}
		})
	}
}

func TestResolve_DuplicatesReturnFirst(t *testing.T) {
	cat := New(
		Page{Title: "Day 03", Content: "first"},
		Page{Title: "Day 04", Content: "other"},
		Page{Title: "Day 03", Content: "second"},
	)

	page, found := cat.Resolve("Day 03")
	require.True(t, found)
	assert.Equal(t, "first", page.Content)
	assert.Equal(t, []string{"Day 03"}, cat.Duplicates())
}

func TestCatalog_OrderAndCopy(t *testing.T) {
	pages := []Page{{Title: "b"}, {Title: "a"}, {Title: "c"}}
	cat := New(pages...)
	pages[0].Title = "mutated"

	assert.Equal(t, []string{"b", "a", "c"}, cat.Titles())
	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, 1, cat.Index("a"))
	assert.Equal(t, -1, cat.Index("z"))

	got := cat.Pages()
	got[0].Title = "changed"
	assert.Equal(t, "b", cat.Titles()[0])

	p, ok := cat.At(2)
	assert.True(t, ok)
	assert.Equal(t, "c", p.Title)
	_, ok = cat.At(3)
	assert.False(t, ok)
}

func TestNilCatalog(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, 0, cat.Len())
	assert.Nil(t, cat.Titles())
	page, found := cat.Resolve("1")
	assert.False(t, found)
	assert.Equal(t, NotFound, page)
}

func TestNewDayPage(t *testing.T) {
	links := LinkTemplates{
		Year:   2024,
		Puzzle: "https://adventofcode.com/{year}/day/{day}",
		Code:   "https://example.com/days/day_{day2}.go",
	}

	t.Run("derived title and links", func(t *testing.T) {
		page := NewDayPage(DaySpec{Day: 3, Name: "Mull It Over"}, links)
		assert.Equal(t, "Day 03", page.Title)

		content, ok := page.Content.(DayContent)
		require.True(t, ok)
		assert.Equal(t, 3, content.Day)
		assert.Equal(t, "https://adventofcode.com/2024/day/3", content.PuzzleLink)
		assert.Equal(t, "https://example.com/days/day_03.go", content.CodeLink)
		assert.Equal(t, "Day 03: Mull It Over", content.Heading())
	})

	t.Run("explicit values win", func(t *testing.T) {
		page := NewDayPage(DaySpec{
			Day:        7,
			Title:      " 7",
			PuzzleLink: "https://puzzle",
			CodeLink:   "https://code",
		}, links)
		assert.Equal(t, " 7", page.Title)
		content := page.Content.(DayContent)
		assert.Equal(t, "https://puzzle", content.PuzzleLink)
		assert.Equal(t, "https://code", content.CodeLink)
		assert.Equal(t, "Day 07", content.Heading())
	})

	t.Run("empty templates", func(t *testing.T) {
		page := NewDayPage(DaySpec{Day: 1}, LinkTemplates{})
		content := page.Content.(DayContent)
		assert.Empty(t, content.PuzzleLink)
		assert.Empty(t, content.CodeLink)
	})
}

func TestBuildDays(t *testing.T) {
	cat := BuildDays([]DaySpec{{Day: 2}, {Day: 1}}, LinkTemplates{})
	assert.Equal(t, []string{"Day 02", "Day 01"}, cat.Titles())
}
