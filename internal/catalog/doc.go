// Package catalog is the page registry of the console.
//
// A Catalog is a fixed, ordered list of Pages built once when the console is
// constructed. Pages are looked up by exact title; a miss yields the NotFound
// identity, which hosts render as a fallback view rather than an error.
//
// Day pages are produced by a single factory, NewDayPage, from a DaySpec.
// Puzzle and solution links that a DaySpec leaves empty are derived from
// LinkTemplates so that every day page links consistently:
//
//	links := catalog.LinkTemplates{
//	    Year:   2024,
//	    Puzzle: "https://adventofcode.com/{year}/day/{day}",
//	}
//	cat := catalog.BuildDays([]catalog.DaySpec{{Day: 1, Name: "Historian Hysteria"}}, links)
//	page, ok := cat.Resolve("Day 01")
package catalog
