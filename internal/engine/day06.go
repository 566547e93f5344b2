package engine

import (
	"fmt"
	"strconv"
)

// Day 6: Guard Gallivant.

type labMap struct {
	rows, cols int
	blocked    []bool
	start      int
}

func parseLabMap(input string) (*labMap, error) {
	rows := lines(input)
	if len(rows) == 0 {
		return nil, &ParseError{Reason: "empty map"}
	}
	m := &labMap{rows: len(rows), cols: len(rows[0]), start: -1}
	m.blocked = make([]bool, m.rows*m.cols)
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, &ParseError{Line: r + 1, Text: row, Reason: "rows must all have the same length"}
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '.':
			case '#':
				m.blocked[r*m.cols+c] = true
			case '^':
				if m.start >= 0 {
					return nil, &ParseError{Line: r + 1, Text: row,
						Reason: fmt.Sprintf("second guard at column %d, the map allows one", c+1)}
				}
				m.start = r*m.cols + c
			default:
				return nil, &ParseError{Line: r + 1, Text: row,
					Reason: fmt.Sprintf("unexpected %q at column %d, want '.', '#' or '^'", row[c], c+1)}
			}
		}
	}
	if m.start < 0 {
		return nil, &ParseError{Reason: "no guard ('^') on the map"}
	}
	return m, nil
}

// north, east, south, west
var headings = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// patrol walks the guard until it leaves the map or repeats a state. visit
// is called for every cell entered; it reports whether the walk looped.
func (m *labMap) patrol(extra int, visit func(cell int)) bool {
	seen := make([]bool, len(m.blocked)*4)
	r, c, h := m.start/m.cols, m.start%m.cols, 0
	for {
		cell := r*m.cols + c
		state := cell*4 + h
		if seen[state] {
			return true
		}
		seen[state] = true
		if visit != nil {
			visit(cell)
		}

		nr, nc := r+headings[h][0], c+headings[h][1]
		if nr < 0 || nr >= m.rows || nc < 0 || nc >= m.cols {
			return false
		}
		next := nr*m.cols + nc
		if m.blocked[next] || next == extra {
			h = (h + 1) % 4
			continue
		}
		r, c = nr, nc
	}
}

func solveDay06(input string, part int) (string, error) {
	m, err := parseLabMap(input)
	if err != nil {
		return "", err
	}

	route := make(map[int]bool)
	m.patrol(-1, func(cell int) { route[cell] = true })
	if part == 1 {
		return strconv.Itoa(len(route)), nil
	}

	// Only a new obstruction on the guard's route can change the walk.
	loops := 0
	for cell := range route {
		if cell == m.start {
			continue
		}
		if m.patrol(cell, nil) {
			loops++
		}
	}
	return strconv.Itoa(loops), nil
}
