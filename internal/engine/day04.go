package engine

import (
	"strconv"
)

// Day 4: Ceres Search.

type grid []string

func parseGrid(input string) (grid, error) {
	rows := lines(input)
	if len(rows) == 0 {
		return nil, &ParseError{Reason: "empty word search"}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &ParseError{Line: i + 1, Text: row, Reason: "rows must all have the same length"}
		}
	}
	return grid(rows), nil
}

func (g grid) at(r, c int) byte {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return 0
	}
	return g[r][c]
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func countWord(g grid, word string) int {
	count := 0
	for r := range g {
		for c := 0; c < len(g[r]); c++ {
			for _, d := range directions {
				match := true
				for k := 0; k < len(word); k++ {
					if g.at(r+d[0]*k, c+d[1]*k) != word[k] {
						match = false
						break
					}
				}
				if match {
					count++
				}
			}
		}
	}
	return count
}

func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

func countCrossMAS(g grid) int {
	count := 0
	for r := 1; r < len(g)-1; r++ {
		for c := 1; c < len(g[r])-1; c++ {
			if g[r][c] != 'A' {
				continue
			}
			if isMS(g.at(r-1, c-1), g.at(r+1, c+1)) && isMS(g.at(r-1, c+1), g.at(r+1, c-1)) {
				count++
			}
		}
	}
	return count
}

func solveDay04(input string, part int) (string, error) {
	g, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	if part == 1 {
		return strconv.Itoa(countWord(g, "XMAS")), nil
	}
	return strconv.Itoa(countCrossMAS(g)), nil
}
