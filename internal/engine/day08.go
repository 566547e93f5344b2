package engine

import (
	"strconv"
)

// Day 8: Resonant Collinearity.

type point struct{ r, c int }

func parseAntennas(input string) (map[byte][]point, int, int, error) {
	rows := lines(input)
	if len(rows) == 0 {
		return nil, 0, 0, &ParseError{Reason: "empty map"}
	}
	width := len(rows[0])
	antennas := make(map[byte][]point)
	for r, row := range rows {
		if len(row) != width {
			return nil, 0, 0, &ParseError{Line: r + 1, Text: row, Reason: "rows must all have the same length"}
		}
		for c := 0; c < len(row); c++ {
			if row[c] != '.' {
				antennas[row[c]] = append(antennas[row[c]], point{r, c})
			}
		}
	}
	return antennas, len(rows), width, nil
}

func solveDay08(input string, part int) (string, error) {
	antennas, rows, cols, err := parseAntennas(input)
	if err != nil {
		return "", err
	}
	inside := func(p point) bool { return p.r >= 0 && p.r < rows && p.c >= 0 && p.c < cols }

	antinodes := make(map[point]bool)
	for _, group := range antennas {
		for i, a := range group {
			for j, b := range group {
				if i == j {
					continue
				}
				dr, dc := a.r-b.r, a.c-b.c
				if part == 1 {
					if p := (point{a.r + dr, a.c + dc}); inside(p) {
						antinodes[p] = true
					}
					continue
				}
				for p := a; inside(p); p = (point{p.r + dr, p.c + dc}) {
					antinodes[p] = true
				}
			}
		}
	}
	return strconv.Itoa(len(antinodes)), nil
}
