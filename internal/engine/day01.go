package engine

import (
	"sort"
	"strconv"
	"strings"
)

// Day 1: Historian Hysteria.

func parseLocationLists(input string) ([]int, []int, error) {
	var left, right []int
	for i, line := range lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "expected two location ids separated by whitespace"}
		}
		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "left location id is not an integer"}
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "right location id is not an integer"}
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

func solveDay01(input string, part int) (string, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}

	if part == 1 {
		sort.Ints(left)
		sort.Ints(right)
		total := 0
		for i := range left {
			total += abs(left[i] - right[i])
		}
		return strconv.Itoa(total), nil
	}

	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}
	similarity := 0
	for _, l := range left {
		similarity += l * counts[l]
	}
	return strconv.Itoa(similarity), nil
}
