package engine

import (
	"strconv"
	"strings"
)

// Day 2: Red-Nosed Reports.

func parseReports(input string) ([][]int, error) {
	var reports [][]int
	for i, line := range lines(input) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "empty report"}
		}
		report := make([]int, 0, len(fields))
		for _, f := range fields {
			level, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Reason: "levels must be integers"}
			}
			report = append(report, level)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// isSafe holds when levels move strictly in one direction by 1 to 3 per step.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		diff := levels[i] - levels[i-1]
		if (diff > 0) != increasing {
			return false
		}
		if d := abs(diff); d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened allows removing a single level.
func isSafeDampened(levels []int) bool {
	if isSafe(levels) {
		return true
	}
	reduced := make([]int, 0, len(levels)-1)
	for skip := range levels {
		reduced = reduced[:0]
		reduced = append(reduced, levels[:skip]...)
		reduced = append(reduced, levels[skip+1:]...)
		if isSafe(reduced) {
			return true
		}
	}
	return false
}

func solveDay02(input string, part int) (string, error) {
	reports, err := parseReports(input)
	if err != nil {
		return "", err
	}
	check := isSafe
	if part == 2 {
		check = isSafeDampened
	}
	safe := 0
	for _, r := range reports {
		if check(r) {
			safe++
		}
	}
	return strconv.Itoa(safe), nil
}
