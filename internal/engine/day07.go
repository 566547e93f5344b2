package engine

import (
	"strconv"
	"strings"
)

// Day 7: Bridge Repair.

type equation struct {
	target  int
	numbers []int
}

func parseEquations(input string) ([]equation, error) {
	var eqs []equation
	for i, line := range lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "want \"<target>: <numbers>\""}
		}
		target, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "target is not a number"}
		}
		fields := strings.Fields(tail)
		if len(fields) == 0 {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "no numbers after the target"}
		}
		eq := equation{target: target, numbers: make([]int, len(fields))}
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return nil, &ParseError{Line: i + 1, Text: line, Reason: "numbers must be non-negative integers"}
			}
			eq.numbers[j] = n
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

// solvable works backwards from the target, undoing the last operator.
func solvable(target int, numbers []int, concat bool) bool {
	last := numbers[len(numbers)-1]
	if len(numbers) == 1 {
		return target == last
	}
	rest := numbers[:len(numbers)-1]

	if target >= last && solvable(target-last, rest, concat) {
		return true
	}
	if last != 0 && target%last == 0 && solvable(target/last, rest, concat) {
		return true
	}
	if concat {
		pow := 10
		for pow <= last {
			pow *= 10
		}
		if target > last && (target-last)%pow == 0 && solvable((target-last)/pow, rest, concat) {
			return true
		}
	}
	return false
}

func solveDay07(input string, part int) (string, error) {
	eqs, err := parseEquations(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, eq := range eqs {
		if solvable(eq.target, eq.numbers, part == 2) {
			total += eq.target
		}
	}
	return strconv.Itoa(total), nil
}
