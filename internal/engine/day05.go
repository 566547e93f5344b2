package engine

import (
	"sort"
	"strconv"
	"strings"
)

// Day 5: Print Queue.

type orderingRules map[[2]int]bool

func (o orderingRules) before(a, b int) bool { return o[[2]int{a, b}] }

func parsePrintQueue(input string) (orderingRules, [][]int, error) {
	rules := make(orderingRules)
	var updates [][]int
	inUpdates := false

	for i, line := range lines(input) {
		if strings.TrimSpace(line) == "" {
			if inUpdates {
				return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "unexpected blank line between updates"}
			}
			inUpdates = true
			continue
		}

		if !inUpdates {
			left, right, ok := strings.Cut(line, "|")
			if !ok {
				return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "expected an ordering rule X|Y"}
			}
			a, errA := strconv.Atoi(strings.TrimSpace(left))
			b, errB := strconv.Atoi(strings.TrimSpace(right))
			if errA != nil || errB != nil {
				return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "page numbers must be integers"}
			}
			rules[[2]int{a, b}] = true
			continue
		}

		parts := strings.Split(line, ",")
		update := make([]int, 0, len(parts))
		for _, p := range parts {
			page, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, nil, &ParseError{Line: i + 1, Text: line, Reason: "update pages must be comma separated integers"}
			}
			update = append(update, page)
		}
		updates = append(updates, update)
	}

	if !inUpdates {
		return nil, nil, &ParseError{Reason: "missing blank line separating rules from updates"}
	}
	return rules, updates, nil
}

func inOrder(rules orderingRules, update []int) bool {
	for i := 0; i < len(update); i++ {
		for j := i + 1; j < len(update); j++ {
			if rules.before(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

func solveDay05(input string, part int) (string, error) {
	rules, updates, err := parsePrintQueue(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, update := range updates {
		ordered := inOrder(rules, update)
		switch {
		case part == 1 && ordered:
			sum += update[len(update)/2]
		case part == 2 && !ordered:
			fixed := append([]int(nil), update...)
			sort.SliceStable(fixed, func(i, j int) bool { return rules.before(fixed[i], fixed[j]) })
			sum += fixed[len(fixed)/2]
		}
	}
	return strconv.Itoa(sum), nil
}
