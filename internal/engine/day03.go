package engine

import (
	"regexp"
	"strconv"
)

// Day 3: Mull It Over.

var instructionPattern = regexp.MustCompile(`mul\(([0-9]{1,3}),([0-9]{1,3})\)|do\(\)|don't\(\)`)

func solveDay03(input string, part int) (string, error) {
	enabled := true
	sum := 0
	for _, m := range instructionPattern.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if part == 2 && !enabled {
				continue
			}
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			sum += a * b
		}
	}
	return strconv.Itoa(sum), nil
}
