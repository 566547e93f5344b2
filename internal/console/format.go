package console

import (
	"fmt"
	"strings"

	"aocctl/internal/solve"
)

const (
	// WaitingText is shown for a part that has no input yet.
	WaitingText = "<Waiting for Input>"
	// ErrorText prefixes the detail of a failed part.
	ErrorText = "<Input Error>"
)

// FormatOutcome renders one part outcome for display.
func FormatOutcome(o solve.Outcome) string {
	switch o.Status {
	case solve.StatusSuccess:
		return o.Answer
	case solve.StatusFailure:
		return ErrorText + "\n" + o.Detail
	default:
		return WaitingText
	}
}

// FormatAnswers renders both parts, one "Part N: ..." block per part.
func FormatAnswers(part1, part2 solve.Outcome) string {
	var b strings.Builder
	for i, o := range []solve.Outcome{part1, part2} {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Part %d: %s", i+1, FormatOutcome(o))
	}
	return b.String()
}
