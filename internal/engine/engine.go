package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"aocctl/internal/solve"
)

// ErrNotImplemented matches every NotImplementedError.
var ErrNotImplemented = errors.New("not implemented")

// ErrParse matches every ParseError.
var ErrParse = errors.New("parse error")

// NotImplementedError reports a day, or a part of a day, with no solver.
type NotImplementedError struct {
	Day  int
	Part int // zero when the whole day is missing
}

func (e *NotImplementedError) Error() string {
	if e.Part == 0 {
		return fmt.Sprintf("day %d is not implemented.", e.Day)
	}
	return fmt.Sprintf("day %d part %d is not implemented", e.Day, e.Part)
}

// Is makes errors.Is(err, ErrNotImplemented) hold.
func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

// ParseError reports malformed puzzle input. Line is 1-based; zero means the
// problem is not tied to a single line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("line %d: %s (got %q)", e.Line, e.Reason, e.Text)
}

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// DaySolver answers one part of one day.
type DaySolver func(input string, part int) (string, error)

// Builtin dispatches to the solvers compiled into the binary.
type Builtin struct {
	days map[int]DaySolver
}

var _ solve.Engine = (*Builtin)(nil)

// NewBuiltin returns the engine with every bundled day registered.
func NewBuiltin() *Builtin {
	b := &Builtin{days: make(map[int]DaySolver)}
	b.Register(1, solveDay01)
	b.Register(2, solveDay02)
	b.Register(3, solveDay03)
	b.Register(4, solveDay04)
	b.Register(5, solveDay05)
	b.Register(6, solveDay06)
	b.Register(7, solveDay07)
	b.Register(8, solveDay08)
	b.Register(9, solveDay09)
	return b
}

// Register installs s as the solver for day, replacing any previous one.
func (b *Builtin) Register(day int, s DaySolver) {
	b.days[day] = s
}

// Days lists the registered days in ascending order.
func (b *Builtin) Days() []int {
	days := make([]int, 0, len(b.days))
	for d := range b.days {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solve implements solve.Engine.
func (b *Builtin) Solve(ctx context.Context, input string, day, part int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, ok := b.days[day]
	if !ok {
		return "", &NotImplementedError{Day: day}
	}
	if part != solve.Part1 && part != solve.Part2 {
		return "", &NotImplementedError{Day: day, Part: part}
	}
	return s(input, part)
}

// lines splits puzzle input into lines, tolerating trailing blank lines.
func lines(input string) []string {
	trimmed := strings.TrimRight(input, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
