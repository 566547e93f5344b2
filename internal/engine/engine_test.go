package engine

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day01Example = `3   4
4   3
2   5
1   3
3   9
3   3
`

const day02Example = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

const day03Part1Example = `xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))`

const day03Part2Example = `xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))`

const day04Example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

const day05Example = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

const day06Example = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

const day07Example = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`

const day08Example = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

const day09Example = "2333133121414131402\n"

func TestBuiltin_Examples(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		part  int
		input string
		want  string
	}{
		{"day 1 part 1", 1, 1, day01Example, "11"},
		{"day 1 part 2", 1, 2, day01Example, "31"},
		{"day 2 part 1", 2, 1, day02Example, "2"},
		{"day 2 part 2", 2, 2, day02Example, "4"},
		{"day 3 part 1", 3, 1, day03Part1Example, "161"},
		{"day 3 part 2", 3, 2, day03Part2Example, "48"},
		{"day 4 part 1", 4, 1, day04Example, "18"},
		{"day 4 part 2", 4, 2, day04Example, "9"},
		{"day 5 part 1", 5, 1, day05Example, "143"},
		{"day 5 part 2", 5, 2, day05Example, "123"},
		{"day 6 part 1", 6, 1, day06Example, "41"},
		{"day 6 part 2", 6, 2, day06Example, "6"},
		{"day 7 part 1", 7, 1, day07Example, "3749"},
		{"day 7 part 2", 7, 2, day07Example, "11387"},
		{"day 8 part 1", 8, 1, day08Example, "14"},
		{"day 8 part 2", 8, 2, day08Example, "34"},
		{"day 9 part 1", 9, 1, day09Example, "1928"},
		{"day 9 part 2", 9, 2, day09Example, "2858"},
	}

	b := NewBuiltin()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Solve(context.Background(), tt.input, tt.day, tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_ParseErrors(t *testing.T) {
	b := NewBuiltin()

	_, err := b.Solve(context.Background(), "1 2 3\n", 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "line 1")

	_, err = b.Solve(context.Background(), "1 2\n\n3 4\n", 2, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = b.Solve(context.Background(), "ABC\nAB\n", 4, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = b.Solve(context.Background(), "47|53\n75,47\n", 5, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering rule")

	_, err = b.Solve(context.Background(), "..#\n...\n", 6, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no guard")

	_, err = b.Solve(context.Background(), "^.^\n", 6, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second guard")

	_, err = b.Solve(context.Background(), "190 10 19\n", 7, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = b.Solve(context.Background(), "12a4\n", 9, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 3")
}

func TestBuiltin_NotImplemented(t *testing.T) {
	b := NewBuiltin()

	_, err := b.Solve(context.Background(), "x", 25, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Equal(t, "day 25 is not implemented.", err.Error())

	_, err = b.Solve(context.Background(), "x", 1, 3)
	require.Error(t, err)
	assert.Equal(t, "day 1 part 3 is not implemented", err.Error())
}

func TestBuiltin_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewBuiltin().Solve(ctx, day01Example, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltin_RegisterAndDays(t *testing.T) {
	b := NewBuiltin()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, b.Days())

	b.Register(12, func(input string, part int) (string, error) {
		return input + "!", nil
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12}, b.Days())

	got, err := b.Solve(context.Background(), "hi", 12, 2)
	require.NoError(t, err)
	assert.Equal(t, "hi!", got)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestNewCommand_Empty(t *testing.T) {
	_, err := NewCommand(nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = NewCommand([]string{"  "}, 0)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestCommand_Args(t *testing.T) {
	c, err := NewCommand([]string{"go", "run", "./day{day2}", "-part={part}", "-d={day}"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "run", "./day07", "-part=2", "-d=7"}, c.Args(7, 2))
}

func TestCommand_Solve(t *testing.T) {
	requireShell(t)

	c, err := NewCommand([]string{"sh", "-c", "wc -l | tr -d ' '; echo day={day} part={part} >&2"}, time.Second)
	require.NoError(t, err)

	got, err := c.Solve(context.Background(), "a\nb\nc\n", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestCommand_FailureIncludesStderr(t *testing.T) {
	requireShell(t)

	c, err := NewCommand([]string{"sh", "-c", "echo boom >&2; exit 3"}, time.Second)
	require.NoError(t, err)

	_, err = c.Solve(context.Background(), "", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestCommand_Timeout(t *testing.T) {
	requireShell(t)

	c, err := NewCommand([]string{"sh", "-c", "exec sleep 5"}, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Solve(context.Background(), "", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
