package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

// DefaultCommandTimeout bounds a single external solver invocation.
const DefaultCommandTimeout = 30 * time.Second

// ErrEmptyCommand is returned by NewCommand when no program is configured.
var ErrEmptyCommand = errors.New("solver command is empty")

// Command runs an external program once per part. The puzzle input is written
// to its stdin and the trimmed stdout is the answer. The placeholders {day},
// {day2} and {part} are expanded in every argument.
type Command struct {
	argv    []string
	timeout time.Duration
}

var _ solve.Engine = (*Command)(nil)

// NewCommand returns an engine that invokes argv. A zero timeout selects
// DefaultCommandTimeout.
func NewCommand(argv []string, timeout time.Duration) (*Command, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, ErrEmptyCommand
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &Command{argv: append([]string(nil), argv...), timeout: timeout}, nil
}

// Args returns the expanded argument vector for day and part.
func (c *Command) Args(day, part int) []string {
	r := strings.NewReplacer(
		"{day2}", fmt.Sprintf("%02d", day),
		"{day}", strconv.Itoa(day),
		"{part}", strconv.Itoa(part),
	)
	out := make([]string, len(c.argv))
	for i, a := range c.argv {
		out[i] = r.Replace(a)
	}
	return out
}

// Solve implements solve.Engine.
func (c *Command) Solve(ctx context.Context, input string, day, part int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := c.Args(day, part)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(input)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.WaitDelay = time.Second

	logging.Debug("Engine", "Running %s for day %d part %d", args[0], day, part)
	runErr := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("solver timed out after %s", c.timeout)
	}
	if runErr != nil {
		stderr := strings.TrimSpace(stderrBuf.String())
		if stderr != "" {
			return "", fmt.Errorf("%s: %w: %s", args[0], runErr, stderr)
		}
		return "", fmt.Errorf("%s: %w", args[0], runErr)
	}
	return strings.TrimSpace(stdoutBuf.String()), nil
}
