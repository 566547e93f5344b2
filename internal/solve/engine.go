package solve

import "context"

// Puzzle parts.
const (
	Part1 = 1
	Part2 = 2
)

// Parts lists the parts every run attempts, in display order.
var Parts = [2]int{Part1, Part2}

// Engine is the solving capability consumed by the pipeline. It is expected
// to behave as a pure function of (input, day, part).
type Engine interface {
	Solve(ctx context.Context, input string, day, part int) (string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, input string, day, part int) (string, error)

// Solve implements Engine.
func (f EngineFunc) Solve(ctx context.Context, input string, day, part int) (string, error) {
	return f(ctx, input, day, part)
}
