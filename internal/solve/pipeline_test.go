package solve

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type call struct {
	input string
	day   int
	part  int
}

// stubEngine records every invocation and answers through fn.
type stubEngine struct {
	mu    sync.Mutex
	calls []call
	fn    func(input string, day, part int) (string, error)
}

func (s *stubEngine) Solve(_ context.Context, input string, day, part int) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, call{input, day, part})
	s.mu.Unlock()
	return s.fn(input, day, part)
}

func (s *stubEngine) Calls() []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]call, len(s.calls))
	copy(out, s.calls)
	return out
}

func TestUpdate_SuccessAndFailurePerPart(t *testing.T) {
	engine := &stubEngine{fn: func(input string, day, part int) (string, error) {
		if part == 2 {
			return "", errors.New("bad format")
		}
		return "7", nil
	}}
	p := New(engine, 3)

	p.Update(context.Background(), "42")

	part1, part2 := p.Outcomes()
	assert.Equal(t, Success("7"), part1)
	assert.Equal(t, Failure("bad format"), part2)
	assert.ElementsMatch(t, []call{{"42", 3, 1}, {"42", 3, 2}}, engine.Calls())
	assert.False(t, p.Running())
}

func TestUpdate_EmptyInputNeverInvokes(t *testing.T) {
	engine := &stubEngine{fn: func(string, int, int) (string, error) { return "x", nil }}
	p := New(engine, 1)

	p.Update(context.Background(), "")

	part1, part2 := p.Outcomes()
	assert.True(t, part1.IsPending())
	assert.True(t, part2.IsPending())
	assert.Empty(t, engine.Calls())
	assert.Equal(t, 0, p.Attempts())
}

func TestUpdate_ExactlyOneAttemptPerPart(t *testing.T) {
	inputs := []string{"a", "1 2\n3 4", " ", "\n"}
	for _, failPart := range []int{0, 1, 2} {
		for _, in := range inputs {
			engine := &stubEngine{fn: func(_ string, _ int, part int) (string, error) {
				if part == failPart {
					return "", errors.New("nope")
				}
				return "ok", nil
			}}
			p := New(engine, 5)
			p.Update(context.Background(), in)

			calls := engine.Calls()
			require.Len(t, calls, 2, "input %q failPart %d", in, failPart)
			assert.ElementsMatch(t, []int{1, 2}, []int{calls[0].part, calls[1].part})
		}
	}
}

func TestIndependence(t *testing.T) {
	for _, failing := range []int{Part1, Part2} {
		engine := &stubEngine{fn: func(_ string, _ int, part int) (string, error) {
			if part == failing {
				return "", errors.New("broken")
			}
			return "fine", nil
		}}
		p := New(engine, 2)
		p.Update(context.Background(), "input")

		part1, part2 := p.Outcomes()
		if failing == Part1 {
			assert.Equal(t, Failure("broken"), part1)
			assert.Equal(t, Success("fine"), part2)
		} else {
			assert.Equal(t, Success("fine"), part1)
			assert.Equal(t, Failure("broken"), part2)
		}
	}
}

func TestUpdate_PanicBecomesFailure(t *testing.T) {
	engine := &stubEngine{fn: func(_ string, _ int, part int) (string, error) {
		if part == 1 {
			panic("index out of range")
		}
		return "31", nil
	}}
	p := New(engine, 1)

	assert.NotPanics(t, func() { p.Update(context.Background(), "3 4") })

	part1, part2 := p.Outcomes()
	assert.Equal(t, Failure("index out of range"), part1)
	assert.Equal(t, Success("31"), part2)
}

func TestUpdate_ClearAfterInputLeavesNoResidue(t *testing.T) {
	engine := &stubEngine{fn: func(string, int, int) (string, error) { return "answer", nil }}
	p := New(engine, 1)

	p.Update(context.Background(), "x")
	p.Update(context.Background(), "")

	part1, part2 := p.Outcomes()
	assert.Equal(t, Pending(), part1)
	assert.Equal(t, Pending(), part2)
}

func TestApply_StaleResultIsDropped(t *testing.T) {
	engine := &stubEngine{fn: func(input string, _ int, part int) (string, error) {
		return input, nil
	}}
	p := New(engine, 1)

	older := p.Prepare("old")
	newer := p.Prepare("new")
	require.NotNil(t, older)
	require.NotNil(t, newer)
	assert.Greater(t, newer.Generation(), older.Generation())
	assert.True(t, p.Running())

	// The newer run completes first, the older one afterwards.
	assert.True(t, p.Apply(newer.Execute(context.Background())))
	assert.False(t, p.Apply(older.Execute(context.Background())))

	part1, part2 := p.Outcomes()
	assert.Equal(t, Success("new"), part1)
	assert.Equal(t, Success("new"), part2)
	assert.False(t, p.Running())
}

func TestApply_ClearSupersedesInFlightRun(t *testing.T) {
	engine := &stubEngine{fn: func(string, int, int) (string, error) { return "late", nil }}
	p := New(engine, 1)

	run := p.Prepare("x")
	require.NotNil(t, run)
	assert.Nil(t, p.Prepare(""))

	assert.False(t, p.Apply(run.Execute(context.Background())))
	part1, part2 := p.Outcomes()
	assert.True(t, part1.IsPending())
	assert.True(t, part2.IsPending())
}

func TestApply_ConcurrentCompletion(t *testing.T) {
	engine := &stubEngine{fn: func(input string, _ int, _ int) (string, error) { return input, nil }}
	p := New(engine, 4)

	runs := []*Run{p.Prepare("1"), p.Prepare("2"), p.Prepare("3")}

	var wg sync.WaitGroup
	for _, run := range runs {
		wg.Add(1)
		go func(r *Run) {
			defer wg.Done()
			p.Apply(r.Execute(context.Background()))
		}(run)
	}
	wg.Wait()

	part1, part2 := p.Outcomes()
	assert.Equal(t, Success("3"), part1)
	assert.Equal(t, Success("3"), part2)
	assert.Equal(t, 6, p.Attempts())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())
	assert.Equal(t, "unknown", Status(42).String())
}
