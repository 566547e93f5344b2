package solve

import (
	"context"
	"fmt"
	"sync"

	"aocctl/pkg/logging"

	"golang.org/x/sync/errgroup"
)

const subsystem = "Pipeline"

// Result carries the outcomes of one run, tagged with the generation of the
// trigger that started it.
type Result struct {
	Generation uint64
	Day        int
	Part1      Outcome
	Part2      Outcome
}

// Run is one prepared pair of engine invocations for a single input.
type Run struct {
	generation uint64
	day        int
	input      string
	engine     Engine
}

// Generation returns the trigger generation of the run.
func (r *Run) Generation() uint64 { return r.generation }

// Input returns the text the run solves.
func (r *Run) Input() string { return r.input }

// Execute attempts both parts, concurrently, and always attempts both. Engine
// errors and panics become Failure outcomes; Execute itself never fails.
func (r *Run) Execute(ctx context.Context) Result {
	var outcomes [len(Parts)]Outcome
	var g errgroup.Group
	for i, part := range Parts {
		g.Go(func() error {
			outcomes[i] = invoke(ctx, r.engine, r.input, r.day, part)
			return nil
		})
	}
	_ = g.Wait()

	return Result{
		Generation: r.generation,
		Day:        r.day,
		Part1:      outcomes[0],
		Part2:      outcomes[1],
	}
}

func invoke(ctx context.Context, engine Engine, input string, day, part int) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error(subsystem, nil, "engine panicked on day %d part %d: %v", day, part, rec)
			out = Failure(fmt.Sprint(rec))
		}
	}()

	answer, err := engine.Solve(ctx, input, day, part)
	if err != nil {
		logging.Debug(subsystem, "day %d part %d failed: %v", day, part, err)
		return Failure(err.Error())
	}
	logging.Debug(subsystem, "day %d part %d solved", day, part)
	return Success(answer)
}

// Pipeline keeps the per-part outcomes of one day page. Every trigger takes a
// new generation; only the result of the latest generation is ever applied,
// so a superseded run can never overwrite a newer one regardless of the order
// in which runs complete.
type Pipeline struct {
	engine Engine
	day    int

	mu         sync.Mutex
	generation uint64
	applied    uint64
	part1      Outcome
	part2      Outcome
	attempts   int
}

// New returns a pipeline for day with both outcomes Pending.
func New(engine Engine, day int) *Pipeline {
	return &Pipeline{engine: engine, day: day}
}

// Day returns the day the pipeline solves.
func (p *Pipeline) Day() int { return p.day }

// Prepare registers a trigger for text. For the empty text both outcomes are
// reset to Pending immediately and nil is returned: nothing must be invoked.
// Otherwise the returned Run has to be executed and its Result applied.
func (p *Pipeline) Prepare(text string) *Run {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	if text == "" {
		p.part1, p.part2 = Pending(), Pending()
		p.applied = p.generation
		return nil
	}
	p.attempts += len(Parts)
	return &Run{
		generation: p.generation,
		day:        p.day,
		input:      text,
		engine:     p.engine,
	}
}

// Apply stores res if it belongs to the latest trigger. It reports whether
// the result was applied; stale results are dropped.
func (p *Pipeline) Apply(res Result) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res.Generation != p.generation {
		logging.Debug(subsystem, "dropping stale result for day %d (generation %d, latest %d)", p.day, res.Generation, p.generation)
		return false
	}
	p.part1, p.part2 = res.Part1, res.Part2
	p.applied = res.Generation
	return true
}

// Update is the synchronous trigger: prepare, execute and apply in one call.
func (p *Pipeline) Update(ctx context.Context, text string) {
	run := p.Prepare(text)
	if run == nil {
		return
	}
	p.Apply(run.Execute(ctx))
}

// Outcomes returns the current part 1 and part 2 outcomes.
func (p *Pipeline) Outcomes() (Outcome, Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.part1, p.part2
}

// Running reports whether the latest trigger has not been applied yet.
func (p *Pipeline) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.applied != p.generation
}

// Attempts returns the number of engine invocations prepared so far.
func (p *Pipeline) Attempts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts
}
