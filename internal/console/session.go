package console

import (
	"context"

	"aocctl/internal/catalog"
	"aocctl/internal/input"
	"aocctl/internal/solve"
)

// Dispatcher runs a prepared solve and applies its result to the session's
// pipeline. Synchronous hosts execute in place; the TUI hands the run to a
// tea.Cmd and applies the result when it arrives.
type Dispatcher func(s *Session, run *solve.Run)

// Synchronous executes the run immediately on the calling goroutine.
func Synchronous(s *Session, run *solve.Run) {
	s.Pipeline.Apply(run.Execute(context.Background()))
}

// Session is the isolated input and outcome state of one solvable page.
type Session struct {
	Title    string
	Day      catalog.DayContent
	Input    *input.Manager
	Pipeline *solve.Pipeline

	unsubscribe func()
}

func newSession(title string, day catalog.DayContent, engine solve.Engine, dispatch Dispatcher) *Session {
	s := &Session{
		Title:    title,
		Day:      day,
		Input:    input.NewManager(),
		Pipeline: solve.New(engine, day.Day),
	}
	s.unsubscribe = s.Input.Subscribe(func(text string) {
		if run := s.Pipeline.Prepare(text); run != nil {
			dispatch(s, run)
		}
	})
	return s
}

// SetText replaces the session input and triggers a solve.
func (s *Session) SetText(text string) {
	s.Input.SetText(text)
}

// Upload loads the session input through read; see input.Manager.Upload.
func (s *Session) Upload(read func() (string, error)) error {
	return s.Input.Upload(read)
}

// Outcomes returns the current part 1 and part 2 outcomes.
func (s *Session) Outcomes() (solve.Outcome, solve.Outcome) {
	return s.Pipeline.Outcomes()
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
