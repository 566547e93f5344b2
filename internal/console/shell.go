package console

import (
	"aocctl/internal/catalog"
	"aocctl/internal/selection"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

const subsystem = "Console"

// Option configures a Shell.
type Option func(*Shell)

// WithDispatcher replaces the synchronous dispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(s *Shell) {
		if d != nil {
			s.dispatch = d
		}
	}
}

// WithDefaultPage seeds the selection. The title is not validated.
func WithDefaultPage(title string) Option {
	return func(s *Shell) {
		s.defaultPage = title
	}
}

// Shell composes the catalog and the selection, and hosts one Session per
// solvable page. Sessions are created up front and live until Close, so
// switching pages never resets or leaks another page's state.
type Shell struct {
	catalog     *catalog.Catalog
	selection   *selection.Controller
	sessions    map[string]*Session
	dispatch    Dispatcher
	defaultPage string
}

// New builds a shell over cat. Pages whose content is catalog.DayContent get
// a session solving with engine.
func New(cat *catalog.Catalog, engine solve.Engine, opts ...Option) *Shell {
	s := &Shell{
		catalog:  cat,
		sessions: make(map[string]*Session),
		dispatch: Synchronous,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selection = selection.New(selection.DefaultTitle(cat, s.defaultPage))

	for _, dup := range cat.Duplicates() {
		logging.Warn(subsystem, "duplicate page title %q, only the first entry is reachable", dup)
	}
	for _, page := range cat.Pages() {
		day, ok := page.Content.(catalog.DayContent)
		if !ok {
			continue
		}
		if _, exists := s.sessions[page.Title]; exists {
			continue
		}
		s.sessions[page.Title] = newSession(page.Title, day, engine, s.dispatch)
	}
	logging.Debug(subsystem, "shell ready with %d pages, %d sessions, selected %q", cat.Len(), len(s.sessions), s.selection.Current())
	return s
}

// Catalog returns the catalog the shell was built over.
func (s *Shell) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select overwrites the selection. It never fails.
func (s *Shell) Select(title string) {
	s.selection.Select(title)
}

// Selected returns the selected title, resolved or not.
func (s *Shell) Selected() string {
	return s.selection.Current()
}

// Move shifts the selection by delta catalog entries, wrapping around.
func (s *Shell) Move(delta int) {
	s.selection.Move(s.catalog, delta)
}

// Current resolves the selection. The boolean is false when the selection has
// no catalog match and catalog.NotFound is returned.
func (s *Shell) Current() (catalog.Page, bool) {
	return s.selection.Resolve(s.catalog)
}

// View returns the content to render: the selected page's content or the
// fallback catalog.NotFoundContent.
func (s *Shell) View() catalog.Content {
	page, _ := s.Current()
	return page.Content
}

// Session returns the session of the page titled title.
func (s *Shell) Session(title string) (*Session, bool) {
	sess, ok := s.sessions[title]
	return sess, ok
}

// CurrentSession returns the session of the selected page, if it has one.
func (s *Shell) CurrentSession() (*Session, bool) {
	page, ok := s.Current()
	if !ok {
		return nil, false
	}
	return s.Session(page.Title)
}

// Close detaches every pipeline from its input.
func (s *Shell) Close() {
	for _, sess := range s.sessions {
		sess.close()
	}
}
