package input

import (
	"aocctl/pkg/logging"
)

const subsystem = "Input"

// Listener is notified with the new text after every mutation.
type Listener func(text string)

type subscription struct {
	id       int
	listener Listener
}

// Manager owns the raw input text of one page. Every mutation is a total
// replacement and is followed, synchronously, by a notification of every
// subscriber in subscription order.
//
// The empty string is the "no input yet" state.
type Manager struct {
	text   string
	subs   []subscription
	nextID int
}

// NewManager returns a manager holding no input.
func NewManager() *Manager {
	return &Manager{}
}

// Text returns the current input.
func (m *Manager) Text() string {
	return m.text
}

// SetText replaces the input and notifies subscribers.
func (m *Manager) SetText(text string) {
	m.text = text

	// Subscribers may unsubscribe while being notified.
	subs := make([]subscription, len(m.subs))
	copy(subs, m.subs)
	for _, s := range subs {
		s.listener(text)
	}
}

// Subscribe registers l and returns a function that removes it again.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, listener: l})

	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// Upload runs read and, if it succeeds, delivers its normalized result with
// exactly one SetText. A failed read leaves the manager untouched; the error
// is logged and handed back so the host can surface it.
func (m *Manager) Upload(read func() (string, error)) error {
	text, err := read()
	if err != nil {
		logging.Warn(subsystem, "upload failed, keeping current input: %v", err)
		return err
	}
	m.SetText(Normalize(text))
	return nil
}
