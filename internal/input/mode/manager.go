package mode

import (
	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/input/key"
)

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to *Worker)

// Manager owns the active worker and applies transitions.
// It is driven from the event loop only and is not safe for concurrent use.
type Manager struct {
	current   *Worker
	callbacks []ChangeCallback
}

// NewManager creates a manager in command mode.
func NewManager() *Manager {
	return &Manager{current: NewCommand()}
}

// Current returns the active worker.
func (m *Manager) Current() *Worker {
	return m.current
}

// CurrentName returns the active mode name.
func (m *Manager) CurrentName() string {
	return m.current.Name()
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// Handle feeds one event to the active worker and applies any transition.
// It reports whether the mode changed.
func (m *Manager) Handle(st *editor.State, ev key.Event) bool {
	next := m.current.Update(st, ev)
	if next == nil {
		return false
	}
	m.Switch(next)
	return true
}

// Switch makes w the active worker and notifies callbacks.
func (m *Manager) Switch(w *Worker) {
	from := m.current
	m.current = w
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, w)
		}
	}
}

// Feed handles every event in order.
func (m *Manager) Feed(st *editor.State, events []key.Event) {
	for _, ev := range events {
		m.Handle(st, ev)
	}
}
