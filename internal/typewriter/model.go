package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the Model with the matching ID. Messages whose tag no
// longer matches were armed before a Cancel or restart and are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model binds a Typewriter to Bubble Tea. Like the bubbles spinner it is a
// value type; the host stores the Model returned from every call.
type Model struct {
	tw  *Typewriter
	id  int
	tag int
}

// NewModel wraps tw.
func NewModel(tw *Typewriter) Model {
	return Model{tw: tw, id: nextID()}
}

// ID returns the id carried by this model's tick messages.
func (m Model) ID() int {
	return m.id
}

// Start activates the animation. It returns a nil Cmd when the typewriter
// has already been activated.
func (m Model) Start() (Model, tea.Cmd) {
	delay, ok := m.tw.Start()
	if !ok {
		return m, nil
	}
	m.tag++
	return m, m.tick(delay)
}

// Update consumes this model's tick messages and ignores everything else.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.tag != m.tag {
		return m, nil
	}

	_, delay, more := m.tw.Tick()
	if !more {
		return m, nil
	}
	m.tag++
	return m, m.tick(delay)
}

// Cancel tears the animation down. Ticks already in flight are dropped.
func (m Model) Cancel() Model {
	m.tw.Cancel()
	m.tag++
	return m
}

// Restart resets the typewriter and activates it again.
func (m Model) Restart() (Model, tea.Cmd) {
	m.tag++
	m.tw.Reset()
	return m.Start()
}

// Revealed returns the visible prefix.
func (m Model) Revealed() string {
	return m.tw.Revealed()
}

// Words returns the visible prefix split for wrapping.
func (m Model) Words() []string {
	return m.tw.Words()
}

// State returns the animator state.
func (m Model) State() State {
	return m.tw.State()
}

func (m Model) tick(d time.Duration) tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
