package typewriter

import (
	"testing"
	"time"
)

func tickFor(m Model) TickMsg {
	return TickMsg{ID: m.id, Time: time.Now(), tag: m.tag}
}

func TestModel_StartReturnsTick(t *testing.T) {
	t.Parallel()

	m := NewModel(mustNew(t, "Hi"))
	m, cmd := m.Start()
	if cmd == nil {
		t.Fatal("Start returned nil cmd")
	}
	if m.State() != Typing {
		t.Fatalf("state = %v, want typing", m.State())
	}

	if _, cmd := m.Start(); cmd != nil {
		t.Fatal("second Start returned a cmd")
	}
}

func TestModel_TicksUntilDone(t *testing.T) {
	t.Parallel()

	m := NewModel(mustNew(t, "Hi"))
	m, _ = m.Start()

	m, cmd := m.Update(tickFor(m))
	if m.Revealed() != "H" || cmd == nil {
		t.Fatalf("tick 1: revealed %q cmd nil=%v", m.Revealed(), cmd == nil)
	}

	m, cmd = m.Update(tickFor(m))
	if m.Revealed() != "Hi" {
		t.Fatalf("tick 2: revealed %q", m.Revealed())
	}
	if cmd != nil {
		t.Fatal("cmd scheduled after full reveal")
	}
	if m.State() != Done {
		t.Fatalf("state = %v, want done", m.State())
	}
}

func TestModel_DropsForeignAndStaleTicks(t *testing.T) {
	t.Parallel()

	m := NewModel(mustNew(t, "Hi"))
	other := NewModel(mustNew(t, "Yo"))
	m, _ = m.Start()

	stale := tickFor(m)
	m, _ = m.Update(stale)
	if m.Revealed() != "H" {
		t.Fatalf("revealed %q, want H", m.Revealed())
	}

	// Replaying the consumed tick must not advance again.
	m, cmd := m.Update(stale)
	if m.Revealed() != "H" || cmd != nil {
		t.Fatalf("stale tick advanced: %q", m.Revealed())
	}

	m, _ = m.Update(TickMsg{ID: other.ID(), tag: m.tag})
	if m.Revealed() != "H" {
		t.Fatalf("foreign tick advanced: %q", m.Revealed())
	}
}

func TestModel_CancelDropsInFlightTick(t *testing.T) {
	t.Parallel()

	m := NewModel(mustNew(t, "Hi"))
	m, _ = m.Start()
	m, _ = m.Update(tickFor(m))

	inFlight := tickFor(m)
	m = m.Cancel()
	m, cmd := m.Update(inFlight)

	if m.Revealed() != "H" || cmd != nil {
		t.Fatalf("tick after cancel: revealed %q cmd nil=%v", m.Revealed(), cmd == nil)
	}
	if m.State() != Cancelled {
		t.Fatalf("state = %v, want cancelled", m.State())
	}
}

func TestModel_Restart(t *testing.T) {
	t.Parallel()

	m := NewModel(mustNew(t, "Hi"))
	m, _ = m.Start()
	m, _ = m.Update(tickFor(m))
	old := tickFor(m)

	m, cmd := m.Restart()
	if cmd == nil || m.Revealed() != "" || m.State() != Typing {
		t.Fatalf("restart: %q %v cmd nil=%v", m.Revealed(), m.State(), cmd == nil)
	}

	m, _ = m.Update(old)
	if m.Revealed() != "" {
		t.Fatalf("pre-restart tick advanced: %q", m.Revealed())
	}
}
