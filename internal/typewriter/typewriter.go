// Package typewriter reveals a fixed string one rune at a time.
//
// Typewriter is the pure state machine. Runner drives it on wall-clock
// timers for plain Go hosts, and Model binds it to a Bubble Tea program.
package typewriter

import (
	"errors"
	"strings"
	"time"

	"github.com/tinytelemetry/folio/internal/model"
)

// ErrEmptyText reports an animator built around an empty string.
var ErrEmptyText = errors.New("typewriter: empty text")

// State is the animator lifecycle.
type State int

const (
	Idle      State = iota // not yet activated
	Typing                 // activated, characters still pending
	Done                   // full text revealed
	Cancelled              // torn down before completion
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Typing:
		return "typing"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Options controls tick timing.
type Options struct {
	StartDelay time.Duration // before the first character
	Delay      time.Duration // between characters
}

// DefaultOptions returns a 500ms start delay and 40ms per character.
func DefaultOptions() Options {
	return Options{
		StartDelay: model.DefaultStartDelay,
		Delay:      model.DefaultTypingDelay,
	}
}

// Typewriter holds the revealed prefix of a fixed text. It is not safe for
// concurrent use; Runner adds locking.
type Typewriter struct {
	text     []rune
	revealed int
	state    State
	opts     Options
}

// New returns an Idle typewriter for text.
func New(text string, opts Options) (*Typewriter, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if opts.StartDelay < 0 {
		opts.StartDelay = 0
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Typewriter{
		text: []rune(text),
		opts: opts,
	}, nil
}

// Start activates an Idle typewriter and returns the delay before the first
// tick. It returns ok=false in any other state: the animation runs once per
// activation.
func (t *Typewriter) Start() (time.Duration, bool) {
	if t.state != Idle {
		return 0, false
	}
	t.state = Typing
	return t.opts.StartDelay, true
}

// Tick reveals one more character. It returns the new prefix, the delay
// before the next tick and whether another tick is wanted. Outside the
// Typing state it changes nothing.
func (t *Typewriter) Tick() (string, time.Duration, bool) {
	if t.state != Typing {
		return t.Revealed(), 0, false
	}

	t.revealed++
	if t.revealed >= len(t.text) {
		t.revealed = len(t.text)
		t.state = Done
		return t.Revealed(), 0, false
	}
	return t.Revealed(), t.opts.Delay, true
}

// Cancel moves an Idle or Typing animator to Cancelled. The revealed prefix
// is frozen. It reports whether the state changed.
func (t *Typewriter) Cancel() bool {
	if t.state != Idle && t.state != Typing {
		return false
	}
	t.state = Cancelled
	return true
}

// Reset returns the animator to Idle with nothing revealed, so the host can
// activate it again.
func (t *Typewriter) Reset() {
	t.revealed = 0
	t.state = Idle
}

// Revealed returns the currently visible prefix.
func (t *Typewriter) Revealed() string {
	return string(t.text[:t.revealed])
}

// Text returns the full text.
func (t *Typewriter) Text() string {
	return string(t.text)
}

// Len returns the number of ticks needed to reveal the full text.
func (t *Typewriter) Len() int {
	return len(t.text)
}

// State returns the current lifecycle state.
func (t *Typewriter) State() State {
	return t.state
}

// Done reports whether no further ticks will ever commit, either because
// the text is fully revealed or because the animation was cancelled.
func (t *Typewriter) Done() bool {
	return t.state == Done || t.state == Cancelled
}

// Words splits the revealed prefix on single spaces for wrapping. Empty
// words are kept so the caller can rejoin with " " losslessly.
func (t *Typewriter) Words() []string {
	if t.revealed == 0 {
		return nil
	}
	return strings.Split(t.Revealed(), " ")
}
