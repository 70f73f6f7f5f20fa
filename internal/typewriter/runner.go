package typewriter

import (
	"context"
	"sync"
	"time"
)

// Timer is a one-shot scheduled callback that can be revoked.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by time.AfterFunc.
func RealClock() Clock {
	return realClock{}
}

// Runner drives a Typewriter on a Clock and reports every revealed prefix
// to emit. Each tick schedules the next only after committing its own
// character, so emits arrive in strictly increasing length.
type Runner struct {
	mu    sync.Mutex
	tw    *Typewriter
	clock Clock
	emit  func(revealed string)

	timer   Timer
	gen     uint64 // bumped on Stop; timers carry the gen they were armed with
	started bool

	done     chan struct{}
	doneOnce sync.Once
}

// NewRunner wraps tw. emit is called with the runner's lock held and must
// not call back into the Runner. A nil clock means RealClock.
func NewRunner(tw *Typewriter, clock Clock, emit func(revealed string)) *Runner {
	if clock == nil {
		clock = RealClock()
	}
	if emit == nil {
		emit = func(string) {}
	}
	return &Runner{
		tw:    tw,
		clock: clock,
		emit:  emit,
		done:  make(chan struct{}),
	}
}

// Start activates the typewriter and arms the first tick. Cancelling ctx
// stops the runner. Calling Start more than once has no effect.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true

	delay, ok := r.tw.Start()
	if !ok {
		r.mu.Unlock()
		r.finish()
		return
	}
	r.arm(delay)
	r.mu.Unlock()

	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			r.Stop()
		case <-r.done:
		}
	}()
}

// arm schedules the next tick. Caller holds mu.
func (r *Runner) arm(delay time.Duration) {
	gen := r.gen
	r.timer = r.clock.AfterFunc(delay, func() { r.fire(gen) })
}

func (r *Runner) fire(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.tw.Done() {
		r.mu.Unlock()
		return
	}

	revealed, delay, more := r.tw.Tick()
	r.emit(revealed)
	if more {
		r.arm(delay)
		r.mu.Unlock()
		return
	}
	r.timer = nil
	r.mu.Unlock()
	r.finish()
}

// Stop cancels the pending tick. No emit happens after Stop returns.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.tw.Cancel()
	r.mu.Unlock()
	r.finish()
}

// Done is closed once the text is fully revealed or the runner is stopped.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Revealed returns the current prefix.
func (r *Runner) Revealed() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tw.Revealed()
}

// State returns the typewriter state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tw.State()
}

func (r *Runner) finish() {
	r.doneOnce.Do(func() { close(r.done) })
}
