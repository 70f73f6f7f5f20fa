package typewriter

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"
)

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// Advance moves time forward by d, firing due timers in deadline order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
		var next *manualTimer
		for i, t := range c.timers {
			if t.at > target {
				break
			}
			next = t
			c.timers = append(c.timers[:i:i], c.timers[i+1:]...)
			break
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		stopped := next.stopped
		c.mu.Unlock()
		if !stopped {
			next.f()
		}
	}
}

func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type recorder struct {
	mu     sync.Mutex
	frames []string
}

func (r *recorder) emit(s string) {
	r.mu.Lock()
	r.frames = append(r.frames, s)
	r.mu.Unlock()
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

func newTestRunner(t *testing.T, text string) (*Runner, *manualClock, *recorder) {
	t.Helper()
	clock := &manualClock{}
	rec := &recorder{}
	return NewRunner(mustNew(t, text), clock, rec.emit), clock, rec
}

func TestRunner_Timeline(t *testing.T) {
	t.Parallel()

	r, clock, rec := newTestRunner(t, "Hi")
	r.Start(context.Background())

	clock.Advance(499 * time.Millisecond)
	if got := r.Revealed(); got != "" {
		t.Fatalf("t=499ms revealed %q, want empty", got)
	}

	clock.Advance(time.Millisecond)
	if got := r.Revealed(); got != "H" {
		t.Fatalf("t=500ms revealed %q, want H", got)
	}

	clock.Advance(39 * time.Millisecond)
	if got := r.Revealed(); got != "H" {
		t.Fatalf("t=539ms revealed %q, want H", got)
	}

	clock.Advance(time.Millisecond)
	if got := r.Revealed(); got != "Hi" {
		t.Fatalf("t=540ms revealed %q, want Hi", got)
	}

	select {
	case <-r.Done():
	default:
		t.Fatal("Done not closed after full reveal")
	}
	if n := clock.pending(); n != 0 {
		t.Fatalf("pending timers = %d, want 0", n)
	}

	clock.Advance(time.Second)
	if got, want := rec.get(), []string{"H", "Hi"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("frames = %q, want %q", got, want)
	}
}

func TestRunner_StopAfterFirstTick(t *testing.T) {
	t.Parallel()

	r, clock, rec := newTestRunner(t, "Hi")
	r.Start(context.Background())
	clock.Advance(500 * time.Millisecond)

	r.Stop()
	clock.Advance(time.Second)

	if got := r.Revealed(); got != "H" {
		t.Fatalf("revealed after stop = %q, want H", got)
	}
	if got, want := rec.get(), []string{"H"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("frames = %q, want %q", got, want)
	}
	if r.State() != Cancelled {
		t.Fatalf("state = %v, want cancelled", r.State())
	}
	select {
	case <-r.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestRunner_StaleTimerIgnored(t *testing.T) {
	t.Parallel()

	// A clock whose Stop never revokes still must not mutate after Stop.
	clock := &leakyClock{}
	tw := mustNew(t, "Hi")
	r := NewRunner(tw, clock, nil)
	r.Start(context.Background())

	r.Stop()
	clock.fireAll()

	if got := tw.Revealed(); got != "" {
		t.Fatalf("revealed = %q, want empty", got)
	}
}

type leakyClock struct {
	mu  sync.Mutex
	fns []func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }

func (c *leakyClock) AfterFunc(_ time.Duration, f func()) Timer {
	c.mu.Lock()
	c.fns = append(c.fns, f)
	c.mu.Unlock()
	return noopTimer{}
}

func (c *leakyClock) fireAll() {
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func TestRunner_ContextCancelStops(t *testing.T) {
	t.Parallel()

	r, clock, _ := newTestRunner(t, "Hello")
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	clock.Advance(500 * time.Millisecond)

	cancel()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop on context cancel")
	}

	clock.Advance(time.Second)
	if got := r.Revealed(); got != "H" {
		t.Fatalf("revealed = %q, want H", got)
	}
}

func TestRunner_StartTwice(t *testing.T) {
	t.Parallel()

	r, clock, rec := newTestRunner(t, "ab")
	r.Start(context.Background())
	r.Start(context.Background())

	clock.Advance(time.Second)
	if got, want := rec.get(), []string{"a", "ab"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("frames = %q, want %q", got, want)
	}
}

func TestRunner_RealClock(t *testing.T) {
	t.Parallel()

	tw, err := New("go", Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := &recorder{}
	r := NewRunner(tw, nil, rec.emit)
	r.Start(context.Background())

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("real clock runner did not finish")
	}
	if got, want := rec.get(), []string{"g", "go"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("frames = %q, want %q", got, want)
	}
}
