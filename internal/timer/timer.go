// Package timer provides the background ticking clock for a typing round.
package timer

import (
	"sync"
	"time"
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 50 * time.Millisecond

// Timer tracks elapsed time on its own goroutine and invokes a callback
// after every tick. Elapsed time is counted in centiseconds from the
// monotonic start timestamp, so ticks never drift with callback latency.
type Timer struct {
	interval time.Duration

	mu      sync.Mutex
	ticks   int64
	started time.Time
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New returns a stopped timer with the given tick interval.
// Non-positive intervals fall back to DefaultInterval.
func New(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{interval: interval}
}

// Start launches the background goroutine. The callback runs on the timer
// goroutine after each tick; it must not assume the caller's goroutine.
// Starting a running timer stops the old goroutine first, so at most one
// timer goroutine is ever live.
func (t *Timer) Start(callback func()) {
	t.Stop()

	t.mu.Lock()
	t.ticks = 0
	t.started = time.Now()
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	stop, done := t.stop, t.done
	t.mu.Unlock()

	go t.loop(callback, stop, done)
}

func (t *Timer) loop(callback func(), stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.ticks = time.Since(t.started).Milliseconds() / 10
			t.mu.Unlock()
			if callback != nil {
				callback()
			}
		}
	}
}

// Ticks returns the elapsed centisecond count. Safe from any goroutine.
func (t *Timer) Ticks() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Running reports whether the timer goroutine is live.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Stop signals the goroutine and blocks until it has exited. No callback
// fires after Stop returns. Stopping a stopped or never-started timer is
// a no-op.
func (t *Timer) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stop, done := t.stop, t.done
	t.mu.Unlock()

	close(stop)
	<-done
}
