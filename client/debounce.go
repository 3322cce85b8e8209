package client

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid input into a single trailing-edge callback:
// every Input restarts the delay timer, and the callback fires only once
// the input has been quiet for the full delay. A settled value equal to the
// last dispatched one is skipped.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	pending string
	last    string
	hasLast bool
	stopped bool
}

func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Input records a keystroke's value and restarts the timer.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	value := d.pending
	if d.hasLast && value == d.last {
		d.mu.Unlock()
		return
	}
	d.last = value
	d.hasLast = true
	fn := d.fn
	d.mu.Unlock()

	fn(value)
}

// Stop cancels any outstanding dispatch. Call on view teardown so a timer
// cannot fire against a dead view.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
