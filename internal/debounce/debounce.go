// Package debounce collapses bursts of rapid events into a single trailing
// invocation. One instance serves the search input, a separate instance the
// resize handler; each coalesces independently.
package debounce

import (
	"sync"
	"time"
)

// DefaultSearchWindow is the quiet period applied to search-box keystrokes.
const DefaultSearchWindow = 280 * time.Millisecond

// DefaultResizeWindow is the quiet period applied to resize events.
const DefaultResizeWindow = 300 * time.Millisecond

// Debouncer runs a function once per quiet period. Each Call resets the
// timer and replaces the pending function, so a burst of calls results in
// exactly one invocation carrying the last call's closure.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	window  time.Duration
	pending func()
}

// New creates a Debouncer with the given quiet window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Call schedules fn to run after the quiet window elapses with no further
// calls. Any previously pending invocation is cancelled: last call wins.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.window, func() { d.fire() })
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Cancel drops any pending invocation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs any pending invocation immediately instead of waiting out the
// quiet window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Input debounces a stream of text values, delivering only the last value of
// each burst to a fixed handler. Used for the search box, where intermediate
// keystrokes must not each trigger a recompute.
type Input struct {
	d       *Debouncer
	handler func(string)

	mu   sync.Mutex
	last string
}

// NewInput creates an Input that calls handler with the final value of each
// burst after the quiet window.
func NewInput(window time.Duration, handler func(string)) *Input {
	return &Input{d: New(window), handler: handler}
}

// Submit records a new value and (re)starts the quiet window.
func (in *Input) Submit(value string) {
	in.mu.Lock()
	in.last = value
	in.mu.Unlock()

	in.d.Call(func() {
		in.mu.Lock()
		v := in.last
		in.mu.Unlock()
		in.handler(v)
	})
}

// Flush delivers the pending value immediately, if any.
func (in *Input) Flush() {
	in.d.Flush()
}

// Cancel drops any pending delivery.
func (in *Input) Cancel() {
	in.d.Cancel()
}
