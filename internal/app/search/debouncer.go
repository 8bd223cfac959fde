package search

import (
	"strings"
	"sync"
	"time"
)

// Debouncer coalesces rapid query edits into a single callback after a
// quiet period, suppressing emissions whose trimmed value equals the
// previously emitted one.
type Debouncer interface {
	Trigger(query string)
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration    time.Duration
	callback    func(query string)
	timer       *time.Timer
	pending     string
	lastEmitted string
	emittedOnce bool
	mu          sync.Mutex
	stopped     bool
}

// NewDebouncer creates a new Debouncer with the specified quiet period and callback
func NewDebouncer(duration time.Duration, callback func(query string)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger registers a query edit and resets the debounce timer
func (d *debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = query

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Stop stops the debouncer and cancels any pending callback
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire emits the latest pending query unless it duplicates the last emission
func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	query := d.pending
	trimmed := strings.TrimSpace(query)

	if d.emittedOnce && trimmed == d.lastEmitted {
		d.mu.Unlock()
		return
	}

	d.lastEmitted = trimmed
	d.emittedOnce = true
	d.timer = nil

	d.mu.Unlock()

	d.callback(query)
}
