// Package debounce coalesces rapid successive calls into a single execution
// after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay matches the search input debounce of the UI.
const DefaultDelay = 300 * time.Millisecond

type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDelay
	}
	return &Debouncer{duration: duration}
}

// Debounce schedules fn after the debounce duration. A new call before the
// timer fires cancels the pending one and restarts the timer, so at most one
// fn runs per quiet period.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel stops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
