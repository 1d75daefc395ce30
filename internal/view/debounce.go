package view

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered task once no new trigger has
// arrived for the delay.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	task  func()
	gen   uint64
}

// NewDebouncer creates an idle debouncer.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger replaces any pending task with task and restarts the delay.
func (d *Debouncer) Trigger(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.task = task
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Stop cancels the pending task. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.task != nil
	d.stopLocked()
	return pending
}

// Flush runs the pending task now, on the calling goroutine. It reports
// whether a task ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	task := d.task
	d.stopLocked()
	d.mu.Unlock()

	if task == nil {
		return false
	}
	task()
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.task == nil {
		d.mu.Unlock()
		return
	}
	task := d.task
	d.task = nil
	d.timer = nil
	d.mu.Unlock()

	task()
}

// stopLocked clears the pending task. A timer that already fired sees a
// stale generation and does nothing.
func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.task = nil
	d.gen++
}
