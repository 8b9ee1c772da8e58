// Package debounce coalesces bursts of calls into one call after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn with the last value passed to Trigger once no new value has arrived for delay.
//
// Earlier pending values are superseded, never queued. fn runs on its own goroutine for timer-triggered calls
// and on the caller's goroutine for [Debouncer.Flush].
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	// applyMu is held across taking a value and running fn so a newer value is never overwritten by an older one.
	applyMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	value   T
	// generation invalidates timers that fired while a newer value or a Flush was being handled.
	generation uint64
	stopped    bool
}

// New creates a Debouncer calling fn after delay of inactivity.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Trigger records v as the latest value and restarts the quiet period.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.value = v
	d.pending = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
	}
	generation := d.generation
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(generation)
	})
}

func (d *Debouncer[T]) fire(generation uint64) {
	d.applyMu.Lock()
	defer d.applyMu.Unlock()
	d.mu.Lock()
	if d.stopped || !d.pending || generation != d.generation {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()
	d.fn(v)
}

// take clears the pending value and returns it. d.mu must be held.
func (d *Debouncer[T]) take() T {
	var zero T
	v := d.value
	d.value = zero
	d.pending = false
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return v
}

// Flush runs fn immediately with the pending value, if any, and reports whether it did.
func (d *Debouncer[T]) Flush() bool {
	d.applyMu.Lock()
	defer d.applyMu.Unlock()
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.take()
	d.mu.Unlock()
	d.fn(v)
	return true
}

// Pending reports whether a value is waiting for the quiet period to end.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop drops the pending value and ignores further triggers.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.take()
}
