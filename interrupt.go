package bigrat

import "sync/atomic"

// Interrupter is polled by long-running computations, such as
// [Rat.PowInterruptible] and [Rat.StringInterruptible], to support
// cooperative cancellation.
// ShouldInterrupt must not have side effects.
type Interrupter interface {
	ShouldInterrupt() bool
}

// Never is an [Interrupter] that never interrupts.
type Never struct{}

// ShouldInterrupt always returns false.
func (Never) ShouldInterrupt() bool {
	return false
}

// Flag is an [Interrupter] that can be raised from another goroutine,
// typically a signal handler.
// Its zero value is not raised.
// Flag is safe for concurrent use by multiple goroutines.
type Flag struct {
	raised atomic.Bool
}

// Interrupt raises the flag and reports whether it had already been raised.
func (f *Flag) Interrupt() (already bool) {
	return f.raised.Swap(true)
}

// Reset lowers the flag.
// Callers reset the flag between independent top-level computations.
func (f *Flag) Reset() {
	f.raised.Store(false)
}

// ShouldInterrupt returns true if the flag is raised.
func (f *Flag) ShouldInterrupt() bool {
	return f.raised.Load()
}
