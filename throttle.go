package main

import "time"

// defaultFrameInterval bounds keystroke redraws to about 50 per second.
const defaultFrameInterval = 20 * time.Millisecond

// frameLimiter suppresses keystroke redraws that come sooner than interval
// after the previous one. A suppressed redraw is remembered and flushed by
// the loop on its next idle tick.
type frameLimiter struct {
	interval time.Duration
	disabled bool
	now      func() time.Time

	last    time.Time
	pending bool
}

func newFrameLimiter(interval time.Duration, disabled bool) frameLimiter {
	return frameLimiter{interval: interval, disabled: disabled, now: time.Now}
}

// ready reports whether a redraw may happen now. Elapsed time is compared
// as a whole, not just its sub-second part.
func (f *frameLimiter) ready() bool {
	if f.disabled {
		return true
	}
	return f.now().Sub(f.last) >= f.interval
}

// skip records that a redraw was held back.
func (f *frameLimiter) skip() {
	f.pending = true
}

// due reports whether a skipped redraw should be flushed now.
func (f *frameLimiter) due() bool {
	return f.pending && f.ready()
}

// wait returns how long the loop may block before a skipped redraw becomes
// due. ok is false when nothing is pending and the loop can block forever.
func (f *frameLimiter) wait() (d time.Duration, ok bool) {
	if !f.pending {
		return 0, false
	}
	if f.disabled {
		return 0, true
	}
	d = f.interval - f.now().Sub(f.last)
	if d < 0 {
		d = 0
	}
	return d, true
}

// mark records that a frame was just presented.
func (f *frameLimiter) mark() {
	f.last = f.now()
	f.pending = false
}
