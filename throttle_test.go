package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(interval time.Duration, disabled bool) (*frameLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	f := newFrameLimiter(interval, disabled)
	f.now = clock.now
	f.mark()
	return &f, clock
}

func TestFrameLimiterSuppressesWithinInterval(t *testing.T) {
	f, clock := newTestLimiter(20*time.Millisecond, false)

	assert.False(t, f.ready())
	clock.advance(19 * time.Millisecond)
	assert.False(t, f.ready())
	clock.advance(time.Millisecond)
	assert.True(t, f.ready())
}

func TestFrameLimiterUsesTotalElapsed(t *testing.T) {
	f, clock := newTestLimiter(20*time.Millisecond, false)

	// 1.000000001s has a tiny sub-second part but is long past the limit.
	clock.advance(time.Second + time.Nanosecond)
	assert.True(t, f.ready())
}

func TestFrameLimiterPendingFlush(t *testing.T) {
	f, clock := newTestLimiter(20*time.Millisecond, false)

	_, ok := f.wait()
	assert.False(t, ok, "nothing pending blocks forever")
	assert.False(t, f.due())

	clock.advance(5 * time.Millisecond)
	f.skip()
	d, ok := f.wait()
	assert.True(t, ok)
	assert.Equal(t, 15*time.Millisecond, d)
	assert.False(t, f.due())

	clock.advance(30 * time.Millisecond)
	d, _ = f.wait()
	assert.Equal(t, time.Duration(0), d)
	assert.True(t, f.due())

	f.mark()
	assert.False(t, f.pending)
	assert.False(t, f.due())
}

func TestFrameLimiterDisabled(t *testing.T) {
	f, _ := newTestLimiter(time.Hour, true)
	assert.True(t, f.ready())

	f.skip()
	d, ok := f.wait()
	assert.True(t, ok)
	assert.Equal(t, time.Duration(0), d)
}
