package world

import (
	"sync/atomic"
	"time"
)

// Countdown is the start delay shown before play begins or resumes.
// It is advanced by the update loop rather than by its own timer. The
// remaining tick count is atomic so a renderer may read it at any time.
type Countdown struct {
	ticks    int32
	interval time.Duration

	remaining atomic.Int32
	running   atomic.Bool
	elapsed   time.Duration
}

// NewCountdown creates a stopped countdown of ticks steps, one per interval.
func NewCountdown(ticks int, interval time.Duration) *Countdown {
	if ticks < 1 {
		ticks = 1
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Countdown{ticks: int32(ticks), interval: interval} //#nosec G115 -- tick count is small
}

// Start rearms the countdown. The first tick fires immediately, so a
// countdown of n ticks completes after n-1 intervals. It reports whether
// that first tick already completed the countdown.
func (c *Countdown) Start() bool {
	c.elapsed = 0
	c.remaining.Store(c.ticks)
	c.running.Store(true)
	if c.remaining.Add(-1) <= 0 {
		c.running.Store(false)
		return true
	}
	return false
}

// Stop cancels the countdown without completing it.
func (c *Countdown) Stop() {
	c.running.Store(false)
	c.elapsed = 0
}

// Advance moves the countdown forward by dt and reports whether it
// completed during this call. A stopped countdown never completes.
func (c *Countdown) Advance(dt time.Duration) bool {
	if !c.running.Load() {
		return false
	}
	c.elapsed += dt
	for c.elapsed >= c.interval {
		c.elapsed -= c.interval
		if c.remaining.Add(-1) <= 0 {
			c.Stop()
			return true
		}
	}
	return false
}

// Running reports whether the countdown is in progress.
func (c *Countdown) Running() bool {
	return c.running.Load()
}

// Remaining returns the number of ticks left.
func (c *Countdown) Remaining() int {
	return int(c.remaining.Load())
}
