package core

import "time"

// Interval gates auto-iteration: a generation is due once more than the
// configured number of milliseconds has elapsed since the last one.
type Interval struct {
	every   time.Duration
	last    time.Time
	enabled bool
}

// NewInterval constructs a disabled Interval firing every ms milliseconds.
func NewInterval(ms int) *Interval {
	iv := &Interval{}
	iv.SetMillis(ms)
	return iv
}

// SetMillis changes the interval. Negative values are treated as zero, which
// fires on every tick.
func (iv *Interval) SetMillis(ms int) {
	if ms < 0 {
		ms = 0
	}
	iv.every = time.Duration(ms) * time.Millisecond
}

// Millis returns the configured interval in milliseconds.
func (iv *Interval) Millis() int { return int(iv.every / time.Millisecond) }

// Enabled reports whether auto-iteration is on.
func (iv *Interval) Enabled() bool { return iv.enabled }

// Toggle flips auto-iteration on or off.
func (iv *Interval) Toggle() { iv.enabled = !iv.enabled }

// SetEnabled turns auto-iteration on or off.
func (iv *Interval) SetEnabled(on bool) { iv.enabled = on }

// Due reports whether a generation should run at now. When it returns true the
// caller is expected to run it; the interval restarts from now.
func (iv *Interval) Due(now time.Time) bool {
	if !iv.enabled {
		return false
	}
	if now.Sub(iv.last) <= iv.every {
		return false
	}
	iv.last = now
	return true
}
