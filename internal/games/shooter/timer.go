package shooter

import "time"

// TimerMode selects what a Timer does once its duration has elapsed.
type TimerMode int

const (
	// TimerOnce stops at its duration and stays finished until Reset.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and reports Finished only on the ticks
	// that crossed a period boundary.
	TimerRepeating
)

// Timer tracks accumulated time against a fixed duration.
// It drives the enemy spawn cadence and the player's fire cooldown.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	finished bool
}

// NewTimer creates a timer with the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) *Timer {
	if d < 0 {
		d = 0
	}
	return &Timer{duration: d, mode: mode}
}

// Tick advances the timer. Negative values count as zero.
func (t *Timer) Tick(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}

	if t.mode == TimerOnce {
		if t.finished {
			return
		}
		t.elapsed += elapsed
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
		}
		return
	}

	t.elapsed += elapsed
	if t.elapsed < t.duration {
		t.finished = false
		return
	}

	t.finished = true
	if t.duration == 0 {
		t.elapsed = 0
		return
	}
	t.elapsed %= t.duration
}

// Finished reports whether the duration was reached.
// For repeating timers this is only true on the tick that crossed a boundary.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset zeroes the accumulated time and clears the finished flag.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}

// Prime fills the timer so that the next tick finishes it.
func (t *Timer) Prime() {
	t.elapsed = t.duration
	t.finished = false
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the accumulated time since the last reset or wrap.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the next finish.
func (t *Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}

// Fraction returns progress through the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}
