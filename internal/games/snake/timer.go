package snake

import "time"

// StepTimer is a repeating fixed-interval timer advanced by frame deltas.
type StepTimer struct {
	Interval time.Duration
	elapsed  time.Duration
}

// NewStepTimer creates a timer firing every interval.
func NewStepTimer(interval time.Duration) StepTimer {
	return StepTimer{Interval: interval}
}

// Tick advances the timer by dt and reports whether it fired.
// Overshoot carries into the next period; at most one firing per call.
func (t *StepTimer) Tick(dt time.Duration) bool {
	if t.Interval <= 0 {
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.Interval {
		return false
	}
	t.elapsed -= t.Interval
	if t.elapsed >= t.Interval {
		t.elapsed %= t.Interval
	}
	return true
}

// Reset restarts the current period.
func (t *StepTimer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time accumulated in the current period.
func (t *StepTimer) Elapsed() time.Duration {
	return t.elapsed
}
