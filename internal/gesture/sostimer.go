package gesture

import "time"

// DefaultHoldThreshold is how long an open palm must be held continuously
// before the SOS signal raises.
const DefaultHoldThreshold = 3 * time.Second

// SosTimer turns the per-frame gesture stream into a duration-gated SOS
// signal. It is a two-state machine: idle until the first PALM frame starts
// the clock, timing while PALM persists, and back to idle on any non-PALM
// frame. There is no grace window; a single interrupting frame restarts the
// count from zero. Only the frame loop touches it, so it needs no locking.
type SosTimer struct {
	threshold time.Duration
	palmStart time.Time
	timing    bool
}

// NewSosTimer creates a timer with the given hold threshold. Values at or
// below zero fall back to DefaultHoldThreshold.
func NewSosTimer(threshold time.Duration) *SosTimer {
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &SosTimer{threshold: threshold}
}

// Update feeds one classified frame into the timer and returns the current
// SOS signal: true iff the palm has been held for at least the threshold.
// Absence of a hand is fed in as GestureNone and resets the count like any
// other non-palm frame.
func (t *SosTimer) Update(g Gesture, now time.Time) bool {
	if g != GesturePalm {
		t.timing = false
		return false
	}

	if !t.timing {
		t.timing = true
		t.palmStart = now
	}

	return now.Sub(t.palmStart) >= t.threshold
}

// Held reports how long the current palm hold has lasted. The second return
// value is false while the timer is idle.
func (t *SosTimer) Held(now time.Time) (time.Duration, bool) {
	if !t.timing {
		return 0, false
	}
	return now.Sub(t.palmStart), true
}

// Threshold returns the configured hold threshold.
func (t *SosTimer) Threshold() time.Duration {
	return t.threshold
}

// Reset forces the timer back to idle.
func (t *SosTimer) Reset() {
	t.timing = false
}
