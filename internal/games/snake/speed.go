package snake

import "time"

// SpeedRule derives the per-tick delay from the score:
// delay = max(0, BaseDelay - Step*score), or BaseDelay when Fixed.
type SpeedRule struct {
	BaseDelay time.Duration
	Step      time.Duration
	Fixed     bool
}

// DefaultSpeedRule is 150ms, two milliseconds faster per apple.
func DefaultSpeedRule() SpeedRule {
	return SpeedRule{
		BaseDelay: 150 * time.Millisecond,
		Step:      2 * time.Millisecond,
	}
}

// Delay returns the pause after a tick at the given score.
func (r SpeedRule) Delay(score int) time.Duration {
	if r.Fixed {
		return r.BaseDelay
	}
	d := r.BaseDelay - time.Duration(score)*r.Step
	if d < 0 {
		return 0
	}
	return d
}
