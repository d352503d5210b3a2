package clock

import "time"

// Clock stamps game changes and times computer moves. Tests swap in
// mocks.MockClock.
type Clock interface {
	Now() time.Time
	// Since is the time elapsed from t, measured on this clock
	Since(t time.Time) time.Duration
}

// RealClock reads the system clock
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
