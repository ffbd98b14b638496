package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The scheduler samples it on every refresh and tick; astronomy code only ever
// receives the sampled instant.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time. Callers convert to UTC where it matters.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used by the -status one-shot and tests.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
