package kernel

import "time"

// Clock abstracts the current time so components that embed timestamps
// (such as export file names) can be tested deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock that reads time.Now.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock pinned to a single instant, intended for tests.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock that always returns the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
