package util

import (
	"time"
)

// Clock abstracts the time package so that delays and deadlines can be faked in tests
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time
	// Sleep blocks the calling goroutine for at least d
	Sleep(d time.Duration)
}

// RealClock implements the Clock interface using the real time package.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Expired reports whether deadline has been reached according to c.
// A zero deadline never expires.
func Expired(c Clock, deadline time.Time) bool {
	if deadline.IsZero() {
		return false
	}
	return !c.Now().Before(deadline)
}
