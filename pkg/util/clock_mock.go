package util

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// fails if MockClock does not implement Clock
var _ Clock = &MockClock{}

// MockClock implements the Clock interface using the testify mock package.
type MockClock struct {
	mock.Mock
}

// Now returns the current time.
func (mc *MockClock) Now() time.Time {
	args := mc.Called()
	return args.Get(0).(time.Time)
}

// After returns the channel configured for d
func (mc *MockClock) After(d time.Duration) <-chan time.Time {
	args := mc.Called(d)
	return args.Get(0).(chan time.Time)
}

// Sleep records the requested duration and returns immediately
func (mc *MockClock) Sleep(d time.Duration) {
	mc.Called(d)
}
