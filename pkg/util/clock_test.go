package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

func TestExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{"zero deadline never expires", time.Time{}, false},
		{"deadline in the future", now.Add(time.Second), false},
		{"deadline reached", now, true},
		{"deadline passed", now.Add(-time.Second), true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			clock := &util.MockClock{}
			clock.On("Now").Return(now).Maybe()
			assert.Equal(t, tt.want, util.Expired(clock, tt.deadline))
		})
	}
}

func TestRealClockSleep(t *testing.T) {
	t.Parallel()

	start := time.Now()
	util.RealClock{}.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
