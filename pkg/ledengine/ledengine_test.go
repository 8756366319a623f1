package ledengine_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/ledengine"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

const ledPin bcm2835.Pin = 17

// pinWriterMock implements a mock for the PinWriter interface
type pinWriterMock struct {
	mock.Mock
}

func (m *pinWriterMock) Write(ctx context.Context, pin bcm2835.Pin, high bool) error {
	args := m.Called(ctx, pin, high)
	return args.Error(0)
}

func TestParsePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want ledengine.BlinkPattern
	}{
		{"off", ledengine.BlinkPattern{Base: false, Active: false, Delays: []time.Duration{time.Hour}}},
		{"on", ledengine.BlinkPattern{Base: true, Active: true, Delays: []time.Duration{time.Hour}}},
		{"slow", ledengine.BlinkPattern{Base: false, Active: true, Delays: []time.Duration{time.Second, time.Second}}},
		{"Burst", ledengine.NewBurstPattern()},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ledengine.ParsePattern(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ledengine.ParsePattern("disco")
	assert.Error(t, err)
}

func TestNewBurstPattern(t *testing.T) {
	t.Parallel()

	pattern := ledengine.NewBurstPattern()
	assert.False(t, pattern.Base)
	assert.True(t, pattern.Active)
	// even number of delays, every cycle ends on the base level
	assert.Len(t, pattern.Delays, 6)

	var total time.Duration
	for _, d := range pattern.Delays {
		total += d
	}
	assert.Equal(t, time.Second, total)
}

func TestSetPatternWithoutDelays(t *testing.T) {
	t.Parallel()

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{Pin: ledPin, Writer: &pinWriterMock{}})
	assert.Error(t, engine.SetPattern(ledengine.BlinkPattern{Active: true}))
}

func Test_LedEngine_SetPattern_WhileRunning(t *testing.T) {
	t.Parallel()

	clk := util.MockClock{}
	clkAfterChan := make(chan time.Time)
	clk.On("After", time.Hour).Times(2).Return(clkAfterChan)

	writer := pinWriterMock{}
	writer.On("Write", mock.Anything, ledPin, false).Once().Return(nil)
	writer.On("Write", mock.Anything, ledPin, true).Once().Return(nil)

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{
		Pin:    ledPin,
		Writer: &writer,
		Clock:  &clk,
	})

	ctx, cancel := context.WithCancel(context.Background())

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := engine.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	}()

	// We want to change the pattern while the engine is running
	time.Sleep(5 * time.Millisecond)

	err := engine.SetPattern(ledengine.NewStaticPattern(true))
	assert.NoError(t, err)

	// wait for the restarted pattern to be applied
	time.Sleep(5 * time.Millisecond)
	cancel()
	wg.Wait()

	clk.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func Test_LedEngine_SetPattern_BeforeRun(t *testing.T) {
	t.Parallel()

	clk := util.MockClock{}
	clkAfterChan := make(chan time.Time)
	clk.On("After", time.Hour).Once().Return(clkAfterChan)

	writer := pinWriterMock{}
	writer.On("Write", mock.Anything, ledPin, true).Once().Return(nil)

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{
		Pin:    ledPin,
		Writer: &writer,
		Clock:  &clk,
	})
	// We want to change the pattern BEFORE the engine is started
	err := engine.SetPattern(ledengine.NewStaticPattern(true))
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = engine.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	clk.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func Test_LedEngine_Blink(t *testing.T) {
	t.Parallel()

	clk := util.MockClock{}
	clkAfterChan := make(chan time.Time)
	clk.On("After", time.Second).Return(clkAfterChan)

	writer := pinWriterMock{}
	off := writer.On("Write", mock.Anything, ledPin, false).Once().Return(nil)
	on := writer.On("Write", mock.Anything, ledPin, true).Once().Return(nil).NotBefore(off)
	// end of the cycle, then the base level of the next one
	writer.On("Write", mock.Anything, ledPin, false).Twice().Return(nil).NotBefore(on)

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{
		Pin:    ledPin,
		Writer: &writer,
		Clock:  &clk,
	})
	require.NoError(t, engine.SetPattern(ledengine.NewSlowBlinkPattern()))

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.ErrorIs(t, engine.Run(ctx), context.Canceled)
	}()

	// first delay elapses -> on, second -> off
	clkAfterChan <- time.Now()
	clkAfterChan <- time.Now()

	// wait until the engine blocks on the third delay before canceling
	time.Sleep(5 * time.Millisecond)
	cancel()
	wg.Wait()

	writer.AssertExpectations(t)
}

func Test_LedEngine_WriteFailureInPattern(t *testing.T) {
	t.Parallel()

	clk := util.MockClock{}
	clkAfterChan := make(chan time.Time)
	clk.On("After", time.Hour).Once().Return(clkAfterChan)

	writer := pinWriterMock{}
	call0 := writer.On("Write", mock.Anything, ledPin, false).Once().Return(nil)
	writer.On("Write", mock.Anything, ledPin, false).Once().Return(errors.New("failure")).NotBefore(call0)

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{
		Pin:    ledPin,
		Writer: &writer,
		Clock:  &clk,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.Error(t, engine.Run(ctx))
	}()

	// Time tick -> Write() fails
	clkAfterChan <- time.Now()

	wg.Wait()

	clk.AssertExpectations(t)
	writer.AssertExpectations(t)
}
