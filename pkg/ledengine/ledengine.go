package ledengine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

// PinWriter drives a GPIO output, implemented by the agent on top of a bcm2835 session
type PinWriter interface {
	Write(ctx context.Context, pin bcm2835.Pin, high bool) error
}

// LedEngine blinks an LED wired to a GPIO pin
type LedEngine interface {
	// SetPattern sets the blink pattern
	SetPattern(pattern BlinkPattern) error
	// Run runs the LED Engine
	Run(ctx context.Context) error
}

// ledEngineImpl is the implementation of the LedEngine interface
type ledEngineImpl struct {
	pin    bcm2835.Pin
	writer PinWriter
	clock  util.Clock

	mu      sync.Mutex
	restart chan struct{}
	pattern BlinkPattern
}

type BlinkPattern struct {
	// Base is the level shown when the pattern starts (-> before the first blink)
	Base bool
	// Active is the level shown during the blink
	Active bool
	// Delays is a list of delays between changes -> (base) -> 0.5s(active) -> 1s(base) -> 0.5s (active) -> 1s (base)
	Delays []time.Duration
}

// NewStaticPattern keeps the LED on or off
func NewStaticPattern(on bool) BlinkPattern {
	return BlinkPattern{
		Base:   on,
		Active: on,
		Delays: []time.Duration{time.Hour}, // 1h delay, we don't care as there are no level changes involved
	}
}

// NewBurstPattern creates a new burst pattern (~1s cycle duration with 3x 100ms bursts)
func NewBurstPattern() BlinkPattern {
	return BlinkPattern{
		Base:   false,
		Active: true,
		Delays: []time.Duration{
			500 * time.Millisecond, // 500ms off
			100 * time.Millisecond, // 100ms on
			100 * time.Millisecond, // 100ms off
			100 * time.Millisecond, // 100ms on
			100 * time.Millisecond, // 100ms off
			100 * time.Millisecond, // 100ms on
		},
	}
}

// NewSlowBlinkPattern creates a new slow blink pattern (~2s cycle duration with 1s off and 1s on)
func NewSlowBlinkPattern() BlinkPattern {
	return BlinkPattern{
		Base:   false,
		Active: true,
		Delays: []time.Duration{
			time.Second, // 1s off
			time.Second, // 1s on
		},
	}
}

// ParsePattern returns the pattern called name: off, on, slow or burst
func ParsePattern(name string) (BlinkPattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off":
		return NewStaticPattern(false), nil
	case "on":
		return NewStaticPattern(true), nil
	case "slow":
		return NewSlowBlinkPattern(), nil
	case "burst":
		return NewBurstPattern(), nil
	default:
		return BlinkPattern{}, fmt.Errorf("invalid led pattern %q, supported: [off, on, slow, burst]", name)
	}
}

// LedEngineOpts are the options for the LedEngine
type LedEngineOpts struct {
	// Pin is the GPIO driving the LED, it has to be configured as output
	Pin bcm2835.Pin
	// Writer drives the pin
	Writer PinWriter
	// Clock is the clock used for timing
	Clock util.Clock
}

func NewLedEngine(opts LedEngineOpts) *ledEngineImpl {
	clock := opts.Clock
	if clock == nil {
		clock = util.RealClock{}
	}
	return &ledEngineImpl{
		pin:     opts.Pin,
		writer:  opts.Writer,
		restart: make(chan struct{}),     // restart channel controls cancelation of any pattern
		pattern: NewStaticPattern(false), // LED off by default
		clock:   clock,
	}
}

func (b *ledEngineImpl) SetPattern(pattern BlinkPattern) error {
	if len(pattern.Delays) == 0 {
		return errors.New("pattern must have at least one delay")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pattern = pattern
	close(b.restart)
	b.restart = make(chan struct{})

	return nil
}

func (b *ledEngineImpl) current() (BlinkPattern, chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pattern, b.restart
}

// Run runs the blink engine
func (b *ledEngineImpl) Run(ctx context.Context) error {
	// Iterate forever unless context is done
	for {
		pattern, restart := b.current()

		if err := b.writer.Write(ctx, b.pin, pattern.Base); err != nil {
			return err
		}
		//  Iterate through pattern delays
	PatternLoop:
		for idx, delay := range pattern.Delays {
			select {
			// Whenever the pattern is restarted, break the loop and start over
			case <-restart:
				break PatternLoop
			// Whenever the context is done, return
			case <-ctx.Done():
				return ctx.Err()
			// Whenever the delay is over, toggle the level
			case <-b.clock.After(delay):
				level := pattern.Base
				if idx%2 == 0 {
					level = pattern.Active
				}
				if err := b.writer.Write(ctx, b.pin, level); err != nil {
					return err
				}
			}
		}
	}
}
