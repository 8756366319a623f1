package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
	"github.com/uptime-industries/bcm2835-hal/pkg/eventbus"
	"github.com/uptime-industries/bcm2835-hal/pkg/ledengine"
	"github.com/uptime-industries/bcm2835-hal/pkg/log"
	"go.uber.org/zap"
)

const (
	edgeTopic = "edges"
	// backlog per WatchPins stream, slower consumers miss edges
	subscriberBacklog = 64
)

var (
	// edgeDroppedCounter counts edges of unknown pins, which should never be delivered by the kernel
	edgeDroppedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bcmd",
		Name:      "edge_events_ignored_total",
		Help:      "bcmd edge events ignored because the pin is not watched",
	})
)

// Config of the daemon
type Config struct {
	// Listen is the gRPC listen address, unix:///path or tcp://host:port
	Listen string `mapstructure:"listen"`
	// MetricsAddr is the listen address of the prometheus endpoint, empty disables it
	MetricsAddr string `mapstructure:"metrics_addr"`
	// Debug enables development logging
	Debug bool `mapstructure:"debug"`

	// GpioChip is the character device used for edge events
	GpioChip string `mapstructure:"gpio_chip"`
	// WatchPins are the pins reporting edges to WatchPins streams
	WatchPins []int `mapstructure:"watch_pins"`
	// WatchDebounce filters edges shorter than the period
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// StatusLed blinks an LED while the daemon is running
	StatusLed StatusLedConfig `mapstructure:"status_led"`

	Hal bcm2835.Opts `mapstructure:"hal"`
}

type StatusLedConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Pin is the GPIO driving the LED
	Pin uint8 `mapstructure:"pin"`
	// Pattern is one of off, on, slow or burst
	Pattern string `mapstructure:"pattern"`
}

// WatcherFactory opens an edge watcher, edgewatch.Open on real hardware
type WatcherFactory func(edgewatch.Opts, edgewatch.Handler) (edgewatch.Watcher, error)

// SpiSettings carries the SPI0 settings to change, nil fields are left alone
type SpiSettings struct {
	BitOrder     *bcm2835.BitOrder
	DataMode     *bcm2835.DataMode
	ClockDivider *uint16
	ChipSelect   *bcm2835.ChipSelect
	Timeout      *time.Duration
}

// Status is a snapshot of the session
type Status struct {
	Range       bcm2835.PeripheralRange
	Mapped      bool
	FullAccess  bool
	SpiActive   bool
	BitOrder    bcm2835.BitOrder
	WatchedPins []int
	// Levels holds the last level seen by the edge watcher per watched pin
	Levels map[int]bool
}

// Agent owns the peripheral session and serializes every access to it
type Agent struct {
	cfg         Config
	openWatcher WatcherFactory

	mu      sync.Mutex
	sess    *bcm2835.Session
	watcher edgewatch.Watcher

	bus   eventbus.EventBus[edgewatch.Event]
	state *PinState
}

// New returns an agent driving sess. The agent takes ownership of the session and closes
// it when Run returns.
func New(cfg Config, sess *bcm2835.Session, openWatcher WatcherFactory) *Agent {
	return &Agent{
		cfg:         cfg,
		openWatcher: openWatcher,
		sess:        sess,
		bus:         eventbus.New[edgewatch.Event](),
		state:       NewPinState(cfg.WatchPins),
	}
}

// Run starts the edge watcher and the status LED and blocks until the context is canceled
func (a *Agent) Run(origCtx context.Context) error {
	var wg sync.WaitGroup
	ctx, cancelCtx := context.WithCancelCause(origCtx)
	defer cancelCtx(nil)
	defer a.cleanup(ctx)

	rng := a.sess.Range()
	log.FromContext(ctx).Info("Starting bcmd agent",
		zap.Stringer("board", rng.Board),
		zap.Bool("full_access", a.sess.FullAccess()),
	)

	if len(a.cfg.WatchPins) > 0 && a.openWatcher != nil {
		watcher, err := a.openWatcher(edgewatch.Opts{
			Chip:     a.cfg.GpioChip,
			Pins:     a.cfg.WatchPins,
			Debounce: a.cfg.WatchDebounce,
		}, a.handleEdge)
		if err != nil {
			// GPIO and SPI keep working without edge events
			log.FromContext(ctx).Warn("Failed to watch pins, WatchPins streams stay silent",
				zap.Ints("pins", a.cfg.WatchPins), zap.Error(err))
		} else {
			a.mu.Lock()
			a.watcher = watcher
			a.mu.Unlock()
			log.FromContext(ctx).Info("Watching pins", zap.Ints("pins", a.cfg.WatchPins))
		}
	}

	if a.cfg.StatusLed.Enabled {
		engine, err := a.statusLedEngine(ctx)
		if err != nil {
			return err
		}

		// Start status LED engine
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.FromContext(ctx).Info("Starting status LED engine", zap.Uint8("pin", a.cfg.StatusLed.Pin))
			err := engine.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.FromContext(ctx).Error("Status LED engine failed", zap.Error(err))
				cancelCtx(err)
			}
		}()
	}

	<-ctx.Done()
	wg.Wait()
	if origCtx.Err() == nil {
		// canceled from within, e.g. a failed LED engine
		return context.Cause(ctx)
	}
	return origCtx.Err()
}

func (a *Agent) statusLedEngine(ctx context.Context) (ledengine.LedEngine, error) {
	pattern, err := ledengine.ParsePattern(a.cfg.StatusLed.Pattern)
	if err != nil {
		return nil, err
	}
	pin := bcm2835.Pin(a.cfg.StatusLed.Pin)
	if err := a.FunctionSelect(ctx, pin, bcm2835.Output); err != nil {
		return nil, fmt.Errorf("failed to configure status LED: %w", err)
	}

	engine := ledengine.NewLedEngine(ledengine.LedEngineOpts{
		Pin:    pin,
		Writer: a,
	})
	return engine, engine.SetPattern(pattern)
}

// cleanup releases the SPI0 pins and the mapping. Ignores canceled context!
func (a *Agent) cleanup(ctx context.Context) {
	log.FromContext(ctx).Info("Exiting, releasing peripherals")
	if err := a.Close(); err != nil {
		log.FromContext(ctx).Error("Failed to release peripherals", zap.Error(err))
	}
}

// Close ends an active SPI0 session, stops the edge watcher and unmaps the peripherals
func (a *Agent) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	if a.cfg.StatusLed.Enabled && a.sess.Mapped() {
		errs = append(errs, a.sess.Clear(bcm2835.Pin(a.cfg.StatusLed.Pin)))
	}
	if spi := a.sess.SPI0(); spi.Active() {
		errs = append(errs, spi.End())
	}
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
		a.watcher = nil
	}
	errs = append(errs, a.sess.Close())
	return errors.Join(errs...)
}

func (a *Agent) handleEdge(evt edgewatch.Event) {
	if !a.state.RegisterEvent(evt) {
		edgeDroppedCounter.Inc()
		return
	}
	a.bus.Publish(edgeTopic, evt)
}

// FunctionSelect sets the function of pin
func (a *Agent) FunctionSelect(_ context.Context, pin bcm2835.Pin, fn bcm2835.Function) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.FunctionSelect(pin, fn)
}

// Write drives pin high or low
func (a *Agent) Write(_ context.Context, pin bcm2835.Pin, high bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.Write(pin, high)
}

// Read samples the level of pin
func (a *Agent) Read(_ context.Context, pin bcm2835.Pin) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.Level(pin)
}

// SpiBegin hands the SPI0 pins to the peripheral
func (a *Agent) SpiBegin(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.SPI0().Begin()
}

// SpiEnd returns the SPI0 pins to inputs
func (a *Agent) SpiEnd(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.SPI0().End()
}

// SpiConfigure applies the given settings in order and stops at the first failure
func (a *Agent) SpiConfigure(_ context.Context, settings SpiSettings) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	spi := a.sess.SPI0()
	if settings.BitOrder != nil {
		if err := spi.SetBitOrder(*settings.BitOrder); err != nil {
			return err
		}
	}
	if settings.ClockDivider != nil {
		if err := spi.SetClockDivider(*settings.ClockDivider); err != nil {
			return err
		}
	}
	if settings.DataMode != nil {
		if err := spi.SetDataMode(*settings.DataMode); err != nil {
			return err
		}
	}
	if settings.ChipSelect != nil {
		if err := spi.SetChipSelect(*settings.ChipSelect); err != nil {
			return err
		}
	}
	if settings.Timeout != nil {
		if *settings.Timeout < 0 {
			return fmt.Errorf("negative transfer timeout %s", *settings.Timeout)
		}
		spi.SetTimeout(*settings.Timeout)
	}
	return nil
}

// SpiTransfer exchanges data byte by byte without releasing the bus in between
func (a *Agent) SpiTransfer(ctx context.Context, data []byte) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	read := make([]byte, len(data))
	if err := a.sess.SPI0().Tx(data, read); err != nil {
		return nil, err
	}
	return read, nil
}

// Status returns a snapshot of the session
func (a *Agent) Status(context.Context) Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	spi := a.sess.SPI0()
	return Status{
		Range:       a.sess.Range(),
		Mapped:      a.sess.Mapped(),
		FullAccess:  a.sess.FullAccess(),
		SpiActive:   spi.Active(),
		BitOrder:    spi.BitOrder(),
		WatchedPins: a.WatchedPins(),
		Levels:      a.state.Levels(),
	}
}

// WatchedPins returns the configured pins in ascending order
func (a *Agent) WatchedPins() []int {
	pins := append([]int(nil), a.cfg.WatchPins...)
	sort.Ints(pins)
	return pins
}

// Subscribe returns edge events of pins, or of every watched pin when pins is empty
func (a *Agent) Subscribe(pins []int) eventbus.Subscriber[edgewatch.Event] {
	if len(pins) == 0 {
		return a.bus.Subscribe(edgeTopic, subscriberBacklog, eventbus.MatchAll[edgewatch.Event])
	}
	wanted := make(map[int]struct{}, len(pins))
	for _, pin := range pins {
		wanted[pin] = struct{}{}
	}
	return a.bus.Subscribe(edgeTopic, subscriberBacklog, func(evt edgewatch.Event) bool {
		_, ok := wanted[evt.Pin]
		return ok
	})
}

// WaitForEdge blocks until the next edge on pin
func (a *Agent) WaitForEdge(ctx context.Context, pin int) error {
	return a.state.WaitForEdge(ctx, pin)
}
