package bcm2835

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/uptime-industries/bcm2835-hal/pkg/log"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
	"go.uber.org/zap"
)

const (
	MemDevicePath     = "/dev/mem"
	GPIOMemDevicePath = "/dev/gpiomem"
)

// Access selects which device file backs the mapping
type Access string

const (
	// AccessAuto uses /dev/mem when running as root and /dev/gpiomem otherwise
	AccessAuto Access = "auto"
	// AccessFull maps the whole peripheral block through /dev/mem
	AccessFull Access = "full"
	// AccessGPIO maps only the GPIO block through /dev/gpiomem
	AccessGPIO Access = "gpio"
)

// Opts configures a Session
type Opts struct {
	// RangesPath is the device-tree file used to locate the peripheral block
	RangesPath string `mapstructure:"ranges_path"`
	// MemPath is the device exposing physical memory
	MemPath string `mapstructure:"mem_path"`
	// GPIOMemPath is the unprivileged device exposing the GPIO registers at offset 0
	GPIOMemPath string `mapstructure:"gpiomem_path"`
	// Access selects the privilege tier
	Access Access `mapstructure:"access"`
	// TransferTimeout bounds the SPI0 status polling; zero blocks forever
	TransferTimeout time.Duration `mapstructure:"transfer_timeout"`

	// Fs is used to read RangesPath, defaults to the OS filesystem
	Fs afero.Fs `mapstructure:"-"`
	// Clock drives delays and transfer deadlines
	Clock util.Clock `mapstructure:"-"`
}

func (o Opts) withDefaults() Opts {
	if o.RangesPath == "" {
		o.RangesPath = DeviceTreeRangesPath
	}
	if o.MemPath == "" {
		o.MemPath = MemDevicePath
	}
	if o.GPIOMemPath == "" {
		o.GPIOMemPath = GPIOMemDevicePath
	}
	if o.Access == "" {
		o.Access = AccessAuto
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Clock == nil {
		o.Clock = util.RealClock{}
	}
	return o
}

// Session is a live mapping of the peripheral block. Exactly one session should exist
// per process; its methods are not safe for concurrent use.
type Session struct {
	rng    PeripheralRange
	mem    []byte
	unmap  func([]byte) error
	full   bool
	blocks Blocks
	clock  util.Clock
	spi    *SPI
}

// Open locates the peripheral block and maps it into the process.
func Open(ctx context.Context, opts Opts) (*Session, error) {
	opts = opts.withDefaults()

	switch opts.Access {
	case AccessAuto, AccessFull, AccessGPIO:
	default:
		return nil, fmt.Errorf("invalid access mode %q, supported: [auto, full, gpio]", opts.Access)
	}

	rng := LocatePeripherals(opts.Fs, opts.RangesPath)
	s := newSession(rng, opts)
	if err := s.mapPeripherals(opts); err != nil {
		return nil, err
	}

	access := AccessGPIO
	if s.full {
		access = AccessFull
	}
	sessionsOpen.WithLabelValues(string(access)).Inc()
	log.FromContext(ctx).Debug("Mapped peripheral block",
		zap.Stringer("board", rng.Board),
		zap.String("base", fmt.Sprintf("0x%08x", rng.Base)),
		zap.String("size", fmt.Sprintf("0x%08x", rng.Size)),
		zap.String("access", string(access)),
	)

	return s, nil
}

// FromBlocks returns a session over caller owned register memory, e.g. a fake backing
// store in tests. The session has full access when an SPI0 view is present.
func FromBlocks(blocks Blocks, opts Opts) *Session {
	opts = opts.withDefaults()
	s := newSession(DefaultPeripheralRange, opts)
	s.blocks = blocks
	s.full = blocks.SPI0 != nil
	return s
}

func newSession(rng PeripheralRange, opts Opts) *Session {
	s := &Session{
		rng:   rng,
		clock: opts.Clock,
	}
	s.spi = &SPI{
		s:        s,
		bitOrder: MSBFirst,
		timeout:  opts.TransferTimeout,
	}
	return s
}

// Close releases the mapping and resets every register view. Closing an already closed
// or never opened session is a no-op.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	var err error
	if s.mem != nil {
		if s.unmap != nil {
			err = s.unmap(s.mem)
		}
		access := AccessGPIO
		if s.full {
			access = AccessFull
		}
		sessionsOpen.WithLabelValues(string(access)).Dec()
	}

	s.mem = nil
	s.full = false
	s.blocks = Blocks{}
	if s.spi != nil {
		s.spi.active = false
	}

	if err != nil {
		return fmt.Errorf("failed to unmap peripheral block: %w", err)
	}
	return nil
}

// Blocks returns the register views of the mapped peripherals
func (s *Session) Blocks() Blocks {
	return s.blocks
}

// Mapped reports whether at least the GPIO block is accessible
func (s *Session) Mapped() bool {
	return s.blocks.GPIO != nil
}

// FullAccess reports whether peripherals beyond GPIO are accessible
func (s *Session) FullAccess() bool {
	return s.full
}

// Range returns the physical range detected when the session was opened
func (s *Session) Range() PeripheralRange {
	return s.rng
}

// SPI0 returns the controller for the SPI0 peripheral of this session
func (s *Session) SPI0() *SPI {
	if s.spi == nil {
		s.spi = &SPI{s: s, bitOrder: MSBFirst}
	}
	return s.spi
}
