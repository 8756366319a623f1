package bcm2835

import "errors"

var (
	// ErrNotMapped is returned when a register block is used while no mapping exists,
	// either because Open failed or the session was closed.
	ErrNotMapped = errors.New("bcm2835: peripheral block not mapped")
	// ErrNoFullAccess is returned for peripherals outside the GPIO block when the session
	// was opened through /dev/gpiomem.
	ErrNoFullAccess = errors.New("bcm2835: peripheral requires /dev/mem access, are you root?")
	// ErrSPINotActive is returned by SPI0 operations issued before Begin or after End.
	ErrSPINotActive = errors.New("bcm2835: spi0 not active, call Begin first")
	// ErrTransferTimeout is returned when the SPI0 status register did not report
	// readiness within the configured transfer timeout.
	ErrTransferTimeout = errors.New("bcm2835: spi0 transfer timed out")
	// ErrUnsupportedPlatform is returned by Open on systems without /dev/mem.
	ErrUnsupportedPlatform = errors.New("bcm2835: memory mapped peripherals are only supported on linux")

	ErrInvalidPin        = errors.New("bcm2835: invalid gpio pin")
	ErrInvalidFunction   = errors.New("bcm2835: invalid gpio function")
	ErrInvalidBitOrder   = errors.New("bcm2835: invalid spi bit order")
	ErrInvalidDataMode   = errors.New("bcm2835: invalid spi data mode")
	ErrInvalidChipSelect = errors.New("bcm2835: invalid spi chip select")
)
