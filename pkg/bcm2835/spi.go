package bcm2835

import (
	"fmt"
	"strings"
	"time"

	"github.com/uptime-industries/bcm2835-hal/pkg/util"
	"tinygo.org/x/drivers"
)

// SPI0 register offsets
const (
	regSPI0CS   = 0x00
	regSPI0FIFO = 0x04
	regSPI0CLK  = 0x08
)

// SPI0 CS register bits
const (
	spiCSTXD   = 1 << 18 // TX FIFO can accept data
	spiCSRXD   = 1 << 17 // RX FIFO contains data
	spiCSDone  = 1 << 16 // transfer done
	spiCSTA    = 1 << 7  // transfer active
	spiCSClear = 0b11 << 4
	spiCSCPOL  = 1 << 3
	spiCSCPHA  = 1 << 2
	spiCSCS    = 0b11
)

// polls between two deadline checks, keeps the clock out of the hot loop
const spiPollBatch = 64

// SPI0 pins, all switched to Alt0 while the bus is active
const (
	PinSPI0CE1  Pin = 7
	PinSPI0CE0  Pin = 8
	PinSPI0MISO Pin = 9
	PinSPI0MOSI Pin = 10
	PinSPI0SCLK Pin = 11
)

var spi0Pins = []Pin{PinSPI0CE1, PinSPI0CE0, PinSPI0MISO, PinSPI0MOSI, PinSPI0SCLK}

// BitOrder of the bytes exchanged on the bus
type BitOrder uint8

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case LSBFirst:
		return "lsb-first"
	case MSBFirst:
		return "msb-first"
	default:
		return fmt.Sprintf("BitOrder(%d)", uint8(o))
	}
}

// ParseBitOrder parses "msb-first" or "lsb-first" (case insensitive, "msb" and "lsb" also work)
func ParseBitOrder(s string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "msb-first", "msb":
		return MSBFirst, nil
	case "lsb-first", "lsb":
		return LSBFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q, supported: [msb-first, lsb-first]", ErrInvalidBitOrder, s)
	}
}

// DataMode is the clock polarity (bit 1) and phase (bit 0)
type DataMode uint8

const (
	Mode0 DataMode = iota // CPOL=0 CPHA=0
	Mode1                 // CPOL=0 CPHA=1
	Mode2                 // CPOL=1 CPHA=0
	Mode3                 // CPOL=1 CPHA=1
)

// ChipSelect selects the CE line asserted by the peripheral during a transfer
type ChipSelect uint8

const (
	CS0 ChipSelect = iota
	CS1
	CS2 // CE0 and CE1 together
	CSNone
)

// Clock dividers of the 250MHz core clock (RPi1/2). Any even value works, 0 means 65536.
const (
	ClockDivider65536 uint16 = 0
	ClockDivider32768 uint16 = 32768
	ClockDivider16384 uint16 = 16384
	ClockDivider8192  uint16 = 8192
	ClockDivider4096  uint16 = 4096
	ClockDivider2048  uint16 = 2048
	ClockDivider1024  uint16 = 1024
	ClockDivider512   uint16 = 512
	ClockDivider256   uint16 = 256
	ClockDivider128   uint16 = 128
	ClockDivider64    uint16 = 64
	ClockDivider32    uint16 = 32
	ClockDivider16    uint16 = 16
	ClockDivider8     uint16 = 8
	ClockDivider4     uint16 = 4
	ClockDivider2     uint16 = 2
)

// fails if SPI does not satisfy the tinygo driver bus interface
var _ drivers.SPI = &SPI{}

// SPI drives the SPI0 peripheral with polled transfers.
// The hardware only shifts MSB first, LSB first is emulated in software.
type SPI struct {
	s        *Session
	active   bool
	bitOrder BitOrder
	timeout  time.Duration
}

func (spi *SPI) regs() (RegisterBlock, error) {
	if spi.s.blocks.GPIO == nil {
		return nil, ErrNotMapped
	}
	if spi.s.blocks.SPI0 == nil {
		return nil, ErrNoFullAccess
	}
	return spi.s.blocks.SPI0, nil
}

func (spi *SPI) activeRegs() (RegisterBlock, error) {
	regs, err := spi.regs()
	if err != nil {
		return nil, err
	}
	if !spi.active {
		return nil, ErrSPINotActive
	}
	return regs, nil
}

// Begin muxes the SPI0 pins to Alt0, resets the control register and clears both FIFOs.
// Without /dev/mem access it fails without touching any register.
func (spi *SPI) Begin() error {
	regs, err := spi.regs()
	if err != nil {
		return err
	}

	for _, pin := range spi0Pins {
		if err := spi.s.FunctionSelect(pin, Alt0); err != nil {
			return err
		}
	}

	regs.Write(regSPI0CS, 0)
	regs.WriteNB(regSPI0CS, spiCSClear)

	spi.active = true
	return nil
}

// End returns the SPI0 pins to inputs
func (spi *SPI) End() error {
	if _, err := spi.activeRegs(); err != nil {
		return err
	}

	for _, pin := range spi0Pins {
		if err := spi.s.FunctionSelect(pin, Input); err != nil {
			return err
		}
	}

	spi.active = false
	return nil
}

// Active reports whether Begin has been called without a matching End
func (spi *SPI) Active() bool {
	return spi.active
}

// SetBitOrder selects the bit order applied in software by Transfer
func (spi *SPI) SetBitOrder(order BitOrder) error {
	if order > MSBFirst {
		return fmt.Errorf("%w: %d", ErrInvalidBitOrder, order)
	}
	spi.bitOrder = order
	return nil
}

// BitOrder returns the configured bit order
func (spi *SPI) BitOrder() BitOrder {
	return spi.bitOrder
}

// SetClockDivider writes the clock divider. Odd values are rounded down by the hardware,
// 0 divides by 65536.
func (spi *SPI) SetClockDivider(divider uint16) error {
	regs, err := spi.regs()
	if err != nil {
		return err
	}
	regs.Write(regSPI0CLK, uint32(divider))
	return nil
}

// SetDataMode sets clock polarity and phase
func (spi *SPI) SetDataMode(mode DataMode) error {
	if mode > Mode3 {
		return fmt.Errorf("%w: %d", ErrInvalidDataMode, mode)
	}
	regs, err := spi.activeRegs()
	if err != nil {
		return err
	}
	regs.SetBits(regSPI0CS, uint32(mode)<<2, spiCSCPOL|spiCSCPHA)
	return nil
}

// SetChipSelect selects which CE line is asserted during transfers
func (spi *SPI) SetChipSelect(cs ChipSelect) error {
	if cs > CSNone {
		return fmt.Errorf("%w: %d", ErrInvalidChipSelect, cs)
	}
	regs, err := spi.activeRegs()
	if err != nil {
		return err
	}
	regs.SetBits(regSPI0CS, uint32(cs), spiCSCS)
	return nil
}

// SetTimeout bounds how long Transfer waits for the peripheral. Zero waits forever.
func (spi *SPI) SetTimeout(d time.Duration) {
	spi.timeout = d
}

// Transfer clocks one byte out on MOSI and returns the byte clocked in on MISO.
//
// Polled transfer as per section 10.6.1 of the BCM2835 ARM peripherals datasheet.
// Between the FIFO write and the final TA update no other peripheral may be accessed.
func (spi *SPI) Transfer(b byte) (byte, error) {
	regs, err := spi.activeRegs()
	if err != nil {
		return 0, err
	}

	var deadline time.Time
	if spi.timeout > 0 {
		deadline = spi.s.clock.Now().Add(spi.timeout)
	}

	regs.SetBits(regSPI0CS, spiCSClear, spiCSClear)
	regs.SetBits(regSPI0CS, spiCSTA, spiCSTA)

	if err := spi.poll(regs.Read, spiCSTXD, deadline); err != nil {
		regs.SetBits(regSPI0CS, 0, spiCSTA)
		return 0, err
	}

	regs.WriteNB(regSPI0FIFO, uint32(spi.correctOrder(b)))

	if err := spi.poll(regs.ReadNB, spiCSDone, deadline); err != nil {
		regs.SetBits(regSPI0CS, 0, spiCSTA)
		return 0, err
	}

	ret := spi.correctOrder(byte(regs.ReadNB(regSPI0FIFO)))

	// clearing TA goes through the barrier path and ends the unfenced sequence
	regs.SetBits(regSPI0CS, 0, spiCSTA)

	spiTransferCount.Inc()
	return ret, nil
}

// poll spins until bit is set in the CS register or the deadline expires
func (spi *SPI) poll(read func(uint32) uint32, bit uint32, deadline time.Time) error {
	for i := 0; read(regSPI0CS)&bit == 0; i++ {
		if i%spiPollBatch == 0 && util.Expired(spi.s.clock, deadline) {
			spiTransferTimeoutCount.Inc()
			return fmt.Errorf("%w after %s", ErrTransferTimeout, spi.timeout)
		}
	}
	return nil
}

// Tx exchanges len(w) bytes one at a time. A nil w sends zeros, a nil r discards the
// received bytes.
func (spi *SPI) Tx(w, r []byte) error {
	n := len(w)
	switch {
	case w == nil:
		n = len(r)
	case r != nil && len(r) != len(w):
		return fmt.Errorf("spi tx: write and read buffers differ in length (%d != %d)", len(w), len(r))
	}

	for i := 0; i < n; i++ {
		var out byte
		if w != nil {
			out = w[i]
		}
		in, err := spi.Transfer(out)
		if err != nil {
			return fmt.Errorf("spi tx: byte %d: %w", i, err)
		}
		if r != nil {
			r[i] = in
		}
	}
	return nil
}

func (spi *SPI) correctOrder(b byte) byte {
	if spi.bitOrder == LSBFirst {
		return ReverseBits(b)
	}
	return b
}

// ReverseBits mirrors the bit order of b
func ReverseBits(b byte) byte {
	return reverseTable[b]
}

var reverseTable = func() (table [256]byte) {
	for i := range table {
		var r byte
		for bit := 0; bit < 8; bit++ {
			if i&(1<<bit) != 0 {
				r |= 0x80 >> bit
			}
		}
		table[i] = r
	}
	return table
}()
