package bcm2835

import (
	"encoding/binary"
	"io"

	"github.com/spf13/afero"
)

const (
	// DeviceTreeRangesPath exposes the SoC "ranges" property on RPi2 and later
	DeviceTreeRangesPath = "/proc/device-tree/soc/ranges"

	RPi1PeripheralBase = 0x20000000
	RPi1PeripheralSize = 0x01000000
	RPi2PeripheralBase = 0x3F000000 // RPi 2 and 3
	RPi4PeripheralBase = 0xFE000000
	RPi4PeripheralSize = 0x01800000

	rangesSentinel = 0x7E000000 // first cell of every known ranges record
	rangesLen      = 16
)

// Board identifies the peripheral layout generation
type Board uint8

const (
	BoardRPi1 Board = iota
	BoardRPi2
	BoardRPi4
)

func (b Board) String() string {
	switch b {
	case BoardRPi1:
		return "rpi1"
	case BoardRPi2:
		return "rpi2"
	case BoardRPi4:
		return "rpi4"
	default:
		return "unknown"
	}
}

// PeripheralRange is the physical location of the peripheral block
type PeripheralRange struct {
	Base  uint32
	Size  uint32
	Board Board
}

// DefaultPeripheralRange is used whenever the device tree cannot be read; it matches
// the BCM2835 on the original Raspberry Pi, where the ranges file does not exist.
var DefaultPeripheralRange = PeripheralRange{
	Base:  RPi1PeripheralBase,
	Size:  RPi1PeripheralSize,
	Board: BoardRPi1,
}

// ParseRanges decodes a device-tree soc/ranges record.
//
// The record holds big endian cells: [bus address][cpu address][size] on RPi1-3 and
// [bus address][0][cpu address][size] on RPi4. The record is only accepted when the bus
// address matches the known peripheral bus address and the cpu address is one of the
// known peripheral bases.
func ParseRanges(buf []byte) (PeripheralRange, bool) {
	if len(buf) < 8 {
		return PeripheralRange{}, false
	}

	cell := func(off int) (uint32, bool) {
		if len(buf) < off+4 {
			return 0, false
		}
		return binary.BigEndian.Uint32(buf[off : off+4]), true
	}

	base, _ := cell(4)
	sizeOff := 8
	if base == 0 {
		// looks like an RPi4, everything moved one cell further
		var ok bool
		if base, ok = cell(8); !ok {
			return PeripheralRange{}, false
		}
		sizeOff = 12
	}
	size, ok := cell(sizeOff)
	if !ok {
		return PeripheralRange{}, false
	}

	if sentinel, _ := cell(0); sentinel != rangesSentinel {
		return PeripheralRange{}, false
	}

	var board Board
	switch base {
	case RPi1PeripheralBase:
		board = BoardRPi1
	case RPi2PeripheralBase:
		board = BoardRPi2
	case RPi4PeripheralBase:
		board = BoardRPi4
	default:
		return PeripheralRange{}, false
	}

	return PeripheralRange{Base: base, Size: size, Board: board}, true
}

// LocatePeripherals reads the ranges record at path and returns the peripheral range it
// describes. Any failure yields DefaultPeripheralRange, the file is absent on older boards.
func LocatePeripherals(fs afero.Fs, path string) PeripheralRange {
	f, err := fs.Open(path)
	if err != nil {
		return DefaultPeripheralRange
	}
	defer f.Close()

	buf := make([]byte, rangesLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return DefaultPeripheralRange
	}

	rng, ok := ParseRanges(buf[:n])
	if !ok {
		return DefaultPeripheralRange
	}
	return rng
}
