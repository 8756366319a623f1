package bcm2835

import (
	"fmt"
	"strings"
)

// GPIO register offsets
const (
	regGPFSEL0 = 0x00
	regGPSET0  = 0x1c
	regGPCLR0  = 0x28
	regGPLEV0  = 0x34

	// PinCount is the number of GPIO lines on the BCM2835
	PinCount = 54

	fselMask  = 0b111
	fselWidth = 3
)

// Pin is a GPIO line in the SoC numbering, not the header pin number
type Pin uint8

// Function is the 3 bit function select code of a pin
type Function uint8

const (
	Input  Function = 0b000
	Output Function = 0b001
	Alt0   Function = 0b100
	Alt1   Function = 0b101
	Alt2   Function = 0b110
	Alt3   Function = 0b111
	Alt4   Function = 0b011
	Alt5   Function = 0b010
)

var functionNames = map[Function]string{
	Input:  "in",
	Output: "out",
	Alt0:   "alt0",
	Alt1:   "alt1",
	Alt2:   "alt2",
	Alt3:   "alt3",
	Alt4:   "alt4",
	Alt5:   "alt5",
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Function(%d)", uint8(f))
}

// ParseFunction parses "in", "out" or "alt0".."alt5" (case insensitive)
func ParseFunction(s string) (Function, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	}
	for fn, name := range functionNames {
		if name == s {
			return fn, nil
		}
	}
	return 0, fmt.Errorf("%w: %q, supported: [in, out, alt0..alt5]", ErrInvalidFunction, s)
}

func (s *Session) gpio(pin Pin) (RegisterBlock, error) {
	if s.blocks.GPIO == nil {
		return nil, ErrNotMapped
	}
	if pin >= PinCount {
		return nil, fmt.Errorf("%w: %d, supported: [0, %d]", ErrInvalidPin, pin, PinCount-1)
	}
	return s.blocks.GPIO, nil
}

// FunctionSelect sets the function of pin. Every GPFSEL register covers 10 pins with
// 3 bits each; only the field of pin is modified.
func (s *Session) FunctionSelect(pin Pin, fn Function) error {
	gpio, err := s.gpio(pin)
	if err != nil {
		return err
	}
	if fn > fselMask {
		return fmt.Errorf("%w: %d", ErrInvalidFunction, fn)
	}

	offset := regGPFSEL0 + uint32(pin/10)*registerWidth
	shift := uint32(pin%10) * fselWidth
	gpio.SetBits(offset, uint32(fn)<<shift, fselMask<<shift)

	gpioOperationCount.WithLabelValues("fsel").Inc()
	return nil
}

// Set drives an output pin high
func (s *Session) Set(pin Pin) error {
	return s.writeBit(pin, regGPSET0, "set")
}

// Clear drives an output pin low
func (s *Session) Clear(pin Pin) error {
	return s.writeBit(pin, regGPCLR0, "clear")
}

// Write sets or clears pin
func (s *Session) Write(pin Pin, on bool) error {
	if on {
		return s.Set(pin)
	}
	return s.Clear(pin)
}

// writeBit writes a single bit to a write-1-to-act register pair (pins 0-31, 32-53).
// Zero bits have no effect, so no read-modify-write is needed.
func (s *Session) writeBit(pin Pin, base uint32, op string) error {
	gpio, err := s.gpio(pin)
	if err != nil {
		return err
	}
	offset := base + uint32(pin/32)*registerWidth
	gpio.Write(offset, 1<<(pin%32))

	gpioOperationCount.WithLabelValues(op).Inc()
	return nil
}

// Level reads the current level of pin from the GPLEV registers
func (s *Session) Level(pin Pin) (bool, error) {
	gpio, err := s.gpio(pin)
	if err != nil {
		return false, err
	}
	offset := regGPLEV0 + uint32(pin/32)*registerWidth
	return gpio.Read(offset)&(1<<(pin%32)) != 0, nil
}
