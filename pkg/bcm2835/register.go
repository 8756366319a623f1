package bcm2835

import "sync/atomic"

// Byte offsets of the peripheral register blocks relative to the peripheral base
const (
	offsetST    = 0x003000
	offsetPads  = 0x100000
	offsetClock = 0x101000
	offsetGPIO  = 0x200000
	offsetSPI0  = 0x204000
	offsetBSC0  = 0x205000
	offsetPWM   = 0x20C000
	offsetAux   = 0x215000
	offsetSPI1  = 0x215080
	offsetBSC1  = 0x804000

	blockSize     = 0x1000
	spi1BlockSize = 0x40

	registerWidth = 4
)

// RegisterBlock is a view over the 32 bit registers of one peripheral.
// All accessors take byte offsets as listed in the BCM2835 ARM peripherals datasheet.
//
// A nil RegisterBlock is the "not mapped" state.
type RegisterBlock []uint32

// Read reads a register with a full memory barrier before and after the access.
func (b RegisterBlock) Read(offset uint32) uint32 {
	// atomics are sequentially consistent, on ARM they are fenced by DMB on both sides
	return atomic.LoadUint32(&b[offset/registerWidth])
}

// Write writes a register with a full memory barrier before and after the access.
func (b RegisterBlock) Write(offset uint32, value uint32) {
	atomic.StoreUint32(&b[offset/registerWidth], value)
}

// ReadNB reads a register without barriers. Only valid when the previous access went to
// the same peripheral; the sequence has to end with a barrier access.
func (b RegisterBlock) ReadNB(offset uint32) uint32 {
	return loadNB(&b[offset/registerWidth])
}

// WriteNB writes a register without barriers, see ReadNB.
func (b RegisterBlock) WriteNB(offset uint32, value uint32) {
	storeNB(&b[offset/registerWidth], value)
}

// SetBits replaces the bits selected by mask with the matching bits of value.
// Not atomic: a concurrent writer to the same register between read and write is lost.
func (b RegisterBlock) SetBits(offset uint32, value uint32, mask uint32) {
	b.Write(offset, MaskBits(b.Read(offset), value, mask))
}

// MaskBits returns current with the bits in mask replaced by the ones from value.
func MaskBits(current, value, mask uint32) uint32 {
	return (current &^ mask) | (value & mask)
}

// loadNB and storeNB must stay out of line, otherwise the compiler is free to merge or
// hoist the accesses out of polling loops.
//
//go:noinline
func loadNB(p *uint32) uint32 {
	return *p
}

//go:noinline
func storeNB(p *uint32, v uint32) {
	*p = v
}

// Blocks holds the views of every peripheral inside the mapped block. Only GPIO and SPI0
// are driven by this package. Views are invalid once the owning Session is closed.
type Blocks struct {
	GPIO  RegisterBlock
	PWM   RegisterBlock
	Clock RegisterBlock
	Pads  RegisterBlock
	SPI0  RegisterBlock
	BSC0  RegisterBlock
	BSC1  RegisterBlock
	ST    RegisterBlock
	Aux   RegisterBlock
	SPI1  RegisterBlock
}

// fullBlocks derives all peripheral views from the complete peripheral block.
func fullBlocks(words []uint32) Blocks {
	view := func(offset, size int) RegisterBlock {
		start, end := offset/registerWidth, (offset+size)/registerWidth
		if end > len(words) {
			return nil
		}
		return RegisterBlock(words[start:end:end])
	}

	return Blocks{
		GPIO:  view(offsetGPIO, blockSize),
		PWM:   view(offsetPWM, blockSize),
		Clock: view(offsetClock, blockSize),
		Pads:  view(offsetPads, blockSize),
		SPI0:  view(offsetSPI0, blockSize),
		BSC0:  view(offsetBSC0, blockSize),
		BSC1:  view(offsetBSC1, blockSize),
		ST:    view(offsetST, blockSize),
		Aux:   view(offsetAux, blockSize),
		SPI1:  view(offsetSPI1, spi1BlockSize),
	}
}

// NewBlocks allocates heap backed GPIO and SPI0 views. Useful as a fake register
// backing store for FromBlocks.
func NewBlocks() Blocks {
	return Blocks{
		GPIO: make(RegisterBlock, blockSize/registerWidth),
		SPI0: make(RegisterBlock, blockSize/registerWidth),
	}
}
