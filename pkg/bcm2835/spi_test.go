package bcm2835_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/util"
)

const (
	spiCS   = 0x00
	spiFIFO = 0x04
	spiCLK  = 0x08

	csTXD   = 1 << 18
	csDone  = 1 << 16
	csTA    = 1 << 7
	csClear = 0x30
)

// beginSPI starts SPI0 on a fake block and marks the peripheral as ready, so that
// transfers complete immediately with the written byte looped back through the FIFO.
func beginSPI(t *testing.T, opts bcm2835.Opts) (*bcm2835.SPI, bcm2835.Blocks) {
	t.Helper()
	blocks := bcm2835.NewBlocks()
	sess := bcm2835.FromBlocks(blocks, opts)
	t.Cleanup(func() { _ = sess.Close() })

	spi := sess.SPI0()
	require.NoError(t, spi.Begin())
	blocks.SPI0.Write(spiCS, csTXD|csDone)
	return spi, blocks
}

func TestSPIBeginWithoutFullAccess(t *testing.T) {
	t.Parallel()

	blocks := bcm2835.Blocks{GPIO: make(bcm2835.RegisterBlock, 0x1000/4)}
	sess := bcm2835.FromBlocks(blocks, bcm2835.Opts{})
	assert.False(t, sess.FullAccess())

	spi := sess.SPI0()
	assert.ErrorIs(t, spi.Begin(), bcm2835.ErrNoFullAccess)
	assert.False(t, spi.Active())
	assert.ErrorIs(t, spi.SetClockDivider(bcm2835.ClockDivider64), bcm2835.ErrNoFullAccess)

	for _, reg := range blocks.GPIO {
		assert.Zero(t, reg, "GPIO registers must stay untouched")
	}
}

func TestSPIBegin(t *testing.T) {
	t.Parallel()

	blocks := bcm2835.NewBlocks()
	sess := bcm2835.FromBlocks(blocks, bcm2835.Opts{})
	blocks.SPI0.Write(spiCS, 0xffffffff)

	spi := sess.SPI0()
	require.NoError(t, spi.Begin())
	assert.True(t, spi.Active())
	assert.Equal(t, uint32(csClear), blocks.SPI0.Read(spiCS))

	// pins 7 to 9 in GPFSEL0, 10 and 11 in GPFSEL1, all Alt0
	assert.Equal(t, uint32(0b100<<21|0b100<<24|0b100<<27), blocks.GPIO.Read(0x00))
	assert.Equal(t, uint32(0b100<<0|0b100<<3), blocks.GPIO.Read(0x04))

	require.NoError(t, spi.End())
	assert.False(t, spi.Active())
	assert.Equal(t, uint32(0), blocks.GPIO.Read(0x00))
	assert.Equal(t, uint32(0), blocks.GPIO.Read(0x04))

	assert.ErrorIs(t, spi.End(), bcm2835.ErrSPINotActive)
}

func TestSPITransfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		order    bcm2835.BitOrder
		in       byte
		wantFIFO uint32
	}{
		{"msb first", bcm2835.MSBFirst, 0x42, 0x42},
		{"lsb first", bcm2835.LSBFirst, 0x01, 0x80},
		{"lsb first asymmetric", bcm2835.LSBFirst, 0x0c, 0x30},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spi, blocks := beginSPI(t, bcm2835.Opts{})
			require.NoError(t, spi.SetBitOrder(tt.order))

			got, err := spi.Transfer(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFIFO, blocks.SPI0.Read(spiFIFO))
			// the looped back byte is corrected again on the way in
			assert.Equal(t, tt.in, got)

			cs := blocks.SPI0.Read(spiCS)
			assert.Zero(t, cs&csTA, "TA must be cleared after the transfer")
			assert.Equal(t, uint32(csClear), cs&csClear)
		})
	}
}

func TestSPIPreconditions(t *testing.T) {
	t.Parallel()

	sess := bcm2835.FromBlocks(bcm2835.NewBlocks(), bcm2835.Opts{})
	spi := sess.SPI0()

	_, err := spi.Transfer(0x00)
	assert.ErrorIs(t, err, bcm2835.ErrSPINotActive)
	assert.ErrorIs(t, spi.SetDataMode(bcm2835.Mode1), bcm2835.ErrSPINotActive)
	assert.ErrorIs(t, spi.SetChipSelect(bcm2835.CS1), bcm2835.ErrSPINotActive)

	assert.ErrorIs(t, spi.SetBitOrder(bcm2835.BitOrder(2)), bcm2835.ErrInvalidBitOrder)
	assert.ErrorIs(t, spi.SetDataMode(bcm2835.DataMode(4)), bcm2835.ErrInvalidDataMode)
	assert.ErrorIs(t, spi.SetChipSelect(bcm2835.ChipSelect(4)), bcm2835.ErrInvalidChipSelect)

	require.NoError(t, sess.Close())
	_, err = spi.Transfer(0x00)
	assert.ErrorIs(t, err, bcm2835.ErrNotMapped)
}

func TestSPIAfterClose(t *testing.T) {
	t.Parallel()

	blocks := bcm2835.NewBlocks()
	sess := bcm2835.FromBlocks(blocks, bcm2835.Opts{})
	spi := sess.SPI0()
	require.NoError(t, spi.Begin())
	require.NoError(t, sess.Close())

	assert.False(t, spi.Active())
	_, err := spi.Transfer(0x01)
	assert.ErrorIs(t, err, bcm2835.ErrNotMapped)
	assert.ErrorIs(t, spi.SetClockDivider(bcm2835.ClockDivider8), bcm2835.ErrNotMapped)
	assert.ErrorIs(t, spi.Begin(), bcm2835.ErrNotMapped)
	assert.ErrorIs(t, spi.End(), bcm2835.ErrNotMapped)
}

func TestSPIClockDividerBeforeBegin(t *testing.T) {
	t.Parallel()

	blocks := bcm2835.NewBlocks()
	spi := bcm2835.FromBlocks(blocks, bcm2835.Opts{}).SPI0()

	require.NoError(t, spi.SetClockDivider(bcm2835.ClockDivider256))
	assert.Equal(t, uint32(256), blocks.SPI0.Read(spiCLK))
	assert.False(t, spi.Active())
}

func TestSPISetDataMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode bcm2835.DataMode
		want uint32
	}{
		{bcm2835.Mode0, 0},
		{bcm2835.Mode1, 1 << 2},
		{bcm2835.Mode2, 1 << 3},
		{bcm2835.Mode3, 1<<3 | 1<<2},
	}
	for _, tt := range tests {
		spi, blocks := beginSPI(t, bcm2835.Opts{})
		require.NoError(t, spi.SetDataMode(bcm2835.Mode3))
		require.NoError(t, spi.SetDataMode(tt.mode))

		cs := blocks.SPI0.Read(spiCS)
		assert.Equal(t, tt.want, cs&0b1100, "mode %d", tt.mode)
		assert.Equal(t, uint32(csTXD|csDone), cs&^0b1100, "mode %d touched other bits", tt.mode)
	}
}

func TestSPISetChipSelect(t *testing.T) {
	t.Parallel()

	spi, blocks := beginSPI(t, bcm2835.Opts{})

	require.NoError(t, spi.SetChipSelect(bcm2835.CSNone))
	assert.Equal(t, uint32(0b11), blocks.SPI0.Read(spiCS)&0b11)
	require.NoError(t, spi.SetChipSelect(bcm2835.CS1))
	assert.Equal(t, uint32(0b01), blocks.SPI0.Read(spiCS)&0b11)
}

func TestSPITransferTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cs       uint32
		wantFIFO uint32
	}{
		// TXD never raises, nothing may be written to the FIFO
		{"tx fifo full", 0, 0},
		// the byte is queued but the transfer never completes
		{"transfer not done", csTXD, 0xaa},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			clock := &util.MockClock{}
			clock.On("Now").Return(t0).Once()
			clock.On("Now").Return(t0.Add(time.Second))

			blocks := bcm2835.NewBlocks()
			sess := bcm2835.FromBlocks(blocks, bcm2835.Opts{Clock: clock, TransferTimeout: 10 * time.Millisecond})
			t.Cleanup(func() { _ = sess.Close() })
			spi := sess.SPI0()
			require.NoError(t, spi.Begin())
			blocks.SPI0.Write(spiCS, tt.cs)

			_, err := spi.Transfer(0xaa)
			assert.ErrorIs(t, err, bcm2835.ErrTransferTimeout)
			assert.Equal(t, tt.cs|csClear, blocks.SPI0.Read(spiCS), "TA must be cleared")
			assert.Equal(t, tt.wantFIFO, blocks.SPI0.Read(spiFIFO))
			clock.AssertExpectations(t)
		})
	}
}

func TestSPITx(t *testing.T) {
	t.Parallel()

	spi, blocks := beginSPI(t, bcm2835.Opts{})

	r := make([]byte, 3)
	require.NoError(t, spi.Tx([]byte{0x01, 0x02, 0x03}, r))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, r)
	assert.Equal(t, uint32(0x03), blocks.SPI0.Read(spiFIFO))

	require.NoError(t, spi.Tx(nil, r))
	assert.Equal(t, []byte{0, 0, 0}, r)

	require.NoError(t, spi.Tx([]byte{0x55}, nil))
	assert.Equal(t, uint32(0x55), blocks.SPI0.Read(spiFIFO))

	assert.Error(t, spi.Tx([]byte{0x01}, make([]byte, 2)))
}

func TestReverseBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte(0x00), bcm2835.ReverseBits(0x00))
	assert.Equal(t, byte(0xff), bcm2835.ReverseBits(0xff))
	assert.Equal(t, byte(0x80), bcm2835.ReverseBits(0x01))
	assert.Equal(t, byte(0x01), bcm2835.ReverseBits(0x80))
	assert.Equal(t, byte(0x30), bcm2835.ReverseBits(0x0c))

	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), bcm2835.ReverseBits(bcm2835.ReverseBits(byte(i))))
	}
}

func TestBitOrderString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "msb-first", bcm2835.MSBFirst.String())
	assert.Equal(t, "lsb-first", bcm2835.LSBFirst.String())

	for _, order := range []bcm2835.BitOrder{bcm2835.LSBFirst, bcm2835.MSBFirst} {
		got, err := bcm2835.ParseBitOrder(order.String())
		assert.NoError(t, err)
		assert.Equal(t, order, got)
	}
	got, err := bcm2835.ParseBitOrder("LSB")
	assert.NoError(t, err)
	assert.Equal(t, bcm2835.LSBFirst, got)

	_, err = bcm2835.ParseBitOrder("middle-out")
	assert.ErrorIs(t, err, bcm2835.ErrInvalidBitOrder)
}
