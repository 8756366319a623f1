package bcm2835_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
)

func TestSessionCloseIdempotent(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	spi := sess.SPI0()
	require.NoError(t, spi.Begin())
	assert.True(t, sess.Mapped())
	assert.True(t, sess.FullAccess())

	require.NoError(t, sess.Close())
	assert.False(t, sess.Mapped())
	assert.False(t, sess.FullAccess())
	assert.False(t, spi.Active())
	assert.Equal(t, bcm2835.Blocks{}, sess.Blocks())

	require.NoError(t, sess.Close())
}

func TestSessionCloseUnopened(t *testing.T) {
	t.Parallel()

	var nilSession *bcm2835.Session
	assert.NoError(t, nilSession.Close())

	sess := &bcm2835.Session{}
	assert.NoError(t, sess.Close())
	assert.False(t, sess.Mapped())
	assert.False(t, sess.FullAccess())
	assert.Equal(t, bcm2835.Blocks{}, sess.Blocks())

	assert.ErrorIs(t, sess.Set(4), bcm2835.ErrNotMapped)
	assert.ErrorIs(t, sess.SPI0().Begin(), bcm2835.ErrNotMapped)
}

func TestFromBlocksGPIOOnly(t *testing.T) {
	t.Parallel()

	sess := bcm2835.FromBlocks(bcm2835.Blocks{GPIO: make(bcm2835.RegisterBlock, 4)}, bcm2835.Opts{})
	assert.True(t, sess.Mapped())
	assert.False(t, sess.FullAccess())
	assert.Equal(t, bcm2835.DefaultPeripheralRange, sess.Range())
}

func TestOpenInvalidAccess(t *testing.T) {
	t.Parallel()

	sess, err := bcm2835.Open(context.Background(), bcm2835.Opts{
		Access: "root",
		Fs:     afero.NewMemMapFs(),
	})
	assert.Error(t, err)
	assert.Nil(t, sess)
}
