//go:build linux

package bcm2835_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
)

// a regular file stands in for /dev/gpiomem, both map the GPIO registers at offset 0
func TestOpenGPIOMem(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gpiomem")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o600))

	sess, err := bcm2835.Open(context.Background(), bcm2835.Opts{
		GPIOMemPath: path,
		Access:      bcm2835.AccessGPIO,
		Fs:          afero.NewMemMapFs(),
	})
	require.NoError(t, err)

	assert.True(t, sess.Mapped())
	assert.False(t, sess.FullAccess())
	assert.Nil(t, sess.Blocks().SPI0)
	assert.Equal(t, bcm2835.DefaultPeripheralRange, sess.Range())
	assert.ErrorIs(t, sess.SPI0().Begin(), bcm2835.ErrNoFullAccess)

	require.NoError(t, sess.FunctionSelect(4, bcm2835.Output))
	require.NoError(t, sess.Set(4))
	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())

	// MAP_SHARED writes land in the backing file
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x10, 0x00, 0x00}, content[0:4])
	assert.Equal(t, []byte{0x10, 0x00, 0x00, 0x00}, content[0x1c:0x20])
}

func TestOpenMissingDevice(t *testing.T) {
	t.Parallel()

	sess, err := bcm2835.Open(context.Background(), bcm2835.Opts{
		MemPath: filepath.Join(t.TempDir(), "mem"),
		Access:  bcm2835.AccessFull,
		Fs:      afero.NewMemMapFs(),
	})
	assert.Error(t, err)
	assert.Nil(t, sess)
}
