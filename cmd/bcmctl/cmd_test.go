package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePin(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"17", 17, false},
		{"GPIO17", 17, false},
		{"J8p11", 17, false},
		{"pin", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePin(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseHex(t *testing.T) {
	for _, args := range [][]string{{"0c01"}, {"0c", "01"}, {"0x0c", "0x01"}, {"0X0C", "01"}, {"0c:01"}, {"0x0c:0x01"}} {
		data, err := parseHex(args)
		require.NoError(t, err, args)
		assert.Equal(t, []byte{0x0c, 0x01}, data, args)
	}

	for _, args := range [][]string{{"0c0"}, {"0c0x01"}, {"0", "x0c"}} {
		_, err := parseHex(args)
		assert.Error(t, err, args)
	}
}

func TestConfigRequestOnlyChangedFlags(t *testing.T) {
	require.NoError(t, cmdSpiConfig.ParseFlags([]string{"--mode", "3", "--transfer-timeout", "20ms"}))
	req := configRequest(cmdSpiConfig)

	require.NotNil(t, req.DataMode)
	assert.Equal(t, uint32(3), *req.DataMode)
	require.NotNil(t, req.Timeout)
	assert.Equal(t, 20*time.Millisecond, req.Timeout.AsDuration())
	assert.Nil(t, req.BitOrder)
	assert.Nil(t, req.ClockDivider)
	assert.Nil(t, req.ChipSelect)
}
