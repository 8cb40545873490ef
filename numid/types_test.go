package numid_test

import (
	"testing"

	"github.com/covarray/covarray/numid"
	"github.com/stretchr/testify/require"
)

func TestDontCare(t *testing.T) {
	require.Equal(t, uint8(0xFF), numid.DontCare[uint8]())
	require.Equal(t, uint16(0xFFFF), numid.DontCare[uint16]())
	require.True(t, numid.IsDontCare(numid.DontCare[uint32]()))
	require.False(t, numid.IsDontCare(uint32(0)))
}

func TestBit(t *testing.T) {
	require.Equal(t, uint32(1), numid.Bit[uint32](0))
	require.Equal(t, uint32(8), numid.Bit[uint32](3))
}

func TestMaskLowHigh(t *testing.T) {
	require.Equal(t, uint8(0x07), numid.MaskLow[uint8](3))
	require.Equal(t, uint8(0xFF), numid.MaskLow[uint8](8))
	require.Equal(t, uint8(0), numid.MaskLow[uint8](0))

	require.Equal(t, uint8(0xE0), numid.MaskHigh[uint8](3))
	require.Equal(t, uint8(0xFF), numid.MaskHigh[uint8](8))
}

func TestCountOnes(t *testing.T) {
	require.Equal(t, 0, numid.CountOnes(uint32(0)))
	require.Equal(t, 3, numid.CountOnes(uint32(0b1011)))
	require.Equal(t, 64, numid.CountOnes(^uint64(0)))
}

func TestUsizeRoundTrip(t *testing.T) {
	require.Equal(t, 42, numid.AsUsize(numid.FromUsize[uint16](42)))
}
