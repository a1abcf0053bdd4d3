package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.True(t, order != nil)
	require.Equal(t, !IsNativeBigEndian(), IsNativeLittleEndian())
}

func TestUint16RoundTrip(t *testing.T) {
	values := []uint16{0, 1, 0x0100, 0x00FF, math.MaxUint16}
	for _, v := range values {
		require.Equal(t, v, FromBEUint16(ToBEUint16(v)))
	}
}

func TestUint32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x01020304, math.MaxUint32}
	for _, v := range values {
		require.Equal(t, v, FromBEUint32(ToBEUint32(v)))
	}
}

func TestUint64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x0102030405060708, math.MaxUint64}
	for _, v := range values {
		require.Equal(t, v, FromBEUint64(ToBEUint64(v)))
	}
}

func TestPutAndGetUint32(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0x07D10000)
	require.Equal(t, []byte{0x07, 0xD1, 0x00, 0x00}, buf)
	require.Equal(t, uint32(0x07D10000), Uint32(buf))
}

func TestPutAndGetUint64(t *testing.T) {
	buf := make([]byte, 8)
	PutUint64(buf, 1)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, buf)
	require.Equal(t, uint64(1), Uint64(buf))
}

func TestUint8Identity(t *testing.T) {
	buf := make([]byte, 1)
	PutUint8(buf, 0xAB)
	require.Equal(t, uint8(0xAB), Uint8(buf))
}
