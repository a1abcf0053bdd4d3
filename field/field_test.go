package field

import (
	"math"
	"testing"

	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		f := NewInt[int32](30)
		buf := make([]byte, f.WireSize())
		require.NoError(t, f.Encode(buf))
		require.Equal(t, []byte{0x00, 0x00, 0x00, 0x1E}, buf)

		var g Int[int32]
		require.NoError(t, g.Decode(buf))
		require.Equal(t, int32(30), g.Value())
	})

	t.Run("negative int16", func(t *testing.T) {
		f := NewInt[int16](-5)
		buf := make([]byte, f.WireSize())
		require.NoError(t, f.Encode(buf))

		var g Int[int16]
		require.NoError(t, g.Decode(buf))
		require.Equal(t, int16(-5), g.Value())
	})

	t.Run("uint64", func(t *testing.T) {
		f := NewInt[uint64](1)
		buf := make([]byte, f.WireSize())
		require.NoError(t, f.Encode(buf))
		require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, buf)
	})

	t.Run("truncated decode", func(t *testing.T) {
		var g Int[uint32]
		require.ErrorIs(t, g.Decode([]byte{1, 2}), errs.ErrTruncated)
	})

	t.Run("buffer too small encode", func(t *testing.T) {
		f := NewInt[uint32](1)
		require.ErrorIs(t, f.Encode(make([]byte, 2)), errs.ErrBufferTooSmall)
	})
}

func TestNumberRoundTrip(t *testing.T) {
	price := NewPrice()
	require.NoError(t, price.SetF64(123.4567))
	require.Equal(t, int64(1234567), price.Scaled())

	buf := make([]byte, price.WireSize())
	require.NoError(t, price.Encode(buf))

	decoded := NewNumber(13, 4)
	require.NoError(t, decoded.Decode(buf))
	require.InDelta(t, 123.4567, decoded.AsF64(), 1e-9)
}

func TestNumberRoundHalfAwayFromZero(t *testing.T) {
	// 1.125 * 10^2 == 112.5 exactly in binary floating point, so this
	// exercises the half-way rounding rule deterministically.
	qty := NewQty()
	require.NoError(t, qty.SetF64(1.125))
	require.Equal(t, int64(113), qty.Scaled())

	require.NoError(t, qty.SetF64(-1.125))
	require.Equal(t, int64(-113), qty.Scaled())
}

func TestNumberRejectsNonFinite(t *testing.T) {
	n := NewPrice()
	require.ErrorIs(t, n.SetF64(math.NaN()), errs.ErrInvalidNumber)
	require.ErrorIs(t, n.SetF64(math.Inf(1)), errs.ErrInvalidNumber)
	require.ErrorIs(t, n.SetF64(math.Inf(-1)), errs.ErrInvalidNumber)
}

func TestBoolean(t *testing.T) {
	t.Run("true round-trips", func(t *testing.T) {
		b := NewBoolean(true)
		buf := make([]byte, b.WireSize())
		require.NoError(t, b.Encode(buf))
		require.Equal(t, []byte{0x00, 0x01}, buf)

		var decoded Boolean
		require.NoError(t, decoded.Decode(buf))
		require.True(t, decoded.Value())
	})

	t.Run("non-canonical value decodes false", func(t *testing.T) {
		var decoded Boolean
		require.NoError(t, decoded.Decode([]byte{0x00, 0x05}))
		require.False(t, decoded.Value())
		require.Equal(t, uint16(5), decoded.RawValue())
	})
}

func TestLocalTimeStampComponents(t *testing.T) {
	ts := NewLocalTimeStamp(20240115093045123)
	require.Equal(t, uint32(2024), ts.Year())
	require.Equal(t, uint32(1), ts.Month())
	require.Equal(t, uint32(15), ts.Day())
	require.Equal(t, uint32(9), ts.Hour())
	require.Equal(t, uint32(30), ts.Minute())
	require.Equal(t, uint32(45), ts.Sec())
	require.Equal(t, uint32(123), ts.Msec())
}

func TestLocalMktDateComponents(t *testing.T) {
	d := NewLocalMktDate(20240115)
	require.Equal(t, uint32(2024), d.Year())
	require.Equal(t, uint32(1), d.Month())
	require.Equal(t, uint32(15), d.Day())
}

func TestStringPadding(t *testing.T) {
	f, err := NewString(20, "ABC")
	require.NoError(t, err)

	buf := make([]byte, f.WireSize())
	require.NoError(t, f.Encode(buf))
	require.Len(t, buf, 20)
	require.Equal(t, "ABC", string(buf[:3]))
	for _, b := range buf[3:] {
		require.Equal(t, byte(' '), b)
	}
}

func TestStringTooLong(t *testing.T) {
	_, err := NewString(3, "ABCD")
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestStringDecodeTrim(t *testing.T) {
	f := NewFixedString(8)
	require.NoError(t, f.Decode([]byte("AB      ")))
	require.Equal(t, "AB      ", f.Value())
	require.Equal(t, "AB", f.TrimmedValue())
}
