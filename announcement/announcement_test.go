package announcement

import (
	"testing"

	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/stretchr/testify/require"
)

func TestNoOpRoundTrip(t *testing.T) {
	payload := []byte("plaintext announcement body")

	compressed, err := Compress(FormatNone, payload)
	require.NoError(t, err)

	out, err := Decompress(FormatNone, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestS2RoundTrip(t *testing.T) {
	payload := []byte("s2 announcement body, repeated repeated repeated")

	compressed, err := Compress(FormatS2, payload)
	require.NoError(t, err)

	out, err := Decompress(FormatS2, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestLZ4RoundTrip(t *testing.T) {
	payload := []byte("lz4 announcement body, repeated repeated repeated")

	compressed, err := Compress(FormatLZ4, payload)
	require.NoError(t, err)

	out, err := Decompress(FormatLZ4, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestZstdRoundTrip(t *testing.T) {
	payload := []byte("zstd announcement body, repeated repeated repeated")

	compressed, err := Compress(FormatZstd, payload)
	require.NoError(t, err)

	out, err := Decompress(FormatZstd, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestCodecForTrimsPadding(t *testing.T) {
	c, err := CodecFor("s2      ")
	require.NoError(t, err)
	require.IsType(t, S2Codec{}, c)
}

func TestCodecForUnknownFormat(t *testing.T) {
	_, err := CodecFor("lzma")
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}
