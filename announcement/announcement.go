// Package announcement decompresses an Announcement message's RawData
// payload (spec section 4.5). RawDataFormat is a free-text tag the
// publisher sets to name how RawData was compressed before
// transmission; this package maps that tag to a concrete codec.
//
// This is a domain-stack addition: the wire protocol itself has no
// frame-level compression (SPEC_FULL.md, "Domain stack"), only
// Announcement carries an optionally-compressed blob. The Codec shape
// below is carried over from the teacher's compress package, which
// defines the same Compressor/Decompressor/Codec split for a different
// (columnar time-series) payload kind.
package announcement

import "github.com/yzcpleo/szse-v5-parser/errs"

// Decompressor decompresses a RawData payload compressed with one
// specific algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Compressor compresses a payload with one specific algorithm, the
// inverse of Decompressor. It produces RawData from a plaintext payload
// for a non-trivial RawDataFormat; message.Announcement.EncodeBody itself
// writes RawData verbatim and does not compress it.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// RawDataFormat tag values (spec section 4.5, Announcement.RawDataFormat).
const (
	FormatNone = "none"
	FormatS2   = "s2"
	FormatLZ4  = "lz4"
	FormatZstd = "zstd"
)

var registry = map[string]Codec{
	FormatNone: NoOpCodec{},
	FormatS2:   S2Codec{},
	FormatLZ4:  LZ4Codec{},
	FormatZstd: ZstdCodec{},
}

// CodecFor returns the registered Codec for a RawDataFormat tag, trimmed
// of trailing spaces (RawDataFormat is a space-padded String<8>).
func CodecFor(format string) (Codec, error) {
	c, ok := registry[trim(format)]
	if !ok {
		return nil, errs.ErrUnknownCompression
	}

	return c, nil
}

// Decompress is the common entry point: look up format's codec and
// decompress raw through it.
func Decompress(format string, raw []byte) ([]byte, error) {
	c, err := CodecFor(format)
	if err != nil {
		return nil, err
	}

	return c.Decompress(raw)
}

// Compress is Decompress's inverse: look up format's codec and compress
// plain through it.
func Compress(format string, plain []byte) ([]byte, error) {
	c, err := CodecFor(format)
	if err != nil {
		return nil, err
	}

	return c.Compress(plain)
}

func trim(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}

	return s[:i]
}
