// Package endian provides host-endianness detection and the big-endian
// conversion helpers the SZSE V5 wire format requires.
//
// The protocol fixes its wire byte order to big-endian for every integer
// field (spec section 3, "Invariants"): this package does not offer a
// pluggable little/big choice the way a general-purpose codec might,
// since there is nothing to choose. What it does offer is a way to tell,
// at runtime, whether the conversions below are a no-op (host is already
// big-endian) or an actual byte swap (host is little-endian, the common
// case) — useful for tests asserting the from_be(to_be(x)) == x
// round-trip holds regardless of host order.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// ToBEUint16 converts a host uint16 to its big-endian wire representation.
func ToBEUint16(v uint16) uint16 {
	if IsNativeBigEndian() {
		return v
	}

	return v<<8 | v>>8
}

// FromBEUint16 is the inverse of ToBEUint16; the conversion is an involution.
func FromBEUint16(v uint16) uint16 { return ToBEUint16(v) }

// ToBEUint32 converts a host uint32 to its big-endian wire representation.
func ToBEUint32(v uint32) uint32 {
	if IsNativeBigEndian() {
		return v
	}

	return (v&0x000000FF)<<24 | (v&0x0000FF00)<<8 |
		(v&0x00FF0000)>>8 | (v&0xFF000000)>>24
}

// FromBEUint32 is the inverse of ToBEUint32; the conversion is an involution.
func FromBEUint32(v uint32) uint32 { return ToBEUint32(v) }

// ToBEUint64 converts a host uint64 to its big-endian wire representation.
func ToBEUint64(v uint64) uint64 {
	if IsNativeBigEndian() {
		return v
	}

	return (v&0x00000000000000FF)<<56 | (v&0x000000000000FF00)<<40 |
		(v&0x0000000000FF0000)<<24 | (v&0x00000000FF000000)<<8 |
		(v&0x000000FF00000000)>>8 | (v&0x0000FF0000000000)>>24 |
		(v&0x00FF000000000000)>>40 | (v&0xFF00000000000000)>>56
}

// FromBEUint64 is the inverse of ToBEUint64; the conversion is an involution.
func FromBEUint64(v uint64) uint64 { return ToBEUint64(v) }

// PutUint8 stores a single byte; width 1 is always identity.
func PutUint8(dst []byte, v uint8) { dst[0] = v }

// Uint8 reads a single byte; width 1 is always identity.
func Uint8(src []byte) uint8 { return src[0] }

// PutUint16 stores v into dst[0:2] in big-endian order.
func PutUint16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }

// Uint16 reads a big-endian uint16 from src[0:2].
func Uint16(src []byte) uint16 { return binary.BigEndian.Uint16(src) }

// PutUint32 stores v into dst[0:4] in big-endian order.
func PutUint32(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }

// Uint32 reads a big-endian uint32 from src[0:4].
func Uint32(src []byte) uint32 { return binary.BigEndian.Uint32(src) }

// PutUint64 stores v into dst[0:8] in big-endian order.
func PutUint64(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }

// Uint64 reads a big-endian uint64 from src[0:8].
func Uint64(src []byte) uint64 { return binary.BigEndian.Uint64(src) }
