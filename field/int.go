package field

import (
	"unsafe"

	"github.com/yzcpleo/szse-v5-parser/endian"
	"github.com/yzcpleo/szse-v5-parser/errs"
)

// Integer constrains the widths the SZSE protocol defines: 1, 2, 4, and 8
// byte signed or unsigned integers.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Int is a fixed-width big-endian integer field (spec section 3, Int<T>).
//
// T fixes the wire width: width 1 is a no-op conversion, wider types are
// byte-swapped on little-endian hosts. The conversion between same-size
// integer types (e.g. uint16(v) for a v of type int16) reinterprets the
// bit pattern rather than clamping, which is exactly the two's-complement
// behavior the wire format requires.
type Int[T Integer] struct {
	v T
}

// NewInt constructs an Int field with the given initial value.
func NewInt[T Integer](v T) Int[T] {
	return Int[T]{v: v}
}

// WireSize returns sizeof(T).
func (f *Int[T]) WireSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Decode reads a big-endian T from src.
func (f *Int[T]) Decode(src []byte) error {
	n := f.WireSize()
	if len(src) < n {
		return errs.ErrTruncated
	}

	switch n {
	case 1:
		f.v = T(endian.Uint8(src))
	case 2:
		f.v = T(endian.Uint16(src))
	case 4:
		f.v = T(endian.Uint32(src))
	case 8:
		f.v = T(endian.Uint64(src))
	}

	return nil
}

// Encode writes a big-endian T into dst.
func (f *Int[T]) Encode(dst []byte) error {
	n := f.WireSize()
	if len(dst) < n {
		return errs.ErrBufferTooSmall
	}

	switch n {
	case 1:
		endian.PutUint8(dst, uint8(f.v))
	case 2:
		endian.PutUint16(dst, uint16(f.v))
	case 4:
		endian.PutUint32(dst, uint32(f.v))
	case 8:
		endian.PutUint64(dst, uint64(f.v))
	}

	return nil
}

// Value returns the decoded/assigned value.
func (f *Int[T]) Value() T { return f.v }

// SetValue assigns v.
func (f *Int[T]) SetValue(v T) { f.v = v }
