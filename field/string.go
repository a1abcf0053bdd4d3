package field

import (
	"strings"

	"github.com/yzcpleo/szse-v5-parser/errs"
)

// String is a fixed-width, space-padded field (spec section 3,
// String<N>): exactly N bytes on the wire, no terminator. A value shorter
// than N is right-padded with 0x20 on construction or assignment.
type String struct {
	n    int
	data []byte
}

// NewFixedString constructs a blank (all-space) String field of width n.
// Message definitions use this to declare a field's wire width before any
// value is known, the same way the composite framework pre-declares every
// field's size.
func NewFixedString(n int) String {
	data := make([]byte, n)
	for i := range data {
		data[i] = ' '
	}

	return String{n: n, data: data}
}

// NewString constructs a String field of width n holding s, space-padded.
// It errors if s is longer than n.
func NewString(n int, s string) (String, error) {
	f := NewFixedString(n)
	if err := f.SetValue(s); err != nil {
		return String{}, err
	}

	return f, nil
}

// WireSize returns N.
func (f *String) WireSize() int { return f.n }

// Decode copies N bytes verbatim from src.
func (f *String) Decode(src []byte) error {
	if len(src) < f.n {
		return errs.ErrTruncated
	}

	if cap(f.data) < f.n {
		f.data = make([]byte, f.n)
	} else {
		f.data = f.data[:f.n]
	}
	copy(f.data, src[:f.n])

	return nil
}

// Encode writes the stored N bytes, which have already been padded on
// construction or assignment.
func (f *String) Encode(dst []byte) error {
	if len(dst) < f.n {
		return errs.ErrBufferTooSmall
	}

	copy(dst[:f.n], f.data)

	return nil
}

// Value returns the raw N-byte logical string, trailing padding included.
func (f *String) Value() string { return string(f.data) }

// TrimmedValue returns Value with trailing ASCII spaces stripped.
func (f *String) TrimmedValue() string { return strings.TrimRight(f.Value(), " ") }

// SetValue assigns s, right-padding with 0x20 up to N bytes. It errors if
// s is longer than N.
func (f *String) SetValue(s string) error {
	if len(s) > f.n {
		return errs.ErrBufferTooSmall
	}

	data := make([]byte, f.n)
	copy(data, s)
	for i := len(s); i < f.n; i++ {
		data[i] = ' '
	}
	f.data = data

	return nil
}
