package field

// Boolean is an unsigned 16-bit field: 1 means true, 0 means false, and
// any other decoded value is treated as false (spec section 3).
type Boolean struct {
	raw Int[uint16]
}

// NewBoolean constructs a Boolean field with the given initial value.
func NewBoolean(v bool) Boolean {
	b := Boolean{}
	b.SetValue(v)

	return b
}

// WireSize is always 2 bytes.
func (f *Boolean) WireSize() int { return f.raw.WireSize() }

// Decode reads the raw uint16 wire value.
func (f *Boolean) Decode(src []byte) error { return f.raw.Decode(src) }

// Encode writes the raw uint16 wire value.
func (f *Boolean) Encode(dst []byte) error { return f.raw.Encode(dst) }

// Value reports whether the raw wire value equals 1.
func (f *Boolean) Value() bool { return f.raw.Value() == 1 }

// RawValue returns the undecoded uint16, for callers that need to observe
// a non-canonical (neither 0 nor 1) value instead of folding it to false.
func (f *Boolean) RawValue() uint16 { return f.raw.Value() }

// SetValue assigns the canonical 1/0 wire encoding for true/false.
func (f *Boolean) SetValue(v bool) {
	if v {
		f.raw.SetValue(1)
	} else {
		f.raw.SetValue(0)
	}
}
