// Package field implements the primitive field codecs of the SZSE V5
// wire protocol: fixed-width big-endian integers, fixed-point decimals,
// booleans, packed date/timestamp integers, and space-padded strings.
//
// Every primitive exposes the same four operations (spec section 4.2):
// WireSize, Decode, Encode, and a typed Value accessor. They are grouped
// behind the Field interface so the composite framework in package
// message can walk a field list uniformly.
package field

// Field is the common contract every primitive codec satisfies.
type Field interface {
	// WireSize reports the fixed byte width this field occupies on the wire.
	WireSize() int
	// Decode reads exactly WireSize() bytes from the front of src.
	// Callers (wire.Cursor, as used by package message) guarantee
	// len(src) >= WireSize().
	Decode(src []byte) error
	// Encode writes exactly WireSize() bytes to the front of dst.
	// Callers guarantee len(dst) >= WireSize().
	Encode(dst []byte) error
}
