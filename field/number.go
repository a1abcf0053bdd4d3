package field

import (
	"math"

	"github.com/yzcpleo/szse-v5-parser/errs"
)

// Number is a fixed-point decimal field (spec section 3, Number<X,Y>):
// stored on the wire as a signed 64-bit integer equal to value * 10^Y.
// X (total digits) is informational only and is not enforced; Y (scale)
// drives every conversion.
type Number struct {
	digits int // X, informational
	scale  int // Y
	raw    Int[int64]
}

// NewNumber constructs a Number field with the given digit count and scale.
func NewNumber(digits, scale int) Number {
	return Number{digits: digits, scale: scale}
}

// Digits returns X, the informational total-digit count.
func (f *Number) Digits() int { return f.digits }

// Scale returns Y, the power of ten the wire integer is divided by.
func (f *Number) Scale() int { return f.scale }

// WireSize is always 8 bytes.
func (f *Number) WireSize() int { return f.raw.WireSize() }

// Decode reads the raw signed 64-bit wire integer.
func (f *Number) Decode(src []byte) error { return f.raw.Decode(src) }

// Encode writes the raw signed 64-bit wire integer.
func (f *Number) Encode(dst []byte) error { return f.raw.Encode(dst) }

// Scaled returns the raw wire integer (value * 10^scale).
func (f *Number) Scaled() int64 { return f.raw.Value() }

// SetScaled sets the raw wire integer directly.
func (f *Number) SetScaled(v int64) { f.raw.SetValue(v) }

// AsF64 returns the decoded fractional value: scaled / 10^scale.
func (f *Number) AsF64() float64 {
	return float64(f.raw.Value()) / pow10(f.scale)
}

// SetF64 sets the value from a float64, rounding half away from zero
// (scaled = round(v * 10^scale)). Non-finite inputs are rejected.
func (f *Number) SetF64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.ErrInvalidNumber
	}

	f.raw.SetValue(int64(math.Round(v * pow10(f.scale))))

	return nil
}

func pow10(y int) float64 {
	return math.Pow(10, float64(y))
}
