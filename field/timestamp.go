package field

// LocalTimeStamp is a signed 64-bit field packing YYYYMMDDHHMMSSsss
// (spec section 3). Its component accessors divide by descending powers
// of ten, following the original protocol's field definitions exactly.
type LocalTimeStamp struct {
	raw Int[int64]
}

// NewLocalTimeStamp constructs a LocalTimeStamp field with the given
// packed value.
func NewLocalTimeStamp(packed int64) LocalTimeStamp {
	ts := LocalTimeStamp{}
	ts.raw.SetValue(packed)

	return ts
}

// WireSize is always 8 bytes.
func (f *LocalTimeStamp) WireSize() int { return f.raw.WireSize() }

// Decode reads the packed int64 wire value.
func (f *LocalTimeStamp) Decode(src []byte) error { return f.raw.Decode(src) }

// Encode writes the packed int64 wire value.
func (f *LocalTimeStamp) Encode(dst []byte) error { return f.raw.Encode(dst) }

// Value returns the packed YYYYMMDDHHMMSSsss integer.
func (f *LocalTimeStamp) Value() int64 { return f.raw.Value() }

// SetValue assigns the packed YYYYMMDDHHMMSSsss integer.
func (f *LocalTimeStamp) SetValue(v int64) { f.raw.SetValue(v) }

// Year returns the YYYY component.
func (f *LocalTimeStamp) Year() uint32 { return uint32(f.Value() / 10000000000000) }

// Month returns the MM component.
func (f *LocalTimeStamp) Month() uint32 { return uint32(f.Value() % 10000000000000 / 100000000000) }

// Day returns the DD component.
func (f *LocalTimeStamp) Day() uint32 { return uint32(f.Value() % 100000000000 / 1000000000) }

// Hour returns the HH component.
func (f *LocalTimeStamp) Hour() uint32 { return uint32(f.Value() % 1000000000 / 10000000) }

// Minute returns the MM (minute) component.
func (f *LocalTimeStamp) Minute() uint32 { return uint32(f.Value() % 10000000 / 100000) }

// Sec returns the SS component.
func (f *LocalTimeStamp) Sec() uint32 { return uint32(f.Value() % 100000 / 1000) }

// Msec returns the sss (millisecond) component.
func (f *LocalTimeStamp) Msec() uint32 { return uint32(f.Value() % 1000) }

// LocalMktDate is an unsigned 32-bit field packing YYYYMMDD.
type LocalMktDate struct {
	raw Int[uint32]
}

// NewLocalMktDate constructs a LocalMktDate field with the given packed value.
func NewLocalMktDate(packed uint32) LocalMktDate {
	d := LocalMktDate{}
	d.raw.SetValue(packed)

	return d
}

// WireSize is always 4 bytes.
func (f *LocalMktDate) WireSize() int { return f.raw.WireSize() }

// Decode reads the packed uint32 wire value.
func (f *LocalMktDate) Decode(src []byte) error { return f.raw.Decode(src) }

// Encode writes the packed uint32 wire value.
func (f *LocalMktDate) Encode(dst []byte) error { return f.raw.Encode(dst) }

// Value returns the packed YYYYMMDD integer.
func (f *LocalMktDate) Value() uint32 { return f.raw.Value() }

// SetValue assigns the packed YYYYMMDD integer.
func (f *LocalMktDate) SetValue(v uint32) { f.raw.SetValue(v) }

// Year returns the YYYY component.
func (f *LocalMktDate) Year() uint32 { return f.Value() / 10000 }

// Month returns the MM component.
func (f *LocalMktDate) Month() uint32 { return f.Value() % 10000 / 100 }

// Day returns the DD component.
func (f *LocalMktDate) Day() uint32 { return f.Value() % 100 }
