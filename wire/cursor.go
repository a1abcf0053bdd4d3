// Package wire provides the cursor/writer pair the composite field
// framework (package message) and the repeating-group container (package
// group) share to walk a byte buffer front-to-back.
//
// This replaces the pointer-to-pointer cursor-passing style of the
// original C++ source (spec section 9, "Cursor passing") with an
// explicit value passed by reference: primitive decoders consume bytes
// from the front of a slice, and Cursor/Writer track position and
// enforce bounds so callers never need to juggle a pair of raw pointers.
package wire

import "github.com/yzcpleo/szse-v5-parser/errs"

// Cursor walks a read-only byte buffer front-to-back, handing out
// successive sub-slices to primitive and composite decoders.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a Cursor over buf, starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining reports how many bytes are left to consume.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Pos reports the current read position.
func (c *Cursor) Pos() int { return c.pos }

// decodable is satisfied by every primitive field in package field.
type decodable interface {
	WireSize() int
	Decode(src []byte) error
}

// ReadField decodes f from the front of the cursor and advances past it.
func (c *Cursor) ReadField(f decodable) error {
	n := f.WireSize()
	if c.Remaining() < n {
		return errs.ErrTruncated
	}

	if err := f.Decode(c.buf[c.pos : c.pos+n]); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// Take returns a zero-copy sub-slice of the next n bytes and advances past
// them, without interpreting them. Used by borrowed repeating groups and
// variable-length trailing blobs (Announcement.RawData).
func (c *Cursor) Take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errs.ErrTruncated
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Rest returns every remaining byte without advancing the cursor. Callers
// that want to observe trailing bytes (spec's ErrTrailingBytes) use this.
func (c *Cursor) Rest() []byte { return c.buf[c.pos:] }
