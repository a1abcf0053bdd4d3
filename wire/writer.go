package wire

import "github.com/yzcpleo/szse-v5-parser/errs"

// Writer walks a mutable byte buffer front-to-back, receiving successive
// encoded fields from primitive and composite encoders.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a Writer over dst, starting at position 0. dst's
// length is the writer's total capacity; it is never grown.
func NewWriter(dst []byte) *Writer {
	return &Writer{buf: dst}
}

// Remaining reports how many bytes are left to fill.
func (w *Writer) Remaining() int { return len(w.buf) - w.pos }

// Pos reports the current write position.
func (w *Writer) Pos() int { return w.pos }

// encodable is satisfied by every primitive field in package field.
type encodable interface {
	WireSize() int
	Encode(dst []byte) error
}

// WriteField encodes f at the front of the writer and advances past it.
func (w *Writer) WriteField(f encodable) error {
	n := f.WireSize()
	if w.Remaining() < n {
		return errs.ErrBufferTooSmall
	}

	if err := f.Encode(w.buf[w.pos : w.pos+n]); err != nil {
		return err
	}
	w.pos += n

	return nil
}

// WriteBytes copies b verbatim and advances past it. Used for the
// Announcement RawData trailing blob.
func (w *Writer) WriteBytes(b []byte) error {
	if w.Remaining() < len(b) {
		return errs.ErrBufferTooSmall
	}

	copy(w.buf[w.pos:], b)
	w.pos += len(b)

	return nil
}
