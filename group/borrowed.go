package group

import (
	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// Borrowed is a zero-copy view over count contiguous fixed-size elements
// within a caller-owned buffer. Valid only while that buffer is
// unchanged; random access reconstructs a fresh element at base + i *
// elemSize on every Get.
//
// Borrowed is read-only: Append always fails with errs.ErrImmutable, as
// required by spec section 4.3 ("Borrowed-mode write operations fail
// with ErrorKind::Immutable").
type Borrowed[T any, PT Element[T]] struct {
	data     []byte
	count    int
	elemSize int
}

// Decode takes count*elemSize bytes from cur as a zero-copy view. elemSize
// must be the element type's constant per-element wire size; callers must
// not use Borrowed for an element type whose size varies between
// instances (one with its own nested group).
func (g *Borrowed[T, PT]) Decode(cur *wire.Cursor, count, elemSize int) error {
	data, err := cur.Take(count * elemSize)
	if err != nil {
		return err
	}

	g.data = data
	g.count = count
	g.elemSize = elemSize

	return nil
}

// Len returns the element count.
func (g *Borrowed[T, PT]) Len() int { return g.count }

// WireSize returns count * elemSize.
func (g *Borrowed[T, PT]) WireSize() int { return g.count * g.elemSize }

// Get reconstructs the i-th element by value; cheap since elements are
// small, fixed-size composites.
func (g *Borrowed[T, PT]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= g.count {
		return zero, errs.ErrIndexOutOfBounds
	}

	start := i * g.elemSize
	sub := wire.NewCursor(g.data[start : start+g.elemSize])

	var v T
	if err := PT(&v).DecodeFrom(sub); err != nil {
		return zero, err
	}

	return v, nil
}

// Encode always fails: a borrowed group holds no independent state to
// serialize from.
func (g *Borrowed[T, PT]) Encode(w *wire.Writer) error { return errs.ErrImmutable }

// Append always fails: borrowed groups are read-only views.
func (g *Borrowed[T, PT]) Append(T) error { return errs.ErrImmutable }
