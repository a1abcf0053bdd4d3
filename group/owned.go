package group

import (
	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// Owned is a growable, independently-owned sequence of decoded elements.
// Required whenever the element type's wire size is not constant (it
// nests its own repeating group), and usable for fixed-size elements too
// when the caller wants mutability.
type Owned[T any, PT Element[T]] struct {
	items []T
}

// Len returns the number of elements.
func (g *Owned[T, PT]) Len() int { return len(g.items) }

// Get returns a pointer to the i-th element.
func (g *Owned[T, PT]) Get(i int) (*T, error) {
	if i < 0 || i >= len(g.items) {
		return nil, errs.ErrIndexOutOfBounds
	}

	return &g.items[i], nil
}

// Append adds v to the end of the sequence.
func (g *Owned[T, PT]) Append(v T) { g.items = append(g.items, v) }

// WireSize sums every element's current wire size.
func (g *Owned[T, PT]) WireSize() int {
	n := 0
	for i := range g.items {
		n += PT(&g.items[i]).WireSize()
	}

	return n
}

// Decode reads count elements left to right from cur, each of which may
// itself recursively decode a nested group and so consume a variable span.
func (g *Owned[T, PT]) Decode(cur *wire.Cursor, count int) error {
	items := make([]T, count)
	for i := range items {
		if err := PT(&items[i]).DecodeFrom(cur); err != nil {
			return err
		}
	}
	g.items = items

	return nil
}

// Encode writes every element back to back.
func (g *Owned[T, PT]) Encode(w *wire.Writer) error {
	for i := range g.items {
		if err := PT(&g.items[i]).EncodeTo(w); err != nil {
			return err
		}
	}

	return nil
}
