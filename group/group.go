// Package group implements the repeating-group container (spec section
// 4.3): a homogeneous sequence of composite elements whose length is
// driven by a NumInGroup field decoded immediately before it.
//
// Two modes mirror the dual-mode access model (spec section 4, "A
// dual-mode access model"):
//
//   - Borrowed holds a zero-copy slice of the input buffer and
//     reconstructs elements on demand. It requires every element to have
//     the same fixed wire size (no nested repeating group of its own),
//     since random access depends on a constant stride.
//   - Owned eagerly decodes every element into an independent value,
//     which is the only option once an element's size can vary (it
//     contains its own nested group).
package group

import "github.com/yzcpleo/szse-v5-parser/wire"

// Element is implemented by *T for a composite group-element type T (for
// example SecuritySwitch, StreamStat, or SecurityEntry). The pointer
// constraint lets Owned and Borrowed decode into a freshly zeroed T
// without requiring a factory function.
type Element[T any] interface {
	*T
	WireSize() int
	DecodeFrom(cur *wire.Cursor) error
	EncodeTo(w *wire.Writer) error
}
