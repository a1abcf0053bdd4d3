package group

import (
	"testing"

	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/wire"
	"github.com/stretchr/testify/require"
)

// pair is a minimal fixed-size composite element used to test the group
// container independent of any real message definition.
type pair struct {
	a field.Int[uint16]
	b field.Boolean
}

func (p *pair) WireSize() int { return p.a.WireSize() + p.b.WireSize() }

func (p *pair) DecodeFrom(cur *wire.Cursor) error {
	if err := cur.ReadField(&p.a); err != nil {
		return err
	}

	return cur.ReadField(&p.b)
}

func (p *pair) EncodeTo(w *wire.Writer) error {
	if err := w.WriteField(&p.a); err != nil {
		return err
	}

	return w.WriteField(&p.b)
}

func buildPairs(t *testing.T, vals []uint16, flags []bool) []byte {
	t.Helper()
	require.Equal(t, len(vals), len(flags))

	buf := make([]byte, 4*len(vals))
	w := wire.NewWriter(buf)
	for i := range vals {
		p := pair{}
		p.a.SetValue(vals[i])
		p.b.SetValue(flags[i])
		require.NoError(t, p.EncodeTo(w))
	}

	return buf
}

func TestOwnedGroupRoundTrip(t *testing.T) {
	data := buildPairs(t, []uint16{1, 20}, []bool{true, false})

	var g Owned[pair, *pair]
	cur := wire.NewCursor(data)
	require.NoError(t, g.Decode(cur, 2))
	require.Equal(t, 2, g.Len())
	require.Equal(t, 8, g.WireSize())

	e0, err := g.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint16(1), e0.a.Value())
	require.True(t, e0.b.Value())

	e1, err := g.Get(1)
	require.NoError(t, err)
	require.Equal(t, uint16(20), e1.a.Value())
	require.False(t, e1.b.Value())

	_, err = g.Get(2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)

	out := make([]byte, g.WireSize())
	require.NoError(t, g.Encode(wire.NewWriter(out)))
	require.Equal(t, data, out)
}

func TestOwnedGroupZeroLength(t *testing.T) {
	var g Owned[pair, *pair]
	cur := wire.NewCursor(nil)
	require.NoError(t, g.Decode(cur, 0))
	require.Equal(t, 0, g.Len())
	require.Equal(t, 0, g.WireSize())
}

func TestBorrowedGroupZeroCopy(t *testing.T) {
	data := buildPairs(t, []uint16{1, 20}, []bool{true, false})

	var g Borrowed[pair, *pair]
	cur := wire.NewCursor(data)
	require.NoError(t, g.Decode(cur, 2, 4))
	require.Equal(t, 2, g.Len())
	require.Equal(t, 8, g.WireSize())

	e0, err := g.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint16(1), e0.a.Value())

	_, err = g.Get(5)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
}

func TestBorrowedGroupIsImmutable(t *testing.T) {
	var g Borrowed[pair, *pair]
	require.ErrorIs(t, g.Append(pair{}), errs.ErrImmutable)
	require.ErrorIs(t, g.Encode(wire.NewWriter(nil)), errs.ErrImmutable)
}

func TestGroupTruncated(t *testing.T) {
	data := buildPairs(t, []uint16{1}, []bool{true})[:3]

	var g Owned[pair, *pair]
	cur := wire.NewCursor(data)
	require.ErrorIs(t, g.Decode(cur, 1), errs.ErrTruncated)

	var b Borrowed[pair, *pair]
	cur2 := wire.NewCursor(data)
	require.ErrorIs(t, b.Decode(cur2, 1, 4), errs.ErrTruncated)
}
