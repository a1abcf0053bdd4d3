package dedup

import (
	"testing"

	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/stretchr/testify/require"
)

func TestFilterTracksNewFrames(t *testing.T) {
	f := NewFilter()
	require.False(t, f.Check(1, 100))
	require.NoError(t, f.Track(1, 100))
	require.True(t, f.Check(1, 100))
	require.Equal(t, 1, f.Count())
}

func TestFilterRejectsDuplicate(t *testing.T) {
	f := NewFilter()
	require.NoError(t, f.Track(2, 50))
	require.ErrorIs(t, f.Track(2, 50), errs.ErrDuplicateFrame)
}

func TestFilterDistinguishesChannels(t *testing.T) {
	f := NewFilter()
	require.NoError(t, f.Track(1, 50))
	require.NoError(t, f.Track(2, 50))
	require.Equal(t, 2, f.Count())
}

func TestFilterReset(t *testing.T) {
	f := NewFilter()
	require.NoError(t, f.Track(1, 1))
	f.Reset()
	require.Equal(t, 0, f.Count())
	require.False(t, f.Check(1, 1))
}
