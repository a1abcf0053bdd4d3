package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarketStatusRoundTrip(t *testing.T) {
	m := NewMarketStatus()
	m.OrigTime.SetValue(20260729091500000)
	m.ChannelNo.SetValue(1)
	require.NoError(t, m.MarketID.SetValue("SZSE"))
	require.NoError(t, m.TradingSessionID.SetValue("T"))
	require.NoError(t, m.AmountStatus.SetValue("0"))
	require.NoError(t, m.ThresholdAmount.SetF64(1234.5))

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewMarketStatus()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, "SZSE", decoded.MarketID.TrimmedValue())
	require.Equal(t, "T", decoded.TradingSessionID.TrimmedValue())
	require.Equal(t, "0", decoded.AmountStatus.TrimmedValue())
	require.InDelta(t, 1234.5, decoded.ThresholdAmount.AsF64(), 0.0001)
}

func TestSecurityStatusRoundTrip(t *testing.T) {
	m := NewSecurityStatus()
	m.ChannelNo.SetValue(2)
	require.NoError(t, m.SecurityID.SetValue("000001"))

	for i, v := range []uint16{101, 202} {
		s := SecuritySwitch{}
		s.SwitchID.SetValue(v)
		s.SwitchStatus.SetValue(i == 0)
		m.Switches.Append(s)
	}

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))
	require.Equal(t, uint32(2), m.NoSwitch.Value())

	decoded := NewSecurityStatus()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, 2, decoded.Switches.Len())

	e0, err := decoded.Switches.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint16(101), e0.SwitchID.Value())
	require.True(t, e0.SwitchStatus.Value())

	e1, err := decoded.Switches.Get(1)
	require.NoError(t, err)
	require.Equal(t, uint16(202), e1.SwitchID.Value())
	require.False(t, e1.SwitchStatus.Value())
}

func TestSecurityStatusEmptyGroup(t *testing.T) {
	m := NewSecurityStatus()
	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewSecurityStatus()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, 0, decoded.Switches.Len())
}

func TestMarketSnapshotStatisticRoundTrip(t *testing.T) {
	m := NewMarketSnapshotStatistic()
	m.OrigTime.SetValue(20260729090000000)
	m.ChannelNo.SetValue(5)

	s := newStreamStatForTest(t, "010", 128, "T")
	m.Streams.Append(s)

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))
	require.Equal(t, uint32(1), m.NoMDStream.Value())

	decoded := NewMarketSnapshotStatistic()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, 1, decoded.Streams.Len())

	e0, err := decoded.Streams.Get(0)
	require.NoError(t, err)
	require.Equal(t, "010", e0.MDStreamID.TrimmedValue())
	require.Equal(t, uint32(128), e0.StockNum.Value())
	require.Equal(t, "T", e0.TradingPhaseCode.TrimmedValue())
}

func newStreamStatForTest(t *testing.T, streamID string, stockNum uint32, phase string) StreamStat {
	t.Helper()

	s := StreamStat{}
	s.configure()
	require.NoError(t, s.MDStreamID.SetValue(streamID))
	s.StockNum.SetValue(stockNum)
	require.NoError(t, s.TradingPhaseCode.SetValue(phase))

	return s
}
