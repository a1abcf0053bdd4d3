package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillBase(t *testing.T, b *MarketSnapshotBase) {
	t.Helper()
	b.OrigTime.SetValue(20260729093000000)
	b.ChannelNo.SetValue(1)
	require.NoError(t, b.MDStreamID.SetValue("011"))
	require.NoError(t, b.SecurityID.SetValue("000001"))
	require.NoError(t, b.SecurityIDSource.SetValue("XSHE"))
	require.NoError(t, b.TradingPhaseCode.SetValue("T"))
	require.NoError(t, b.PrevClosePx.SetF64(12.34))
	b.NumTrades.SetValue(100)
	require.NoError(t, b.TotalVolumeTrade.SetF64(5000))
	require.NoError(t, b.TotalValueTrade.SetF64(61700))
}

func TestMarketSnapshot300111RoundTrip(t *testing.T) {
	m := NewMarketSnapshot300111()
	fillBase(t, &m.MarketSnapshotBase)

	e := SecurityEntry{}
	e.configure()
	require.NoError(t, e.MDEntryType.SetValue("0"))
	e.MDEntryPx.SetValue(123400)
	require.NoError(t, e.MDEntrySize.SetF64(100))
	e.MDPriceLevel.SetValue(1)
	e.NumberOfOrders.SetValue(1)

	q := OrderQty{}
	q.configure()
	require.NoError(t, q.Qty.SetF64(10))
	e.Orders.Append(q)

	m.Entries.Append(e)

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))
	require.Equal(t, uint32(1), m.NoMDEntries.Value())

	decoded := NewMarketSnapshot300111()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, 1, decoded.Entries.Len())

	got, err := decoded.Entries.Get(0)
	require.NoError(t, err)
	require.Equal(t, "0", got.MDEntryType.TrimmedValue())
	require.Equal(t, int64(123400), got.MDEntryPx.Value())
	require.Equal(t, 1, got.Orders.Len())

	order, err := got.Orders.Get(0)
	require.NoError(t, err)
	require.InDelta(t, 10, order.Qty.AsF64(), 0.0001)
}

func TestMarketSnapshot309111RoundTrip(t *testing.T) {
	m := NewMarketSnapshot309111()
	fillBase(t, &m.MarketSnapshotBase)
	m.StockNum.SetValue(1500)

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewMarketSnapshot309111()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, uint32(1500), decoded.StockNum.Value())
}

func TestOrderSnapshot300192RoundTrip(t *testing.T) {
	m := NewOrderSnapshot300192()
	m.ChannelNo.SetValue(1)
	m.ApplSeqNum.SetValue(99)
	require.NoError(t, m.SecurityID.SetValue("000001"))
	require.NoError(t, m.Price.SetF64(9.99))
	require.NoError(t, m.OrderQty.SetF64(200))
	require.NoError(t, m.Side.SetValue("1"))
	m.TransactTime.SetValue(20260729093000100)
	require.NoError(t, m.OrdType.SetValue("2"))

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewOrderSnapshot300192()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, "1", decoded.Side.TrimmedValue())
	require.Equal(t, "2", decoded.OrdType.TrimmedValue())
	require.InDelta(t, 9.99, decoded.Price.AsF64(), 0.0001)
}

func TestTransactionSnapshot300191RoundTrip(t *testing.T) {
	m := NewTransactionSnapshot300191()
	m.ChannelNo.SetValue(1)
	m.ApplSeqNum.SetValue(500)
	require.NoError(t, m.MDStreamID.SetValue("011"))
	m.BidApplSeqNum.SetValue(10)
	m.OfferApplSeqNum.SetValue(20)
	require.NoError(t, m.SecurityID.SetValue("000001"))
	require.NoError(t, m.SecurityIDSource.SetValue("XSHE"))
	require.NoError(t, m.LastPx.SetF64(10.5))
	require.NoError(t, m.LastQty.SetF64(300))
	require.NoError(t, m.ExecType.SetValue("F"))
	m.TransactTime.SetValue(20260729093000200)

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewTransactionSnapshot300191()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, int64(10), decoded.BidApplSeqNum.Value())
	require.Equal(t, int64(20), decoded.OfferApplSeqNum.Value())
	require.Equal(t, "F", decoded.ExecType.TrimmedValue())
	require.InDelta(t, 10.5, decoded.LastPx.AsF64(), 0.0001)
}
