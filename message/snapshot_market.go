package message

import (
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/group"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// MarketSnapshotBase is the field prefix shared by every MarketSnapshot_*
// message (spec section 4.5): OrigTime through TotalValueTrade. It is
// embedded by value, never decoded on its own.
type MarketSnapshotBase struct {
	OrigTime         field.LocalTimeStamp
	ChannelNo        field.Int[uint16]
	MDStreamID       field.String
	SecurityID       field.String
	SecurityIDSource field.String
	TradingPhaseCode field.String
	PrevClosePx      field.Number
	NumTrades        field.Int[int64]
	TotalVolumeTrade field.Number
	TotalValueTrade  field.Number
}

// newMarketSnapshotBase constructs a blank base prefix with every String
// and Number field sized per its declared width.
func newMarketSnapshotBase() MarketSnapshotBase {
	return MarketSnapshotBase{
		MDStreamID:       field.NewFixedString(3),
		SecurityID:       field.NewSecurityID(),
		SecurityIDSource: field.NewFixedString(4),
		TradingPhaseCode: field.NewFixedString(8),
		PrevClosePx:      field.NewPrice(),
		TotalVolumeTrade: field.NewQty(),
		TotalValueTrade:  field.NewAmt(),
	}
}

func (b *MarketSnapshotBase) wireSize() int {
	return sumSizes(&b.OrigTime, &b.ChannelNo, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.TradingPhaseCode, &b.PrevClosePx, &b.NumTrades, &b.TotalVolumeTrade, &b.TotalValueTrade)
}

func (b *MarketSnapshotBase) decode(cur *wire.Cursor) error {
	return decodeFields(cur, &b.OrigTime, &b.ChannelNo, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.TradingPhaseCode, &b.PrevClosePx, &b.NumTrades, &b.TotalVolumeTrade, &b.TotalValueTrade)
}

func (b *MarketSnapshotBase) encode(w *wire.Writer) error {
	return encodeFields(w, &b.OrigTime, &b.ChannelNo, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.TradingPhaseCode, &b.PrevClosePx, &b.NumTrades, &b.TotalVolumeTrade, &b.TotalValueTrade)
}

// OrderQty is the innermost repeating-group element nested under
// SecurityEntry: a single Qty value.
type OrderQty struct {
	Qty field.Number
}

func (e *OrderQty) configure() {
	if e.Qty.Scale() == 0 {
		e.Qty = field.NewQty()
	}
}

func (e *OrderQty) WireSize() int { e.configure(); return e.Qty.WireSize() }

func (e *OrderQty) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	return cur.ReadField(&e.Qty)
}

func (e *OrderQty) EncodeTo(w *wire.Writer) error {
	e.configure()
	return w.WriteField(&e.Qty)
}

// SecurityEntry is the MarketSnapshot_300111 repeating-group element:
// MDEntryType, MDEntryPx, MDEntrySize, MDPriceLevel, NumberOfOrders, and
// its own NoOrders-driven nested group of OrderQty. The field tuple sums
// to 32 bytes before the nested group.
type SecurityEntry struct {
	MDEntryType    field.String
	MDEntryPx      field.Int[int64]
	MDEntrySize    field.Number
	MDPriceLevel   field.Int[uint16]
	NumberOfOrders field.Int[int64]
	NoOrders       field.Int[uint32]
	Orders         group.Owned[OrderQty, *OrderQty]
}

func (e *SecurityEntry) configure() {
	if e.MDEntryType.WireSize() == 0 {
		e.MDEntryType = field.NewFixedString(2)
	}
	if e.MDEntrySize.Scale() == 0 {
		e.MDEntrySize = field.NewQty()
	}
}

func (e *SecurityEntry) WireSize() int {
	e.configure()
	return sumSizes(&e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel, &e.NumberOfOrders, &e.NoOrders) + e.Orders.WireSize()
}

func (e *SecurityEntry) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	if err := decodeFields(cur, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel, &e.NumberOfOrders, &e.NoOrders); err != nil {
		return err
	}

	return e.Orders.Decode(cur, int(e.NoOrders.Value()))
}

func (e *SecurityEntry) EncodeTo(w *wire.Writer) error {
	e.configure()
	e.NoOrders.SetValue(uint32(e.Orders.Len()))
	if err := encodeFields(w, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel, &e.NumberOfOrders, &e.NoOrders); err != nil {
		return err
	}

	return e.Orders.Encode(w)
}

// MarketSnapshot_300111 (MsgType 300111): the base prefix plus a
// NoMDEntries-driven group of SecurityEntry.
//
// Spec section 8's worked example states the SecurityEntry fixed prefix
// (everything before the nested OrderQty group) is 30 bytes, but summing
// the declared field widths (String<2>=2, Int64=8, Qty=8, Int16=2,
// Int64=8, NumInGroup=4) gives 32. This implementation follows the
// section 4.5 field tuple, which is internally consistent, over the
// worked example's total.
type MarketSnapshot300111 struct {
	MarketSnapshotBase
	NoMDEntries field.Int[uint32]
	Entries     group.Owned[SecurityEntry, *SecurityEntry]
}

// NewMarketSnapshot300111 constructs a blank MarketSnapshot300111.
func NewMarketSnapshot300111() *MarketSnapshot300111 {
	return &MarketSnapshot300111{MarketSnapshotBase: newMarketSnapshotBase()}
}

func (m *MarketSnapshot300111) MsgType() uint32 { return MarketSnapshot300111MsgType }

func (m *MarketSnapshot300111) WireSize() int {
	return m.wireSize() + m.NoMDEntries.WireSize() + m.Entries.WireSize()
}

func (m *MarketSnapshot300111) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}
	if err := cur.ReadField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Decode(cur, int(m.NoMDEntries.Value()))
}

func (m *MarketSnapshot300111) EncodeBody(dst []byte) error {
	m.NoMDEntries.SetValue(uint32(m.Entries.Len()))

	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}
	if err := w.WriteField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Encode(w)
}

// PriceLevelEntry is the MarketSnapshot_300611 repeating-group element:
// MDEntryType, MDEntryPx, MDEntrySize.
type PriceLevelEntry struct {
	MDEntryType field.String
	MDEntryPx   field.Int[int64]
	MDEntrySize field.Number
}

func (e *PriceLevelEntry) configure() {
	if e.MDEntryType.WireSize() == 0 {
		e.MDEntryType = field.NewFixedString(2)
	}
	if e.MDEntrySize.Scale() == 0 {
		e.MDEntrySize = field.NewQty()
	}
}

func (e *PriceLevelEntry) WireSize() int {
	e.configure()
	return sumSizes(&e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize)
}

func (e *PriceLevelEntry) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	return decodeFields(cur, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize)
}

func (e *PriceLevelEntry) EncodeTo(w *wire.Writer) error {
	e.configure()
	return encodeFields(w, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize)
}

// MarketSnapshot_300611 (MsgType 300611): the base prefix plus a
// NoMDEntries-driven group of PriceLevelEntry.
type MarketSnapshot300611 struct {
	MarketSnapshotBase
	NoMDEntries field.Int[uint32]
	Entries     group.Owned[PriceLevelEntry, *PriceLevelEntry]
}

// NewMarketSnapshot300611 constructs a blank MarketSnapshot300611.
func NewMarketSnapshot300611() *MarketSnapshot300611 {
	return &MarketSnapshot300611{MarketSnapshotBase: newMarketSnapshotBase()}
}

func (m *MarketSnapshot300611) MsgType() uint32 { return MarketSnapshot300611MsgType }

func (m *MarketSnapshot300611) WireSize() int {
	return m.wireSize() + m.NoMDEntries.WireSize() + m.Entries.WireSize()
}

func (m *MarketSnapshot300611) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}
	if err := cur.ReadField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Decode(cur, int(m.NoMDEntries.Value()))
}

func (m *MarketSnapshot300611) EncodeBody(dst []byte) error {
	m.NoMDEntries.SetValue(uint32(m.Entries.Len()))

	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}
	if err := w.WriteField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Encode(w)
}

// ComplexEventTime is a MarketSnapshot_306311 repeating-group element
// pairing a begin and end LocalTimeStamp.
type ComplexEventTime struct {
	BeginTime field.LocalTimeStamp
	EndTime   field.LocalTimeStamp
}

func (e *ComplexEventTime) WireSize() int { return sumSizes(&e.BeginTime, &e.EndTime) }

func (e *ComplexEventTime) DecodeFrom(cur *wire.Cursor) error {
	return decodeFields(cur, &e.BeginTime, &e.EndTime)
}

func (e *ComplexEventTime) EncodeTo(w *wire.Writer) error {
	return encodeFields(w, &e.BeginTime, &e.EndTime)
}

// DerivativeEntry is the MarketSnapshot_306311 repeating-group element:
// MDEntryType, MDEntryPx, MDEntrySize, MDPriceLevel.
type DerivativeEntry struct {
	MDEntryType  field.String
	MDEntryPx    field.Int[int64]
	MDEntrySize  field.Number
	MDPriceLevel field.Int[uint16]
}

func (e *DerivativeEntry) configure() {
	if e.MDEntryType.WireSize() == 0 {
		e.MDEntryType = field.NewFixedString(2)
	}
	if e.MDEntrySize.Scale() == 0 {
		e.MDEntrySize = field.NewQty()
	}
}

func (e *DerivativeEntry) WireSize() int {
	e.configure()
	return sumSizes(&e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel)
}

func (e *DerivativeEntry) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	return decodeFields(cur, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel)
}

func (e *DerivativeEntry) EncodeTo(w *wire.Writer) error {
	e.configure()
	return encodeFields(w, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize, &e.MDPriceLevel)
}

// MarketSnapshot_306311 (MsgType 306311): the base prefix plus a
// NoMDEntries-driven group of DerivativeEntry and a
// NoComplexEventTimes-driven group of ComplexEventTime.
//
// Section 9's design notes flag this message as absent from the
// retrieved original source; it is implemented directly from the
// section 4.5 field tuple as a newer snapshot variant.
type MarketSnapshot306311 struct {
	MarketSnapshotBase
	NoMDEntries         field.Int[uint32]
	Entries             group.Owned[DerivativeEntry, *DerivativeEntry]
	NoComplexEventTimes field.Int[uint32]
	ComplexEventTimes   group.Owned[ComplexEventTime, *ComplexEventTime]
}

// NewMarketSnapshot306311 constructs a blank MarketSnapshot306311.
func NewMarketSnapshot306311() *MarketSnapshot306311 {
	return &MarketSnapshot306311{MarketSnapshotBase: newMarketSnapshotBase()}
}

func (m *MarketSnapshot306311) MsgType() uint32 { return MarketSnapshot306311MsgType }

func (m *MarketSnapshot306311) WireSize() int {
	return m.wireSize() + m.NoMDEntries.WireSize() + m.Entries.WireSize() +
		m.NoComplexEventTimes.WireSize() + m.ComplexEventTimes.WireSize()
}

func (m *MarketSnapshot306311) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}
	if err := cur.ReadField(&m.NoMDEntries); err != nil {
		return err
	}
	if err := m.Entries.Decode(cur, int(m.NoMDEntries.Value())); err != nil {
		return err
	}
	if err := cur.ReadField(&m.NoComplexEventTimes); err != nil {
		return err
	}

	return m.ComplexEventTimes.Decode(cur, int(m.NoComplexEventTimes.Value()))
}

func (m *MarketSnapshot306311) EncodeBody(dst []byte) error {
	m.NoMDEntries.SetValue(uint32(m.Entries.Len()))
	m.NoComplexEventTimes.SetValue(uint32(m.ComplexEventTimes.Len()))

	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}
	if err := w.WriteField(&m.NoMDEntries); err != nil {
		return err
	}
	if err := m.Entries.Encode(w); err != nil {
		return err
	}
	if err := w.WriteField(&m.NoComplexEventTimes); err != nil {
		return err
	}

	return m.ComplexEventTimes.Encode(w)
}

// IndexEntry is the MarketSnapshot_309011 repeating-group element:
// MDEntryType, MDEntryPx.
type IndexEntry struct {
	MDEntryType field.String
	MDEntryPx   field.Int[int64]
}

func (e *IndexEntry) configure() {
	if e.MDEntryType.WireSize() == 0 {
		e.MDEntryType = field.NewFixedString(2)
	}
}

func (e *IndexEntry) WireSize() int { e.configure(); return sumSizes(&e.MDEntryType, &e.MDEntryPx) }

func (e *IndexEntry) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	return decodeFields(cur, &e.MDEntryType, &e.MDEntryPx)
}

func (e *IndexEntry) EncodeTo(w *wire.Writer) error {
	e.configure()
	return encodeFields(w, &e.MDEntryType, &e.MDEntryPx)
}

// MarketSnapshot_309011 (MsgType 309011): the base prefix plus a
// NoMDEntries-driven group of IndexEntry.
type MarketSnapshot309011 struct {
	MarketSnapshotBase
	NoMDEntries field.Int[uint32]
	Entries     group.Owned[IndexEntry, *IndexEntry]
}

// NewMarketSnapshot309011 constructs a blank MarketSnapshot309011.
func NewMarketSnapshot309011() *MarketSnapshot309011 {
	return &MarketSnapshot309011{MarketSnapshotBase: newMarketSnapshotBase()}
}

func (m *MarketSnapshot309011) MsgType() uint32 { return MarketSnapshot309011MsgType }

func (m *MarketSnapshot309011) WireSize() int {
	return m.wireSize() + m.NoMDEntries.WireSize() + m.Entries.WireSize()
}

func (m *MarketSnapshot309011) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}
	if err := cur.ReadField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Decode(cur, int(m.NoMDEntries.Value()))
}

func (m *MarketSnapshot309011) EncodeBody(dst []byte) error {
	m.NoMDEntries.SetValue(uint32(m.Entries.Len()))

	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}
	if err := w.WriteField(&m.NoMDEntries); err != nil {
		return err
	}

	return m.Entries.Encode(w)
}

// MarketSnapshot_309111 (MsgType 309111): the base prefix plus a single
// trailing StockNum field, no repeating group.
type MarketSnapshot309111 struct {
	MarketSnapshotBase
	StockNum field.Int[uint32]
}

// NewMarketSnapshot309111 constructs a blank MarketSnapshot309111.
func NewMarketSnapshot309111() *MarketSnapshot309111 {
	return &MarketSnapshot309111{MarketSnapshotBase: newMarketSnapshotBase()}
}

func (m *MarketSnapshot309111) MsgType() uint32 { return MarketSnapshot309111MsgType }

func (m *MarketSnapshot309111) WireSize() int { return m.wireSize() + m.StockNum.WireSize() }

func (m *MarketSnapshot309111) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}

	return cur.ReadField(&m.StockNum)
}

func (m *MarketSnapshot309111) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}

	return w.WriteField(&m.StockNum)
}
