package message

import (
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/group"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// MarketStatus (MsgType 390019): OrigTime, ChannelNo, MarketID,
// MarketSegmentID, TradingSessionID, TradingSessionSubID, TradSesStatus,
// TradSesStartTime, TradSesEndTime, ThresholdAmount, PosAmt, AmountStatus.
type MarketStatus struct {
	OrigTime            field.LocalTimeStamp
	ChannelNo           field.Int[uint16]
	MarketID            field.String
	MarketSegmentID     field.String
	TradingSessionID    field.String
	TradingSessionSubID field.String
	TradSesStatus       field.Int[uint16]
	TradSesStartTime    field.LocalTimeStamp
	TradSesEndTime      field.LocalTimeStamp
	ThresholdAmount     field.Number
	PosAmt              field.Number
	AmountStatus        field.String
}

// NewMarketStatus constructs a blank MarketStatus.
func NewMarketStatus() *MarketStatus {
	return &MarketStatus{
		MarketID:            field.NewFixedString(8),
		MarketSegmentID:     field.NewFixedString(8),
		TradingSessionID:    field.NewFixedString(4),
		TradingSessionSubID: field.NewFixedString(4),
		ThresholdAmount:     field.NewAmt(),
		PosAmt:              field.NewAmt(),
		AmountStatus:        field.NewFixedString(1),
	}
}

func (m *MarketStatus) MsgType() uint32 { return MarketStatusMsgType }

func (m *MarketStatus) fields() []wireField {
	return []wireField{
		&m.OrigTime, &m.ChannelNo, &m.MarketID, &m.MarketSegmentID,
		&m.TradingSessionID, &m.TradingSessionSubID, &m.TradSesStatus,
		&m.TradSesStartTime, &m.TradSesEndTime, &m.ThresholdAmount,
		&m.PosAmt, &m.AmountStatus,
	}
}

func (m *MarketStatus) WireSize() int {
	return sumSizes(m.fields()...)
}

func (m *MarketStatus) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, m.fields()...)
}

func (m *MarketStatus) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, m.fields()...)
}

// SecuritySwitch is a SecurityStatus repeating-group element: SwitchID,
// SwitchStatus.
type SecuritySwitch struct {
	SwitchID     field.Int[uint16]
	SwitchStatus field.Boolean
}

func (e *SecuritySwitch) WireSize() int { return sumSizes(&e.SwitchID, &e.SwitchStatus) }

func (e *SecuritySwitch) DecodeFrom(cur *wire.Cursor) error {
	return decodeFields(cur, &e.SwitchID, &e.SwitchStatus)
}

func (e *SecuritySwitch) EncodeTo(w *wire.Writer) error {
	return encodeFields(w, &e.SwitchID, &e.SwitchStatus)
}

// SecurityStatus (MsgType 390013): OrigTime, ChannelNo, SecurityID,
// SecurityIDSource, FinancialStatus, and a NoSwitch-driven repeating
// group of SecuritySwitch.
type SecurityStatus struct {
	OrigTime         field.LocalTimeStamp
	ChannelNo        field.Int[uint16]
	SecurityID       field.String
	SecurityIDSource field.String
	FinancialStatus  field.String
	NoSwitch         field.Int[uint32]
	Switches         group.Owned[SecuritySwitch, *SecuritySwitch]
}

// NewSecurityStatus constructs a blank SecurityStatus.
func NewSecurityStatus() *SecurityStatus {
	return &SecurityStatus{
		SecurityID:       field.NewSecurityID(),
		SecurityIDSource: field.NewFixedString(4),
		FinancialStatus:  field.NewFixedString(8),
	}
}

func (m *SecurityStatus) MsgType() uint32 { return SecurityStatusMsgType }

func (m *SecurityStatus) WireSize() int {
	return sumSizes(&m.OrigTime, &m.ChannelNo, &m.SecurityID, &m.SecurityIDSource, &m.FinancialStatus, &m.NoSwitch) + m.Switches.WireSize()
}

func (m *SecurityStatus) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := decodeFields(cur, &m.OrigTime, &m.ChannelNo, &m.SecurityID, &m.SecurityIDSource, &m.FinancialStatus, &m.NoSwitch); err != nil {
		return err
	}

	return m.Switches.Decode(cur, int(m.NoSwitch.Value()))
}

func (m *SecurityStatus) EncodeBody(dst []byte) error {
	m.NoSwitch.SetValue(uint32(m.Switches.Len()))

	w := wire.NewWriter(dst)
	if err := encodeFields(w, &m.OrigTime, &m.ChannelNo, &m.SecurityID, &m.SecurityIDSource, &m.FinancialStatus, &m.NoSwitch); err != nil {
		return err
	}

	return m.Switches.Encode(w)
}

// StreamStat is a MarketSnapshotStatistic repeating-group element:
// MDStreamID, StockNum, TradingPhaseCode.
type StreamStat struct {
	MDStreamID       field.String
	StockNum         field.Int[uint32]
	TradingPhaseCode field.String
}

// WireSize reports this element's encoded width. Safe to call before
// DecodeFrom: the String fields below are sized by configure, which
// WireSize, DecodeFrom and EncodeTo all call first.
func (e *StreamStat) WireSize() int {
	e.configure()
	return sumSizes(&e.MDStreamID, &e.StockNum, &e.TradingPhaseCode)
}

// configure pins the declared width of this element's String fields. A
// group decodes elements from a freshly zeroed value (group.Element's
// pointer-constraint pattern), so each composite element is responsible
// for sizing its own variable-width fields rather than relying on a
// constructor having run first.
func (e *StreamStat) configure() {
	if e.MDStreamID.WireSize() == 0 {
		e.MDStreamID = field.NewFixedString(3)
	}
	if e.TradingPhaseCode.WireSize() == 0 {
		e.TradingPhaseCode = field.NewFixedString(8)
	}
}

func (e *StreamStat) DecodeFrom(cur *wire.Cursor) error {
	e.configure()
	return decodeFields(cur, &e.MDStreamID, &e.StockNum, &e.TradingPhaseCode)
}

func (e *StreamStat) EncodeTo(w *wire.Writer) error {
	e.configure()
	return encodeFields(w, &e.MDStreamID, &e.StockNum, &e.TradingPhaseCode)
}

// MarketSnapshotStatistic (MsgType 390090): OrigTime, ChannelNo, and a
// NumInGroup-driven repeating group of StreamStat.
type MarketSnapshotStatistic struct {
	OrigTime   field.LocalTimeStamp
	ChannelNo  field.Int[uint16]
	NoMDStream field.Int[uint32]
	Streams    group.Owned[StreamStat, *StreamStat]
}

// NewMarketSnapshotStatistic constructs a blank MarketSnapshotStatistic.
func NewMarketSnapshotStatistic() *MarketSnapshotStatistic {
	return &MarketSnapshotStatistic{}
}

func (m *MarketSnapshotStatistic) MsgType() uint32 { return MarketSnapshotStatisticMsgType }

func (m *MarketSnapshotStatistic) WireSize() int {
	return sumSizes(&m.OrigTime, &m.ChannelNo, &m.NoMDStream) + m.Streams.WireSize()
}

func (m *MarketSnapshotStatistic) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := decodeFields(cur, &m.OrigTime, &m.ChannelNo, &m.NoMDStream); err != nil {
		return err
	}

	return m.Streams.Decode(cur, int(m.NoMDStream.Value()))
}

func (m *MarketSnapshotStatistic) EncodeBody(dst []byte) error {
	m.NoMDStream.SetValue(uint32(m.Streams.Len()))

	w := wire.NewWriter(dst)
	if err := encodeFields(w, &m.OrigTime, &m.ChannelNo, &m.NoMDStream); err != nil {
		return err
	}

	return m.Streams.Encode(w)
}
