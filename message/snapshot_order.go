package message

import (
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// OrderSnapshotBase is the field prefix shared by every OrderSnapshot_*
// message (spec section 4.5): ChannelNo through TransactTime.
type OrderSnapshotBase struct {
	ChannelNo        field.Int[uint16]
	ApplSeqNum       field.Int[int64]
	MDStreamID       field.String
	SecurityID       field.String
	SecurityIDSource field.String
	Price            field.Number
	OrderQty         field.Number
	Side             field.String
	TransactTime     field.LocalTimeStamp
}

func newOrderSnapshotBase() OrderSnapshotBase {
	return OrderSnapshotBase{
		MDStreamID:       field.NewFixedString(3),
		SecurityID:       field.NewSecurityID(),
		SecurityIDSource: field.NewFixedString(4),
		Price:            field.NewPrice(),
		OrderQty:         field.NewQty(),
		Side:             field.NewFixedString(1),
	}
}

func (b *OrderSnapshotBase) wireSize() int {
	return sumSizes(&b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.Price, &b.OrderQty, &b.Side, &b.TransactTime)
}

func (b *OrderSnapshotBase) decode(cur *wire.Cursor) error {
	return decodeFields(cur, &b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.Price, &b.OrderQty, &b.Side, &b.TransactTime)
}

func (b *OrderSnapshotBase) encode(w *wire.Writer) error {
	return encodeFields(w, &b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.SecurityID, &b.SecurityIDSource,
		&b.Price, &b.OrderQty, &b.Side, &b.TransactTime)
}

// DedupKey identifies this record for ReTransmit replay de-duplication
// (spec section 4.5, ReTransmit): a resent order record carries the same
// ChannelNo/ApplSeqNum pair as the original.
func (b *OrderSnapshotBase) DedupKey() (channelNo uint16, applSeqNum int64) {
	return b.ChannelNo.Value(), b.ApplSeqNum.Value()
}

// OrderSnapshot_300192 (MsgType 300192): the base prefix plus OrdType.
type OrderSnapshot300192 struct {
	OrderSnapshotBase
	OrdType field.String
}

// NewOrderSnapshot300192 constructs a blank OrderSnapshot300192.
func NewOrderSnapshot300192() *OrderSnapshot300192 {
	return &OrderSnapshot300192{
		OrderSnapshotBase: newOrderSnapshotBase(),
		OrdType:           field.NewFixedString(2),
	}
}

func (m *OrderSnapshot300192) MsgType() uint32 { return OrderSnapshot300192MsgType }

func (m *OrderSnapshot300192) WireSize() int { return m.wireSize() + m.OrdType.WireSize() }

func (m *OrderSnapshot300192) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}

	return cur.ReadField(&m.OrdType)
}

func (m *OrderSnapshot300192) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}

	return w.WriteField(&m.OrdType)
}

// OrderSnapshot_300592 (MsgType 300592): the base prefix plus ConfirmID
// (empty means an intent quote, non-empty a priced quote), Contactor,
// and ContactInfo.
type OrderSnapshot300592 struct {
	OrderSnapshotBase
	ConfirmID   field.String
	Contactor   field.String
	ContactInfo field.String
}

// NewOrderSnapshot300592 constructs a blank OrderSnapshot300592.
func NewOrderSnapshot300592() *OrderSnapshot300592 {
	return &OrderSnapshot300592{
		OrderSnapshotBase: newOrderSnapshotBase(),
		ConfirmID:         field.NewFixedString(8),
		Contactor:         field.NewFixedString(12),
		ContactInfo:       field.NewFixedString(30),
	}
}

func (m *OrderSnapshot300592) MsgType() uint32 { return OrderSnapshot300592MsgType }

func (m *OrderSnapshot300592) WireSize() int {
	return m.wireSize() + sumSizes(&m.ConfirmID, &m.Contactor, &m.ContactInfo)
}

func (m *OrderSnapshot300592) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}

	return decodeFields(cur, &m.ConfirmID, &m.Contactor, &m.ContactInfo)
}

func (m *OrderSnapshot300592) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}

	return encodeFields(w, &m.ConfirmID, &m.Contactor, &m.ContactInfo)
}

// OrderSnapshot_300792 (MsgType 300792): the base prefix plus
// ExpirationDays and ExpirationType (securities-lending term fields).
type OrderSnapshot300792 struct {
	OrderSnapshotBase
	ExpirationDays field.Int[uint16]
	ExpirationType field.Int[uint8]
}

// NewOrderSnapshot300792 constructs a blank OrderSnapshot300792.
func NewOrderSnapshot300792() *OrderSnapshot300792 {
	return &OrderSnapshot300792{OrderSnapshotBase: newOrderSnapshotBase()}
}

func (m *OrderSnapshot300792) MsgType() uint32 { return OrderSnapshot300792MsgType }

func (m *OrderSnapshot300792) WireSize() int {
	return m.wireSize() + sumSizes(&m.ExpirationDays, &m.ExpirationType)
}

func (m *OrderSnapshot300792) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := m.decode(cur); err != nil {
		return err
	}

	return decodeFields(cur, &m.ExpirationDays, &m.ExpirationType)
}

func (m *OrderSnapshot300792) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	if err := m.encode(w); err != nil {
		return err
	}

	return encodeFields(w, &m.ExpirationDays, &m.ExpirationType)
}
