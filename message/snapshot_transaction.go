package message

import (
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// TransactionSnapshotBase is the field prefix shared by every
// TransactionSnapshot_* message (spec section 4.5): ChannelNo through
// TransactTime. All three concrete transaction-snapshot messages are
// this prefix verbatim, distinguished only by MsgType.
type TransactionSnapshotBase struct {
	ChannelNo        field.Int[uint16]
	ApplSeqNum       field.Int[int64]
	MDStreamID       field.String
	BidApplSeqNum    field.Int[int64]
	OfferApplSeqNum  field.Int[int64]
	SecurityID       field.String
	SecurityIDSource field.String
	LastPx           field.Number
	LastQty          field.Number
	ExecType         field.String
	TransactTime     field.LocalTimeStamp
}

func newTransactionSnapshotBase() TransactionSnapshotBase {
	return TransactionSnapshotBase{
		MDStreamID:       field.NewFixedString(3),
		SecurityID:       field.NewSecurityID(),
		SecurityIDSource: field.NewFixedString(4),
		LastPx:           field.NewPrice(),
		LastQty:          field.NewQty(),
		ExecType:         field.NewFixedString(1),
	}
}

func (b *TransactionSnapshotBase) wireSize() int {
	return sumSizes(&b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.BidApplSeqNum, &b.OfferApplSeqNum,
		&b.SecurityID, &b.SecurityIDSource, &b.LastPx, &b.LastQty, &b.ExecType, &b.TransactTime)
}

func (b *TransactionSnapshotBase) decode(cur *wire.Cursor) error {
	return decodeFields(cur, &b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.BidApplSeqNum, &b.OfferApplSeqNum,
		&b.SecurityID, &b.SecurityIDSource, &b.LastPx, &b.LastQty, &b.ExecType, &b.TransactTime)
}

func (b *TransactionSnapshotBase) encode(w *wire.Writer) error {
	return encodeFields(w, &b.ChannelNo, &b.ApplSeqNum, &b.MDStreamID, &b.BidApplSeqNum, &b.OfferApplSeqNum,
		&b.SecurityID, &b.SecurityIDSource, &b.LastPx, &b.LastQty, &b.ExecType, &b.TransactTime)
}

// DedupKey identifies this record for ReTransmit replay de-duplication
// (spec section 4.5, ReTransmit): a resent transaction record carries the
// same ChannelNo/ApplSeqNum pair as the original.
func (b *TransactionSnapshotBase) DedupKey() (channelNo uint16, applSeqNum int64) {
	return b.ChannelNo.Value(), b.ApplSeqNum.Value()
}

// TransactionSnapshot_300191 (MsgType 300191): the base prefix, unchanged.
type TransactionSnapshot300191 struct {
	TransactionSnapshotBase
}

// NewTransactionSnapshot300191 constructs a blank TransactionSnapshot300191.
func NewTransactionSnapshot300191() *TransactionSnapshot300191 {
	return &TransactionSnapshot300191{TransactionSnapshotBase: newTransactionSnapshotBase()}
}

func (m *TransactionSnapshot300191) MsgType() uint32 { return TransactionSnapshot300191MsgType }
func (m *TransactionSnapshot300191) WireSize() int    { return m.wireSize() }
func (m *TransactionSnapshot300191) DecodeBody(body []byte) error {
	return m.decode(wire.NewCursor(body))
}
func (m *TransactionSnapshot300191) EncodeBody(dst []byte) error {
	return m.encode(wire.NewWriter(dst))
}

// TransactionSnapshot_300591 (MsgType 300591): the base prefix, unchanged.
type TransactionSnapshot300591 struct {
	TransactionSnapshotBase
}

// NewTransactionSnapshot300591 constructs a blank TransactionSnapshot300591.
func NewTransactionSnapshot300591() *TransactionSnapshot300591 {
	return &TransactionSnapshot300591{TransactionSnapshotBase: newTransactionSnapshotBase()}
}

func (m *TransactionSnapshot300591) MsgType() uint32 { return TransactionSnapshot300591MsgType }
func (m *TransactionSnapshot300591) WireSize() int    { return m.wireSize() }
func (m *TransactionSnapshot300591) DecodeBody(body []byte) error {
	return m.decode(wire.NewCursor(body))
}
func (m *TransactionSnapshot300591) EncodeBody(dst []byte) error {
	return m.encode(wire.NewWriter(dst))
}

// TransactionSnapshot_300791 (MsgType 300791): the base prefix, unchanged.
type TransactionSnapshot300791 struct {
	TransactionSnapshotBase
}

// NewTransactionSnapshot300791 constructs a blank TransactionSnapshot300791.
func NewTransactionSnapshot300791() *TransactionSnapshot300791 {
	return &TransactionSnapshot300791{TransactionSnapshotBase: newTransactionSnapshotBase()}
}

func (m *TransactionSnapshot300791) MsgType() uint32 { return TransactionSnapshot300791MsgType }
func (m *TransactionSnapshot300791) WireSize() int    { return m.wireSize() }
func (m *TransactionSnapshot300791) DecodeBody(body []byte) error {
	return m.decode(wire.NewCursor(body))
}
func (m *TransactionSnapshot300791) EncodeBody(dst []byte) error {
	return m.encode(wire.NewWriter(dst))
}
