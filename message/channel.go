package message

import (
	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// ChannelHeartbeat (MsgType 390095): ChannelNo, ApplLastSeqNum, EndOfChannel.
type ChannelHeartbeat struct {
	ChannelNo      field.Int[uint16]
	ApplLastSeqNum field.Int[int64]
	EndOfChannel   field.Boolean
}

// NewChannelHeartbeat constructs a blank ChannelHeartbeat.
func NewChannelHeartbeat() *ChannelHeartbeat { return &ChannelHeartbeat{} }

func (m *ChannelHeartbeat) MsgType() uint32 { return ChannelHeartbeatMsgType }

func (m *ChannelHeartbeat) WireSize() int {
	return sumSizes(&m.ChannelNo, &m.ApplLastSeqNum, &m.EndOfChannel)
}

func (m *ChannelHeartbeat) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, &m.ChannelNo, &m.ApplLastSeqNum, &m.EndOfChannel)
}

func (m *ChannelHeartbeat) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, &m.ChannelNo, &m.ApplLastSeqNum, &m.EndOfChannel)
}

// Announcement (MsgType 390012): OrigTime, ChannelNo, NewsID, Headline,
// RawDataFormat, RawDataLength, and a trailing RawData blob of
// RawDataLength bytes.
//
// The original source's Write method contains an inverted bound check
// before its memcpy (spec section 9, Open Questions): it copies RawData
// only when the destination is *too small*. This implementation copies
// RawData when the destination has enough room and fails with
// errs.ErrBufferTooSmall otherwise, which is what spec section 9 says a
// correct port must do.
type Announcement struct {
	OrigTime       field.LocalTimeStamp
	ChannelNo      field.Int[uint16]
	NewsID         field.String
	Headline       field.String
	RawDataFormat  field.String
	RawDataLength  field.Int[uint32]
	RawData        []byte
}

// NewAnnouncement constructs a blank Announcement.
func NewAnnouncement() *Announcement {
	return &Announcement{
		NewsID:        field.NewSecurityID(),
		Headline:      field.NewFixedString(128),
		RawDataFormat: field.NewSecurityID(),
	}
}

func (m *Announcement) MsgType() uint32 { return AnnouncementMsgType }

func (m *Announcement) WireSize() int {
	return sumSizes(&m.OrigTime, &m.ChannelNo, &m.NewsID, &m.Headline, &m.RawDataFormat, &m.RawDataLength) + len(m.RawData)
}

func (m *Announcement) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	if err := decodeFields(cur, &m.OrigTime, &m.ChannelNo, &m.NewsID, &m.Headline, &m.RawDataFormat, &m.RawDataLength); err != nil {
		return err
	}

	raw, err := cur.Take(int(m.RawDataLength.Value()))
	if err != nil {
		return err
	}
	m.RawData = append([]byte(nil), raw...)

	return nil
}

func (m *Announcement) EncodeBody(dst []byte) error {
	m.RawDataLength.SetValue(uint32(len(m.RawData)))

	w := wire.NewWriter(dst)
	if err := encodeFields(w, &m.OrigTime, &m.ChannelNo, &m.NewsID, &m.Headline, &m.RawDataFormat, &m.RawDataLength); err != nil {
		return err
	}

	if w.Remaining() < len(m.RawData) {
		return errs.ErrBufferTooSmall
	}

	return w.WriteBytes(m.RawData)
}

// ResendType enumerates ReTransmit.ResendType values.
type ResendType uint8

const (
	ResendTypeTickData     ResendType = 1
	ResendTypeAnnouncement ResendType = 2
)

// ResendStatus enumerates ReTransmit.ResendStatus values.
type ResendStatus uint8

const (
	ResendStatusComplete     ResendStatus = 1
	ResendStatusPartial      ResendStatus = 2
	ResendStatusUnauthorized ResendStatus = 3
	ResendStatusUnavailable  ResendStatus = 4
)

// ReTransmit (MsgType 390094): ResendType, ChannelNo, ApplBegSeqNum,
// ApplEndSeqNum, NewsID, ResendStatus, RejectText.
type ReTransmit struct {
	ResendType    field.Int[uint8]
	ChannelNo     field.Int[uint16]
	ApplBegSeqNum field.Int[int64]
	ApplEndSeqNum field.Int[int64]
	NewsID        field.String
	ResendStatus  field.Int[uint8]
	RejectText    field.String
}

// NewReTransmit constructs a blank ReTransmit.
func NewReTransmit() *ReTransmit {
	return &ReTransmit{
		NewsID:     field.NewSecurityID(),
		RejectText: field.NewFixedString(16),
	}
}

func (m *ReTransmit) MsgType() uint32 { return ReTransmitMsgType }

func (m *ReTransmit) WireSize() int {
	return sumSizes(&m.ResendType, &m.ChannelNo, &m.ApplBegSeqNum, &m.ApplEndSeqNum, &m.NewsID, &m.ResendStatus, &m.RejectText)
}

func (m *ReTransmit) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, &m.ResendType, &m.ChannelNo, &m.ApplBegSeqNum, &m.ApplEndSeqNum, &m.NewsID, &m.ResendStatus, &m.RejectText)
}

func (m *ReTransmit) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, &m.ResendType, &m.ChannelNo, &m.ApplBegSeqNum, &m.ApplEndSeqNum, &m.NewsID, &m.ResendStatus, &m.RejectText)
}
