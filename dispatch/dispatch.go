// Package dispatch selects the message variant for a frame's MsgType
// (spec section 4.7). The original source uses a virtual-dispatch
// hierarchy (one base class, one derived class per message); section 9
// recommends a sealed tagged variant instead, so callers can exhaustively
// switch on MsgType without vtable indirection on the decode path. This
// package expresses that as a plain Go switch on the MsgType value
// (newByType, called from Decode) rather than an actual sum type, since
// Go has no closed-enum construct.
package dispatch

import (
	"github.com/yzcpleo/szse-v5-parser/codec/szseopts"
	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/message"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// dedupKeyed is implemented by every message whose record identity is a
// (ChannelNo, ApplSeqNum) pair (order and transaction snapshots,
// promoted from their embedded *SnapshotBase). Used only when the
// Dispatcher carries a dedup filter (szseopts.WithDedupFilter).
type dedupKeyed interface {
	DedupKey() (channelNo uint16, applSeqNum int64)
}

// Unknown wraps a frame whose MsgType matches no message variant in the
// catalog, kept so forward-compatible frames can still be passed along
// (spec section 4.7, "Unknown { msg_type, body }").
type Unknown struct {
	MsgType uint32
	Body    []byte
}

// Dispatcher decodes frame bodies into their message variant.
type Dispatcher struct {
	cfg szseopts.Config
}

// New constructs a Dispatcher. With no options, an unrecognized MsgType
// decodes to Unknown rather than failing (spec section 4.7: "Unknown
// types are not an error at the framer layer").
func New(opts ...szseopts.Option) *Dispatcher {
	return &Dispatcher{cfg: szseopts.Apply(opts...)}
}

// Decode selects the message variant for msgType, decodes body into it,
// and returns the typed value. Under WithStrict(true), an unrecognized
// msgType returns errs.ErrUnknownMsgType instead of an Unknown value.
//
// A body longer than the message declares still decodes successfully,
// but Decode returns errs.ErrTrailingBytes alongside the decoded value
// (spec section 9, "Decode of a typed message": a warning-level error
// the caller may elect to ignore). With a dedup filter attached
// (szseopts.WithDedupFilter), a decoded order or transaction snapshot
// record whose (ChannelNo, ApplSeqNum) pair was already seen returns
// errs.ErrDuplicateFrame instead.
func (d *Dispatcher) Decode(msgType uint32, body []byte) (any, error) {
	m := newByType(msgType)
	if m == nil {
		if d.cfg.Strict {
			return nil, errs.ErrUnknownMsgType
		}

		return Unknown{MsgType: msgType, Body: append([]byte(nil), body...)}, nil
	}

	if err := m.DecodeBody(body); err != nil {
		return nil, err
	}

	cur := wire.NewCursor(body)
	if _, err := cur.Take(m.WireSize()); err != nil {
		return nil, err
	}
	trailing := len(cur.Rest()) > 0

	if d.cfg.Dedup != nil {
		if dk, ok := m.(dedupKeyed); ok {
			channelNo, applSeqNum := dk.DedupKey()
			if err := d.cfg.Dedup.Track(channelNo, applSeqNum); err != nil {
				return m, err
			}
		}
	}

	if trailing {
		return m, errs.ErrTrailingBytes
	}

	return m, nil
}

// newByType returns a freshly constructed, zero-valued message for
// msgType, or nil if msgType names no known variant. This is the
// catalog's single point of truth: every message type in package
// message has exactly one case here.
func newByType(msgType uint32) message.Message {
	switch msgType {
	case message.LogonMsgType:
		return message.NewLogon()
	case message.LogoutMsgType:
		return message.NewLogout()
	case message.HeartbeatMsgType:
		return message.NewHeartbeat()
	case message.BusinessRejectMsgType:
		return message.NewBusinessReject()
	case message.ChannelHeartbeatMsgType:
		return message.NewChannelHeartbeat()
	case message.AnnouncementMsgType:
		return message.NewAnnouncement()
	case message.ReTransmitMsgType:
		return message.NewReTransmit()
	case message.MarketStatusMsgType:
		return message.NewMarketStatus()
	case message.SecurityStatusMsgType:
		return message.NewSecurityStatus()
	case message.MarketSnapshotStatisticMsgType:
		return message.NewMarketSnapshotStatistic()
	case message.MarketSnapshot300111MsgType:
		return message.NewMarketSnapshot300111()
	case message.MarketSnapshot300611MsgType:
		return message.NewMarketSnapshot300611()
	case message.MarketSnapshot306311MsgType:
		return message.NewMarketSnapshot306311()
	case message.MarketSnapshot309011MsgType:
		return message.NewMarketSnapshot309011()
	case message.MarketSnapshot309111MsgType:
		return message.NewMarketSnapshot309111()
	case message.OrderSnapshot300192MsgType:
		return message.NewOrderSnapshot300192()
	case message.OrderSnapshot300592MsgType:
		return message.NewOrderSnapshot300592()
	case message.OrderSnapshot300792MsgType:
		return message.NewOrderSnapshot300792()
	case message.TransactionSnapshot300191MsgType:
		return message.NewTransactionSnapshot300191()
	case message.TransactionSnapshot300591MsgType:
		return message.NewTransactionSnapshot300591()
	case message.TransactionSnapshot300791MsgType:
		return message.NewTransactionSnapshot300791()
	default:
		return nil
	}
}
