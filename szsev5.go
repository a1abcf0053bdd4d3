// Package szsev5 provides a binary codec for the Shenzhen Stock Exchange
// V5 market-data wire protocol: packet framing with a checksum trailer,
// a composite message catalog covering session control, channel control,
// market status, and market/order/transaction snapshots.
//
// # Core Features
//
//   - Zero-copy frame parsing: ParseFrame aliases the input buffer rather
//     than copying the body
//   - A sealed catalog of message variants selected by MsgType, decoded
//     through the dispatch package's switch on MsgType
//   - Owned, mutable message values: decoding copies every field out of
//     the body, so a decoded message stays valid after the input buffer
//     changes. Message types do not offer a zero-copy borrowed view; the
//     only zero-copy pieces are the Frame body slice and group.Borrowed,
//     which no message type uses
//   - Announcement payload decompression (S2, LZ4, Zstd) via the
//     announcement package
//   - ReTransmit replay de-duplication: attach a codec.DedupFilter to a
//     dispatch.Dispatcher via szseopts.WithDedupFilter to reject repeat
//     order/transaction snapshot records by (ChannelNo, ApplSeqNum)
//
// # Basic Usage
//
// Parsing a frame and decoding its message:
//
//	import "github.com/yzcpleo/szse-v5-parser"
//
//	frame, err := szsev5.ParseFrame(buf)
//	if err != nil {
//	    var needMore *szsev5.NeedMoreError
//	    if errors.As(err, &needMore) {
//	        // wait until buf holds at least needMore.Hint bytes
//	    }
//	    return err
//	}
//
//	msg, err := szsev5.DecodeMessage(frame.MsgType, frame.Body)
//	if err != nil {
//	    return err
//	}
//
// Encoding a message back into a frame:
//
//	hb := message.NewHeartbeat()
//	out, err := szsev5.EncodeMessage(hb)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the frame,
// dispatch, and message packages. For fine-grained control — strict
// dispatch mode, reusable encoder buffers, direct field access on a
// specific message type — use those packages directly.
package szsev5

import (
	"github.com/yzcpleo/szse-v5-parser/dispatch"
	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/yzcpleo/szse-v5-parser/frame"
	"github.com/yzcpleo/szse-v5-parser/message"
)

// Frame is a parsed view over a complete wire frame; see frame.Frame.
type Frame = frame.Frame

// NeedMoreError reports that a buffer does not yet hold a complete
// frame; see frame.NeedMoreError.
type NeedMoreError = frame.NeedMoreError

// Unknown wraps a frame whose MsgType matches no message variant in the
// catalog; see dispatch.Unknown.
type Unknown = dispatch.Unknown

var defaultDispatcher = dispatch.New()

// ParseFrame validates and parses a single frame from the front of buf.
// It returns a *NeedMoreError if buf is too short to hold a complete
// frame, or errs.ErrChecksumMismatch if the frame's checksum does not
// match.
func ParseFrame(buf []byte) (Frame, error) {
	return frame.ParseFrame(buf)
}

// EncodeMessage encodes msg's body and wraps it in a complete frame
// (header, body, checksum).
func EncodeMessage(msg message.Message) ([]byte, error) {
	body := make([]byte, msg.WireSize())
	if err := msg.EncodeBody(body); err != nil {
		return nil, err
	}

	return frame.EncodeFrame(msg.MsgType(), body), nil
}

// DecodeMessage decodes body into the message variant named by msgType.
// An unrecognized msgType decodes to an Unknown value rather than
// failing; use dispatch.New(szseopts.WithStrict(true)) directly for
// strict behavior.
func DecodeMessage(msgType uint32, body []byte) (any, error) {
	return defaultDispatcher.Decode(msgType, body)
}

// SizeOfMessage returns the number of bytes msg's body currently encodes
// to, not counting the 8-byte header or 4-byte checksum trailer.
func SizeOfMessage(msg message.Message) int {
	return msg.WireSize()
}

// DecodeFrameMessage is a convenience wrapper that parses a frame from
// buf and decodes its body in one call, returning the parsed frame
// alongside the decoded message so callers can inspect Frame.Total to
// advance past the consumed bytes.
func DecodeFrameMessage(buf []byte) (Frame, any, error) {
	f, err := frame.ParseFrame(buf)
	if err != nil {
		return Frame{}, nil, err
	}

	msg, err := DecodeMessage(f.MsgType, f.Body)
	if err != nil {
		return Frame{}, nil, err
	}

	return f, msg, nil
}

// MatchMsgType reports whether frame's MsgType equals want, returning
// errs.ErrMsgTypeMismatch otherwise. Useful when a caller expects a
// specific message type and wants to fail fast rather than type-switch
// on the decoded value.
func MatchMsgType(f Frame, want uint32) error {
	if f.MsgType != want {
		return errs.ErrMsgTypeMismatch
	}

	return nil
}
