package frame

import (
	"fmt"

	"github.com/yzcpleo/szse-v5-parser/endian"
	"github.com/yzcpleo/szse-v5-parser/errs"
)

// Frame is a parsed view over a complete wire frame: header fields plus
// the body slice, which aliases the input buffer (spec section 4.6,
// step 6) rather than copying it.
type Frame struct {
	MsgType    uint32
	BodyLength uint32
	Body       []byte
	// Total is the number of input bytes this frame consumed:
	// HeaderSize + BodyLength + ChecksumSize.
	Total int
}

// NeedMoreError reports that buf does not yet hold a complete frame.
// Hint is the minimum total length required to try again (spec section
// 4.6, step 1 and step 3's NeedMore(hint) signal).
type NeedMoreError struct {
	Hint int
}

func (e *NeedMoreError) Error() string {
	return fmt.Sprintf("szse: need more bytes, have less than %d", e.Hint)
}

// Unwrap lets callers branch on errors.Is(err, errs.ErrTruncated) without
// caring whether they hold a *NeedMoreError.
func (e *NeedMoreError) Unwrap() error { return errs.ErrTruncated }

// ParseFrame validates and parses a single frame from the front of buf,
// following spec section 4.6's six-step decode algorithm. buf may
// contain more than one frame or a partial one; only the first frame's
// worth of bytes is consumed, reported as Frame.Total.
func ParseFrame(buf []byte) (Frame, error) {
	if len(buf) < HeaderSize {
		return Frame{}, &NeedMoreError{Hint: HeaderSize}
	}

	var h Header
	h.Decode(buf)

	total := HeaderSize + int(h.BodyLength) + ChecksumSize
	if len(buf) < total {
		return Frame{}, &NeedMoreError{Hint: total}
	}

	wantChecksum := endian.Uint32(buf[total-ChecksumSize : total])
	gotChecksum := computeChecksum(buf[:total-ChecksumSize])
	if gotChecksum != wantChecksum {
		return Frame{}, errs.ErrChecksumMismatch
	}

	return Frame{
		MsgType:    h.MsgType,
		BodyLength: h.BodyLength,
		Body:       buf[HeaderSize : HeaderSize+int(h.BodyLength)],
		Total:      total,
	}, nil
}

// EncodeFrame assembles a complete frame around body: header, body
// verbatim, then a checksum computed over everything preceding it (spec
// section 4.6, encode steps 3-5).
func EncodeFrame(msgType uint32, body []byte) []byte {
	total := HeaderSize + len(body) + ChecksumSize
	buf := make([]byte, total)

	h := Header{MsgType: msgType, BodyLength: uint32(len(body))}
	h.Encode(buf)
	copy(buf[HeaderSize:HeaderSize+len(body)], body)

	sum := computeChecksum(buf[:total-ChecksumSize])
	endian.PutUint32(buf[total-ChecksumSize:total], sum)

	return buf
}
