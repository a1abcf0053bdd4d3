package frame

import "github.com/yzcpleo/szse-v5-parser/endian"

// growTo rounds n up to the next multiple of 64, matching the original
// source's resize_package_stream policy exactly (spec section 4.6,
// "owned-mode encoder ... growth policy"). This is narrower than a
// general-purpose buffer pool's tiered growth: the spec fixes the
// rounding at a flat 64 bytes regardless of how large n is.
func growTo(n int) int {
	return (n/64 + 1) * 64
}

// Encoder reuses an internal growable buffer across repeated
// Encode calls, avoiding an allocation per call once the buffer has
// grown large enough. Reallocation preserves no logical contents across
// calls (each Encode call produces one independent frame), but callers
// holding a slice returned by a previous Encode must not assume it
// survives the next call if growth occurred (spec section 4.6).
type Encoder struct {
	buf []byte
}

// Encode assembles a frame into the Encoder's internal buffer, growing
// it (rounded up to the next 64 bytes) if needed, and returns the
// portion holding the encoded frame. The returned slice aliases the
// Encoder's internal buffer and is only valid until the next Encode
// call.
func (e *Encoder) Encode(msgType uint32, body []byte) []byte {
	total := HeaderSize + len(body) + ChecksumSize
	if cap(e.buf) < total {
		e.buf = make([]byte, growTo(total))
	}
	buf := e.buf[:total]

	h := Header{MsgType: msgType, BodyLength: uint32(len(body))}
	h.Encode(buf)
	copy(buf[HeaderSize:HeaderSize+len(body)], body)

	sum := computeChecksum(buf[:total-ChecksumSize])
	endian.PutUint32(buf[total-ChecksumSize:total], sum)

	return buf
}
