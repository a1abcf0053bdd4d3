// Package frame implements the packet framer (spec section 4.6): the
// two-field header, the trailing checksum, and ParseFrame/EncodeFrame,
// which validate and assemble complete self-describing frames around a
// message body.
package frame

import "github.com/yzcpleo/szse-v5-parser/endian"

// HeaderSize is the fixed byte width of the header: MsgType + BodyLength.
const HeaderSize = 8

// ChecksumSize is the fixed byte width of the trailing checksum.
const ChecksumSize = 4

// Header is the frame's two-field prefix.
type Header struct {
	MsgType    uint32
	BodyLength uint32
}

// Decode reads a Header from the first HeaderSize bytes of src. Callers
// must ensure len(src) >= HeaderSize.
func (h *Header) Decode(src []byte) {
	h.MsgType = endian.Uint32(src[0:4])
	h.BodyLength = endian.Uint32(src[4:8])
}

// Encode writes the Header into the first HeaderSize bytes of dst.
// Callers must ensure len(dst) >= HeaderSize.
func (h *Header) Encode(dst []byte) {
	endian.PutUint32(dst[0:4], h.MsgType)
	endian.PutUint32(dst[4:8], h.BodyLength)
}
