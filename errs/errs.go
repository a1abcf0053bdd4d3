// Package errs defines the sentinel errors returned across the codec.
//
// Every error a caller might want to branch on with errors.Is is declared
// here as a package-level value. Call sites that need to attach context
// wrap one of these with fmt.Errorf("...: %w", err); they never mint new
// sentinel values inline.
package errs

import "errors"

var (
	// ErrTruncated means the input is shorter than required to decode the
	// current primitive, group, or message.
	ErrTruncated = errors.New("szse: input truncated")

	// ErrBufferTooSmall means the destination buffer is too small to encode
	// the current primitive, group, or message.
	ErrBufferTooSmall = errors.New("szse: destination buffer too small")

	// ErrChecksumMismatch means a frame's trailing checksum does not match
	// the checksum computed over its header and body.
	ErrChecksumMismatch = errors.New("szse: checksum mismatch")

	// ErrMsgTypeMismatch means a frame's MsgType does not match the message
	// type requested by the caller.
	ErrMsgTypeMismatch = errors.New("szse: msg type mismatch")

	// ErrUnknownMsgType means no message variant matches the frame's
	// MsgType (dispatch layer only, in strict mode).
	ErrUnknownMsgType = errors.New("szse: unknown msg type")

	// ErrIndexOutOfBounds means a repeating-group index was out of range.
	ErrIndexOutOfBounds = errors.New("szse: index out of bounds")

	// ErrImmutable means a write operation was attempted on a borrowed
	// (zero-copy) view.
	ErrImmutable = errors.New("szse: write on borrowed view")

	// ErrInvalidNumber means a non-finite float was encoded into a Number
	// field.
	ErrInvalidNumber = errors.New("szse: non-finite number")

	// ErrTrailingBytes means a frame body contained more bytes than its
	// message declares. Recoverable: callers may choose to ignore it.
	ErrTrailingBytes = errors.New("szse: trailing bytes after message")

	// ErrInvalidHeaderSize means a frame header slice was not exactly 8
	// bytes.
	ErrInvalidHeaderSize = errors.New("szse: invalid header size")

	// ErrDuplicateFrame means the dedup filter has already seen a frame
	// with this identity.
	ErrDuplicateFrame = errors.New("szse: duplicate frame")

	// ErrUnknownCompression means an Announcement's RawDataFormat does not
	// name a supported compression algorithm.
	ErrUnknownCompression = errors.New("szse: unknown compression format")
)
