// Package errs defines the sentinel error values returned by the fitwire
// decoder.
//
// All errors are plain sentinel values so callers can classify failures with
// errors.Is even when the decoder wraps them with positional context:
//
//	err := fitwire.Decode(r, cb, &ctx)
//	if errors.Is(err, errs.ErrFileCRCMismatch) {
//	    // file is structurally intact but corrupt
//	}
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates the file header declares a size other
	// than the recognized 12 or 14 bytes, or the stream is too short to
	// contain the declared header.
	ErrInvalidHeaderSize = errors.New("invalid file header size")

	// ErrInvalidMagicBytes indicates the header signature is not ".FIT".
	ErrInvalidMagicBytes = errors.New("invalid file header magic bytes")

	// ErrHeaderCRCMismatch indicates a 14-byte header carries a non-zero CRC
	// that does not match the CRC computed over the first 12 header bytes.
	ErrHeaderCRCMismatch = errors.New("file header CRC mismatch")

	// ErrFileCRCMismatch indicates the trailing 2-byte file CRC does not
	// match the CRC accumulated over the header and all record bytes.
	ErrFileCRCMismatch = errors.New("file CRC mismatch")

	// ErrDataSizeMismatch indicates record decoding consumed more bytes than
	// the header's declared data size.
	ErrDataSizeMismatch = errors.New("record data exceeds declared data size")

	// ErrUnexpectedEOF indicates the stream ended before the declared data
	// size (or the trailing CRC) could be consumed.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrUnknownLocalMessage indicates a data message referenced a local
	// message type that no definition message has bound yet. The record's
	// byte length is unknowable, so the whole decode aborts.
	ErrUnknownLocalMessage = errors.New("data message for undefined local message type")

	// ErrUnresolvedDeveloperField indicates a developer field was decoded
	// before its field description message. The decoder recovers by
	// surfacing the field as opaque bytes; this sentinel exists for callers
	// that inspect per-field state.
	ErrUnresolvedDeveloperField = errors.New("developer field has no field description")

	// ErrMissingTimestampRef indicates a compressed-timestamp record
	// appeared before any absolute timestamp was seen.
	ErrMissingTimestampRef = errors.New("compressed timestamp without absolute timestamp reference")

	// ErrUnsupportedBaseType indicates a field definition carries a base
	// type code outside the fixed base-type table.
	ErrUnsupportedBaseType = errors.New("unsupported base type code")

	// ErrInvalidRecordHeader indicates a normal record header has its
	// reserved bit set.
	ErrInvalidRecordHeader = errors.New("invalid record header")

	// ErrUnknownCompression indicates an explicit decompression request
	// named a format the compress package does not support.
	ErrUnknownCompression = errors.New("unknown compression format")
)
