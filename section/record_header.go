package section

import "github.com/openfit/fitwire/errs"

// Record header bit layout. A set high bit selects the compressed-timestamp
// form, which repacks the low 7 bits into a 2-bit local message type and a
// 5-bit time offset; the normal form uses bit 6 for definition-vs-data,
// bit 5 for the developer-data flag, and the low 4 bits for the local
// message type.
const (
	recordHdrCompressed    = 0x80
	recordHdrDefinition    = 0x40
	recordHdrDeveloperData = 0x20
	recordHdrReserved      = 0x10
	recordHdrLocalMask     = 0x0F

	compressedLocalMask  = 0x60
	compressedLocalShift = 5
	compressedOffsetMask = 0x1F
)

// MaxLocalMessageTypes is the number of local message type slots a normal
// record header can address.
const MaxLocalMessageTypes = 16

// RecordHeader is the one-byte header that starts every record.
type RecordHeader uint8

// IsCompressedTimestamp reports whether the header uses the
// compressed-timestamp form.
func (h RecordHeader) IsCompressedTimestamp() bool {
	return h&recordHdrCompressed != 0
}

// IsDefinition reports whether a normal header introduces a definition
// message. Always false for compressed-timestamp headers, which carry data
// messages only.
func (h RecordHeader) IsDefinition() bool {
	return !h.IsCompressedTimestamp() && h&recordHdrDefinition != 0
}

// HasDeveloperData reports whether a definition message is followed by a
// developer field block. Only meaningful on definition headers.
func (h RecordHeader) HasDeveloperData() bool {
	return !h.IsCompressedTimestamp() && h&recordHdrDeveloperData != 0
}

// LocalMessageType extracts the local message type for either header form.
func (h RecordHeader) LocalMessageType() uint8 {
	if h.IsCompressedTimestamp() {
		return uint8(h&compressedLocalMask) >> compressedLocalShift
	}

	return uint8(h & recordHdrLocalMask)
}

// TimeOffset extracts the 5-bit time offset of a compressed-timestamp
// header.
func (h RecordHeader) TimeOffset() uint8 {
	return uint8(h & compressedOffsetMask)
}

// Validate rejects normal headers with the reserved bit set.
func (h RecordHeader) Validate() error {
	if !h.IsCompressedTimestamp() && h&recordHdrReserved != 0 {
		return errs.ErrInvalidRecordHeader
	}

	return nil
}

// NewDefinitionHeader builds a normal definition-message header for the
// given local message type, with the developer-data bit set when hasDev is
// true.
func NewDefinitionHeader(localType uint8, hasDev bool) RecordHeader {
	h := RecordHeader(recordHdrDefinition | (localType & recordHdrLocalMask))
	if hasDev {
		h |= recordHdrDeveloperData
	}

	return h
}

// NewDataHeader builds a normal data-message header for the given local
// message type.
func NewDataHeader(localType uint8) RecordHeader {
	return RecordHeader(localType & recordHdrLocalMask)
}

// NewCompressedHeader builds a compressed-timestamp data header from a
// 2-bit local message type and a 5-bit time offset.
func NewCompressedHeader(localType, offset uint8) RecordHeader {
	return RecordHeader(recordHdrCompressed |
		(localType<<compressedLocalShift)&compressedLocalMask |
		offset&compressedOffsetMask)
}
