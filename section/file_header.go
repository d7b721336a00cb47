package section

import (
	"fmt"

	"github.com/openfit/fitwire/crc"
	"github.com/openfit/fitwire/errs"
)

const (
	// MinFileHeaderSize is the size of the legacy header without a CRC.
	MinFileHeaderSize = 12
	// MaxFileHeaderSize is the size of the header that carries a CRC over
	// its first 12 bytes.
	MaxFileHeaderSize = 14
)

// magic is the fixed data-type signature at header bytes 8-11.
var magic = [4]byte{'.', 'F', 'I', 'T'}

// FileHeader is the parsed FIT file header.
//
// The header is always little-endian regardless of the architecture bytes
// of the definition messages that follow it.
type FileHeader struct {
	// Size is the declared header size, 12 or 14 bytes.
	Size uint8
	// ProtocolVersion is the encoder's protocol version byte.
	ProtocolVersion uint8
	// ProfileVersion is the encoder's profile version.
	ProfileVersion uint16
	// DataSize is the number of record bytes between the header and the
	// trailing CRC.
	DataSize uint32
	// CRC is the stored header CRC, present only with a 14-byte header.
	// A stored value of zero means the encoder skipped the check.
	CRC uint16
}

// Parse parses and validates a complete file header.
//
// Parameters:
//   - data: the full header bytes (len must equal the declared size)
//
// Returns:
//   - error: ErrInvalidHeaderSize for an unrecognized or truncated header,
//     ErrInvalidMagicBytes if the signature is not ".FIT", or
//     ErrHeaderCRCMismatch if a non-zero stored CRC does not match the CRC
//     of the first 12 bytes.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) < MinFileHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	size := data[0]
	if size != MinFileHeaderSize && size != MaxFileHeaderSize {
		return fmt.Errorf("%w: %d", errs.ErrInvalidHeaderSize, size)
	}
	if len(data) < int(size) {
		return errs.ErrInvalidHeaderSize
	}

	if data[8] != magic[0] || data[9] != magic[1] || data[10] != magic[2] || data[11] != magic[3] {
		return errs.ErrInvalidMagicBytes
	}

	h.Size = size
	h.ProtocolVersion = data[1]
	h.ProfileVersion = uint16(data[2]) | uint16(data[3])<<8
	h.DataSize = uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24
	h.CRC = 0

	if size == MaxFileHeaderSize {
		h.CRC = uint16(data[12]) | uint16(data[13])<<8
		// A stored CRC of zero means the writer opted out of the check.
		if h.CRC != 0 && crc.Checksum(data[:MinFileHeaderSize]) != h.CRC {
			return errs.ErrHeaderCRCMismatch
		}
	}

	return nil
}

// Bytes serializes the header. For a 14-byte header the CRC field is
// recomputed over the first 12 bytes, keeping the output self-consistent.
func (h *FileHeader) Bytes() []byte {
	size := h.Size
	if size != MinFileHeaderSize && size != MaxFileHeaderSize {
		size = MaxFileHeaderSize
	}

	b := make([]byte, size)
	b[0] = size
	b[1] = h.ProtocolVersion
	b[2] = byte(h.ProfileVersion)
	b[3] = byte(h.ProfileVersion >> 8)
	b[4] = byte(h.DataSize)
	b[5] = byte(h.DataSize >> 8)
	b[6] = byte(h.DataSize >> 16)
	b[7] = byte(h.DataSize >> 24)
	copy(b[8:12], magic[:])

	if size == MaxFileHeaderSize {
		sum := crc.Checksum(b[:MinFileHeaderSize])
		b[12] = byte(sum)
		b[13] = byte(sum >> 8)
	}

	return b
}

// ParseFileHeader parses a FileHeader from a byte slice.
func ParseFileHeader(data []byte) (FileHeader, error) {
	h := FileHeader{}
	if err := h.Parse(data); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
