package compress

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/openfit/fitwire/errs"
)

// Format identifies a compression wrapper.
type Format uint8

const (
	// FormatNone means no recognized wrapper; the stream is read as-is.
	FormatNone Format = iota
	// FormatGzip is a gzip member stream.
	FormatGzip
	// FormatZstd is a zstandard frame stream.
	FormatZstd
	// FormatLZ4 is an lz4 frame stream.
	FormatLZ4
	// FormatS2 is an s2 (or snappy) framed stream.
	FormatS2
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	case FormatS2:
		return "s2"
	default:
		return "unknown"
	}
}

// sniffLen covers the longest magic prefix above.
const sniffLen = 4

var magics = []struct {
	format Format
	prefix []byte
}{
	{FormatGzip, []byte{0x1F, 0x8B}},
	{FormatZstd, []byte{0x28, 0xB5, 0x2F, 0xFD}},
	{FormatLZ4, []byte{0x04, 0x22, 0x4D, 0x18}},
	{FormatS2, []byte{0xFF, 0x06, 0x00, 0x00}},
}

// Sniff reports the compression format the prefix bytes announce.
func Sniff(prefix []byte) Format {
	for _, m := range magics {
		if bytes.HasPrefix(prefix, m.prefix) {
			return m.format
		}
	}

	return FormatNone
}

// NewReader sniffs src and returns a reader over the decompressed bytes.
// Unrecognized input is returned buffered but otherwise untouched.
//
// Parameters:
//   - src: the possibly-compressed byte stream
//
// Returns:
//   - io.Reader: the transparent stream
//   - error: a wrapper initialization failure (corrupt header)
func NewReader(src io.Reader) (io.Reader, error) {
	br := bufio.NewReader(src)

	prefix, err := br.Peek(sniffLen)
	if err != nil && len(prefix) == 0 {
		// Too short to carry any wrapper; let the FIT header parser
		// produce the real error.
		return br, nil
	}

	if f := Sniff(prefix); f != FormatNone {
		return FormatReader(br, f)
	}

	return br, nil
}

// FormatReader returns a reader decompressing src as the given format,
// skipping the sniff. FormatNone returns src unchanged.
//
// Returns ErrUnknownCompression for a Format value outside the supported
// set.
func FormatReader(src io.Reader, f Format) (io.Reader, error) {
	switch f {
	case FormatNone:
		return src, nil
	case FormatGzip:
		return newGzipReader(src)
	case FormatZstd:
		return newZstdReader(src)
	case FormatLZ4:
		return newLZ4Reader(src), nil
	case FormatS2:
		return newS2Reader(src), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCompression, f)
	}
}
