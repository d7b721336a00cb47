package decode

import (
	"errors"
	"io"

	"github.com/openfit/fitwire/crc"
	"github.com/openfit/fitwire/errs"
)

// reader pulls bytes from the source while accumulating the running file
// CRC and the consumed byte count. Everything the CRC covers (header and
// record bytes) goes through readFull/readByte; the trailing CRC itself is
// read with readRaw.
type reader struct {
	src   io.Reader
	crc   uint16
	count uint64
	one   [1]byte
}

func (r *reader) readFull(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := io.ReadFull(r.src, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errs.ErrUnexpectedEOF
		}

		return err
	}

	r.crc = crc.UpdateBytes(r.crc, p)
	r.count += uint64(len(p))

	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.readFull(r.one[:]); err != nil {
		return 0, err
	}

	return r.one[0], nil
}

// readRaw reads without touching the CRC or the byte count.
func (r *reader) readRaw(p []byte) error {
	if _, err := io.ReadFull(r.src, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errs.ErrUnexpectedEOF
		}

		return err
	}

	return nil
}
