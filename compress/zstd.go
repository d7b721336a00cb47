//go:build !cgozstd

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func newZstdReader(src io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}

	return zr.IOReadCloser(), nil
}
