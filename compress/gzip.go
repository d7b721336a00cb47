package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGzipReader(src io.Reader) (io.Reader, error) {
	return gzip.NewReader(src)
}
