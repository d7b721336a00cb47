package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func newLZ4Reader(src io.Reader) io.Reader {
	return lz4.NewReader(src)
}
