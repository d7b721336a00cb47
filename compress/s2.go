package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Reader(src io.Reader) io.Reader {
	return s2.NewReader(src)
}
