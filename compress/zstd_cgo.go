//go:build cgozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

func newZstdReader(src io.Reader) (io.Reader, error) {
	return gozstd.NewReader(src), nil
}
