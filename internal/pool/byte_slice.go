// Package pool provides pooled scratch buffers for record decoding.
//
// The decoder needs one record's worth of raw field bytes at a time. When
// many files are decoded concurrently, pooling that scratch space keeps the
// per-record allocation off the hot path.
package pool

import "sync"

var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves and resizes a byte slice from the pool.
//
// The returned slice has exactly the requested length. If the pooled slice
// has insufficient capacity a new one is allocated. The caller must call
// the returned cleanup function (typically with defer) to return the slice
// to the pool; the slice must not be used afterwards.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []byte: A slice with length equal to size
//   - func(): Cleanup function returning the slice to the pool
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}
