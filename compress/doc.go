// Package compress unwraps compressed FIT byte streams.
//
// Activity files are frequently stored or uploaded behind a general-purpose
// compression wrapper. This package sniffs the wrapper from its magic bytes
// and returns a transparent io.Reader over the underlying FIT stream:
//
//	gzip  1F 8B
//	zstd  28 B5 2F FD
//	lz4   04 22 4D 18
//	s2    FF 06 00 00 (stream identifier chunk)
//
// Input that matches no wrapper passes through untouched, so callers can
// always route their source through NewReader.
//
// The zstd path has two implementations selected at build time: the default
// pure Go decoder, and a cgo decoder enabled with the cgozstd build tag.
package compress
