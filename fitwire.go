// Package fitwire decodes the FIT (Flexible and Interoperable Data Transfer)
// binary format used by fitness devices to record activities, workouts, and
// monitoring data.
//
// A FIT file is a self-describing stream: definition messages declare the
// byte-level layout of the data messages that follow, bound to one of 16
// local message slots. The decoder replays that state machine and hands each
// data message to a caller-supplied callback, leaving profile semantics
// (scale, offset, unit interpretation) to the caller.
//
//	+-------------+----------------------+-----+
//	| file header | records (data_size B)| CRC |
//	+-------------+----------------------+-----+
//
// # Basic Usage
//
// Decoding an activity stream:
//
//	import "github.com/openfit/fitwire"
//
//	type stats struct {
//	    records int
//	}
//
//	err := fitwire.Decode(f, func(msg *decode.Message, ctx *stats) error {
//	    if msg.GlobalMesgNum == profile.MesgNumRecord {
//	        ctx.records++
//	    }
//	    return nil
//	}, &stats{})
//
// Or collecting every message up front:
//
//	msgs, err := fitwire.Collect(f)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the decode
// package, simplifying the most common use cases. For advanced usage and
// fine-grained control, use the decode package directly.
package fitwire

import (
	"bytes"
	"io"
	"os"

	"github.com/openfit/fitwire/decode"
	"github.com/openfit/fitwire/internal/hash"
)

// Decode decodes the FIT stream in r, delivering each data message to cb
// together with ctx.
//
// Parameters:
//   - r: the FIT byte stream, starting at the file header
//   - cb: the per-message callback
//   - ctx: opaque context passed through to every callback invocation
//   - opts: optional behavior tweaks (see decode.Option)
//
// Returns:
//   - error: the first structural, CRC, or callback error; nil on a clean
//     decode.
func Decode[C any](r io.Reader, cb decode.Callback[C], ctx *C, opts ...decode.Option) error {
	return decode.NewDecoder(r, cb, ctx, opts...).Decode()
}

// DecodeBytes decodes a complete in-memory FIT file.
func DecodeBytes[C any](data []byte, cb decode.Callback[C], ctx *C, opts ...decode.Option) error {
	return Decode(bytes.NewReader(data), cb, ctx, opts...)
}

// DecodeFile opens and decodes the FIT file at path. Compression wrappers
// are unwrapped transparently, so gzipped uploads decode without ceremony.
func DecodeFile[C any](path string, cb decode.Callback[C], ctx *C, opts ...decode.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts = append(opts, decode.WithTransparentCompression())

	return Decode(f, cb, ctx, opts...)
}

// Collect decodes the stream and returns every data message, each with its
// own Fields slice.
//
// Convenient for small files and tests; for large activities prefer Decode
// with a streaming callback.
func Collect(r io.Reader, opts ...decode.Option) ([]decode.Message, error) {
	var msgs []decode.Message

	cb := func(msg *decode.Message, _ *struct{}) error {
		m := *msg
		m.Fields = append([]decode.FieldValue(nil), msg.Fields...)
		msgs = append(msgs, m)

		return nil
	}

	if err := decode.NewDecoder(r, cb, &struct{}{}, opts...).Decode(); err != nil {
		return nil, err
	}

	return msgs, nil
}

// FieldID returns the 64-bit hash of a developer field name, matching the
// key used by decode.DevFieldRegistry name lookups.
func FieldID(name string) uint64 {
	return hash.ID(name)
}
