// Package decode implements the streaming FIT record decoder.
//
// A FIT file interleaves definition messages (schema) with data messages
// (values). The Decoder consumes the stream strictly forward, maintains the
// sliding local-message-type table and the developer-field registry, and
// invokes a caller-supplied callback once per decoded data message. It
// never holds more than one record's worth of raw bytes in memory, so
// memory use is independent of file size.
//
// # Basic Usage
//
//	type stats struct{ records int }
//
//	cb := func(msg *decode.Message, ctx *stats) error {
//	    if msg.GlobalMesgNum == profile.MesgNumRecord {
//	        ctx.records++
//	    }
//	    return nil
//	}
//
//	var ctx stats
//	dec := decode.NewDecoder(file, cb, &ctx)
//	if err := dec.Decode(); err != nil {
//	    // callback invocations already delivered still stand
//	}
//
// # Concurrency
//
// A Decoder is single-use and not safe for concurrent use. Decoding
// multiple files concurrently is safe when each file gets its own Decoder
// and its own context value; no mutable state is shared across decoders.
// The callback is never invoked concurrently or reentrantly; returning a
// non-nil error from it aborts the decode.
package decode
