package decode

// Option configures a Decoder.
type Option func(*options)

type options struct {
	transparentCompression bool
	strictHeaderCRC        bool
	strictDevFields        bool
	strictBaseTypes        bool
}

// WithTransparentCompression sniffs the input for a known compression
// wrapper (gzip, zstd, s2, lz4) and unwraps it before decoding. Plain FIT
// input passes through untouched.
func WithTransparentCompression() Option {
	return func(o *options) { o.transparentCompression = true }
}

// WithStrictHeaderCRC rejects 14-byte headers whose stored CRC is zero.
// By default a zero CRC means the writer opted out and the check is
// skipped.
func WithStrictHeaderCRC() Option {
	return func(o *options) { o.strictHeaderCRC = true }
}

// WithStrictDeveloperFields fails the decode with ErrUnresolvedDeveloperField
// when a data message references a developer field whose field description
// has not been seen. By default such fields surface as opaque bytes.
func WithStrictDeveloperFields() Option {
	return func(o *options) { o.strictDevFields = true }
}

// WithStrictBaseTypes fails the decode with ErrUnsupportedBaseType when a
// field declares a base type code outside the fixed table. By default such
// fields surface as opaque bytes, skipped via their declared size.
func WithStrictBaseTypes() Option {
	return func(o *options) { o.strictBaseTypes = true }
}
