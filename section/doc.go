// Package section defines the low-level binary structures of the FIT file
// format.
//
// This package provides the foundational types that define the physical
// layout of a FIT file. It handles binary parsing and serialization of the
// file header, the one-byte record header, and the field/message definition
// structures, ensuring consistent byte-level representation across
// platforms.
//
// # File Structure
//
// A FIT file is a header, a run of records, and a trailing CRC:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ FileHeader (12 or 14 bytes)                             │
//	│  - size, protocol/profile versions, data size, ".FIT"   │
//	│  - optional CRC over the first 12 bytes                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Records (exactly data size bytes)                       │
//	│  each: RecordHeader byte + definition or data content   │
//	├─────────────────────────────────────────────────────────┤
//	│ File CRC (2 bytes, little-endian)                       │
//	└─────────────────────────────────────────────────────────┘
//
// Definition messages bind a local message type (a small per-file slot) to
// a MessageDefinition: the byte order, global message number, and ordered
// field layouts that subsequent data messages of that local type follow.
//
// The Bytes methods are the serialization counterparts of the parsers; they
// exist so callers (and this module's own tests) can construct byte-exact
// files, not as a general-purpose FIT encoder.
package section
