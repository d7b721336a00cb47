// Package basetype defines the fixed FIT base-type table.
//
// Every field in a FIT data message is encoded as one of seventeen base
// types. Each base type has a fixed byte width, a value kind (unsigned,
// signed, float, string, or raw bytes), and a reserved invalid bit pattern
// that marks the value as "not present for this record". The high bit of
// the type code (0x80) flags multi-byte types whose byte order follows the
// definition message's architecture byte.
//
// The table is pure data with no state; all methods are safe for concurrent
// use.
package basetype

// BaseType is a one-byte FIT base type code as it appears in field
// definitions.
type BaseType uint8

// Base type codes from the FIT protocol.
const (
	Enum    BaseType = 0x00
	SInt8   BaseType = 0x01
	UInt8   BaseType = 0x02
	SInt16  BaseType = 0x83
	UInt16  BaseType = 0x84
	SInt32  BaseType = 0x85
	UInt32  BaseType = 0x86
	String  BaseType = 0x07
	Float32 BaseType = 0x88
	Float64 BaseType = 0x89
	UInt8Z  BaseType = 0x0A
	UInt16Z BaseType = 0x8B
	UInt32Z BaseType = 0x8C
	Byte    BaseType = 0x0D
	SInt64  BaseType = 0x8E
	UInt64  BaseType = 0x8F
	UInt64Z BaseType = 0x90
)

// endianMask flags base types whose multi-byte values are reordered
// according to the definition message's architecture byte.
const endianMask = 0x80

// Kind classifies how a base type's bytes are interpreted.
type Kind uint8

const (
	KindUnsigned Kind = iota + 1 // unsigned integer (includes enums)
	KindSigned                   // two's complement signed integer
	KindFloat                    // IEEE-754 float
	KindString                   // NUL-terminated character data
	KindBytes                    // opaque byte sequence
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

type typeInfo struct {
	name    string
	size    uint8
	kind    Kind
	invalid uint64 // reserved bit pattern, zero-extended to 64 bits
}

var table = map[BaseType]typeInfo{
	Enum:    {"enum", 1, KindUnsigned, 0xFF},
	SInt8:   {"sint8", 1, KindSigned, 0x7F},
	UInt8:   {"uint8", 1, KindUnsigned, 0xFF},
	SInt16:  {"sint16", 2, KindSigned, 0x7FFF},
	UInt16:  {"uint16", 2, KindUnsigned, 0xFFFF},
	SInt32:  {"sint32", 4, KindSigned, 0x7FFFFFFF},
	UInt32:  {"uint32", 4, KindUnsigned, 0xFFFFFFFF},
	String:  {"string", 1, KindString, 0x00},
	Float32: {"float32", 4, KindFloat, 0xFFFFFFFF},
	Float64: {"float64", 8, KindFloat, 0xFFFFFFFFFFFFFFFF},
	UInt8Z:  {"uint8z", 1, KindUnsigned, 0x00},
	UInt16Z: {"uint16z", 2, KindUnsigned, 0x0000},
	UInt32Z: {"uint32z", 4, KindUnsigned, 0x00000000},
	Byte:    {"byte", 1, KindBytes, 0xFF},
	SInt64:  {"sint64", 8, KindSigned, 0x7FFFFFFFFFFFFFFF},
	UInt64:  {"uint64", 8, KindUnsigned, 0xFFFFFFFFFFFFFFFF},
	UInt64Z: {"uint64z", 8, KindUnsigned, 0},
}

// Known reports whether the code is in the fixed base-type table.
func (b BaseType) Known() bool {
	_, ok := table[b]
	return ok
}

// Size returns the byte width of one element of the base type, or 0 for an
// unknown code.
func (b BaseType) Size() int {
	return int(table[b].size)
}

// Kind returns the value kind of the base type, or 0 for an unknown code.
func (b BaseType) Kind() Kind {
	return table[b].kind
}

// Invalid returns the reserved "value not present" bit pattern for the base
// type, zero-extended to 64 bits. Comparing the raw (unsigned) element bits
// against this pattern decides absence before any interpretation.
func (b BaseType) Invalid() uint64 {
	return table[b].invalid
}

// EndianSensitive reports whether the type's multi-byte values are subject
// to the definition message's declared byte order.
func (b BaseType) EndianSensitive() bool {
	return b&endianMask != 0
}

func (b BaseType) String() string {
	if info, ok := table[b]; ok {
		return info.name
	}

	return "unknown"
}
