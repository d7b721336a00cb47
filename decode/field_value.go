package decode

import (
	"math"

	"github.com/openfit/fitwire/basetype"
)

// ValueKind discriminates the representations a FieldValue can take.
type ValueKind uint8

const (
	// KindAbsent marks a value equal to its base type's invalid sentinel.
	KindAbsent ValueKind = iota
	// KindUnsigned is an unsigned integer (including enums).
	KindUnsigned
	// KindSigned is a signed integer.
	KindSigned
	// KindFloat is a 32- or 64-bit float.
	KindFloat
	// KindString is NUL-terminated character data.
	KindString
	// KindBytes is an opaque byte sequence.
	KindBytes
	// KindArray is an ordered sequence of scalar elements.
	KindArray
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
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
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// FieldValue is one decoded field of a data message: a scalar, an array of
// scalars, a string, opaque bytes, or an absent marker, tagged with enough
// identity for a consumer to map it to profile semantics.
//
// The zero FieldValue is an absent native field with number 0.
type FieldValue struct {
	// Num is the field definition number (native fields) or the developer
	// field definition number (developer fields).
	Num uint8
	// BaseType is the base type the value was decoded with. For an
	// unresolved developer field this is the zero value.
	BaseType basetype.BaseType
	// Developer reports whether the field came from a developer field
	// definition rather than the native field list.
	Developer bool
	// DevDataIndex identifies the developer when Developer is true.
	DevDataIndex uint8
	// Name is the developer field's resolved name, empty when unresolved
	// or for native fields.
	Name string

	kind ValueKind
	uval uint64
	sval int64
	fval float64
	str  string
	raw  []byte
	arr  []FieldValue
}

// Kind returns the value's representation.
func (v *FieldValue) Kind() ValueKind { return v.kind }

// Absent reports whether the value equals its base type's invalid sentinel.
func (v *FieldValue) Absent() bool { return v.kind == KindAbsent }

// Uint64 returns the unsigned value; zero unless Kind is KindUnsigned.
func (v *FieldValue) Uint64() uint64 { return v.uval }

// Uint32 returns the unsigned value truncated to 32 bits.
func (v *FieldValue) Uint32() uint32 { return uint32(v.uval) }

// Uint16 returns the unsigned value truncated to 16 bits.
func (v *FieldValue) Uint16() uint16 { return uint16(v.uval) }

// Uint8 returns the unsigned value truncated to 8 bits.
func (v *FieldValue) Uint8() uint8 { return uint8(v.uval) }

// Int64 returns the signed value; zero unless Kind is KindSigned.
func (v *FieldValue) Int64() int64 { return v.sval }

// Int32 returns the signed value truncated to 32 bits.
func (v *FieldValue) Int32() int32 { return int32(v.sval) }

// Int16 returns the signed value truncated to 16 bits.
func (v *FieldValue) Int16() int16 { return int16(v.sval) }

// Int8 returns the signed value truncated to 8 bits.
func (v *FieldValue) Int8() int8 { return int8(v.sval) }

// Float64 returns the float value; zero unless Kind is KindFloat.
func (v *FieldValue) Float64() float64 { return v.fval }

// Float32 returns the float value narrowed to 32 bits.
func (v *FieldValue) Float32() float32 { return float32(v.fval) }

// StringValue returns the string value; empty unless Kind is KindString.
func (v *FieldValue) StringValue() string { return v.str }

// Bytes returns the opaque byte value; nil unless Kind is KindBytes. The
// returned slice is owned by the caller.
func (v *FieldValue) Bytes() []byte { return v.raw }

// Array returns the element values; nil unless Kind is KindArray. Elements
// are scalar FieldValues sharing the parent's identity, each individually
// marked absent when it equals the sentinel.
func (v *FieldValue) Array() []FieldValue { return v.arr }

func unsignedValue(bits uint64) FieldValue {
	return FieldValue{kind: KindUnsigned, uval: bits}
}

func signedValue(val int64) FieldValue {
	return FieldValue{kind: KindSigned, sval: val}
}

func floatValue(val float64) FieldValue {
	return FieldValue{kind: KindFloat, fval: val}
}

func float32Value(bits uint32) FieldValue {
	return floatValue(float64(math.Float32frombits(bits)))
}

func float64Value(bits uint64) FieldValue {
	return floatValue(math.Float64frombits(bits))
}

func stringValue(s string) FieldValue {
	return FieldValue{kind: KindString, str: s}
}

func bytesValue(raw []byte) FieldValue {
	return FieldValue{kind: KindBytes, raw: raw}
}

func arrayValue(elems []FieldValue) FieldValue {
	return FieldValue{kind: KindArray, arr: elems}
}

func absentValue() FieldValue {
	return FieldValue{kind: KindAbsent}
}
