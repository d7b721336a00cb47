package decode

import (
	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/endian"
	"github.com/openfit/fitwire/section"
)

// decodeField interprets one field's raw bytes per its declared base type
// and the definition's byte order.
//
// Fallback policy: an unknown base type or a size that does not divide by
// the element width degrades to opaque bytes instead of aborting the
// message; size_in_bytes from the definition already advanced the cursor,
// so nothing downstream desynchronizes. Strict-mode errors for these cases
// are raised by the caller, not here.
//
// The raw slice is scratch owned by the decoder; any representation that
// retains bytes copies them.
func decodeField(def section.FieldDef, raw []byte, engine endian.EndianEngine) FieldValue {
	bt := def.BaseType
	count, even := def.Count()

	v := opaqueFallback(def, raw)
	if !bt.Known() || !even {
		return v
	}

	switch {
	case bt.Kind() == basetype.KindString:
		v = decodeString(raw)
	case bt == basetype.Byte:
		v = decodeByteArray(raw)
	case count == 1:
		v = decodeScalar(bt, raw, engine)
	default:
		width := bt.Size()
		elems := make([]FieldValue, count)
		for i := 0; i < count; i++ {
			elems[i] = decodeScalar(bt, raw[i*width:(i+1)*width], engine)
			elems[i].Num = def.Num
			elems[i].BaseType = bt
		}
		v = arrayValue(elems)
	}

	v.Num = def.Num
	v.BaseType = bt

	return v
}

// opaqueFallback copies raw into a bytes value carrying the field identity.
func opaqueFallback(def section.FieldDef, raw []byte) FieldValue {
	buf := make([]byte, len(raw))
	copy(buf, raw)

	v := bytesValue(buf)
	v.Num = def.Num
	v.BaseType = def.BaseType

	return v
}

// decodeScalar extracts one element, reordering multi-byte values per the
// engine and applying the invalid-sentinel rule before interpretation.
func decodeScalar(bt basetype.BaseType, raw []byte, engine endian.EndianEngine) FieldValue {
	var bits uint64
	switch bt.Size() {
	case 1:
		bits = uint64(raw[0])
	case 2:
		bits = uint64(engine.Uint16(raw))
	case 4:
		bits = uint64(engine.Uint32(raw))
	case 8:
		bits = engine.Uint64(raw)
	}

	// Sentinel check happens on the raw bit pattern, before any numeric
	// interpretation a consumer might scale or offset.
	if bits == bt.Invalid() {
		return absentValue()
	}

	switch bt.Kind() {
	case basetype.KindSigned:
		return signedValue(signExtend(bits, bt.Size()))
	case basetype.KindFloat:
		if bt.Size() == 4 {
			return float32Value(uint32(bits))
		}

		return float64Value(bits)
	default:
		return unsignedValue(bits)
	}
}

// decodeString takes bytes up to the first NUL or the declared size,
// whichever comes first. An empty string is the string sentinel and
// decodes as absent.
func decodeString(raw []byte) FieldValue {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}

	if end == 0 {
		return absentValue()
	}

	return stringValue(string(raw[:end]))
}

// decodeByteArray copies the raw bytes; all-0xFF is the byte sentinel.
func decodeByteArray(raw []byte) FieldValue {
	allInvalid := true
	for _, b := range raw {
		if b != 0xFF {
			allInvalid = false
			break
		}
	}
	if allInvalid {
		return absentValue()
	}

	buf := make([]byte, len(raw))
	copy(buf, raw)

	return bytesValue(buf)
}

// signExtend interprets the low width*8 bits of bits as a two's complement
// integer.
func signExtend(bits uint64, width int) int64 {
	shift := uint(64 - width*8)

	return int64(bits<<shift) >> shift
}
