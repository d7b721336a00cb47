package decode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/endian"
	"github.com/openfit/fitwire/section"
)

func TestDecodeField_Scalars(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	be := endian.GetBigEndianEngine()

	t.Run("Uint16 little endian", func(t *testing.T) {
		def := section.FieldDef{Num: 3, Size: 2, BaseType: basetype.UInt16}
		v := decodeField(def, []byte{0x34, 0x12}, le)

		require.Equal(t, KindUnsigned, v.Kind())
		require.Equal(t, uint16(0x1234), v.Uint16())
		require.Equal(t, uint8(3), v.Num)
		require.Equal(t, basetype.UInt16, v.BaseType)
	})

	t.Run("Uint16 big endian", func(t *testing.T) {
		def := section.FieldDef{Num: 3, Size: 2, BaseType: basetype.UInt16}
		v := decodeField(def, []byte{0x12, 0x34}, be)

		require.Equal(t, uint16(0x1234), v.Uint16())
	})

	t.Run("Signed negative", func(t *testing.T) {
		def := section.FieldDef{Num: 1, Size: 1, BaseType: basetype.SInt8}
		v := decodeField(def, []byte{0xFE}, le)

		require.Equal(t, KindSigned, v.Kind())
		require.Equal(t, int8(-2), v.Int8())
	})

	t.Run("SInt32 sign extension", func(t *testing.T) {
		def := section.FieldDef{Num: 0, Size: 4, BaseType: basetype.SInt32}
		v := decodeField(def, []byte{0xFF, 0xFF, 0xFF, 0x80}, le)

		require.Equal(t, int32(-0x7F000001), v.Int32())
	})

	t.Run("Float32", func(t *testing.T) {
		def := section.FieldDef{Num: 5, Size: 4, BaseType: basetype.Float32}
		// 1.5 as IEEE 754 single precision.
		v := decodeField(def, []byte{0x00, 0x00, 0xC0, 0x3F}, le)

		require.Equal(t, KindFloat, v.Kind())
		require.InDelta(t, 1.5, v.Float64(), 0)
	})

	t.Run("Enum", func(t *testing.T) {
		def := section.FieldDef{Num: 0, Size: 1, BaseType: basetype.Enum}
		v := decodeField(def, []byte{0x04}, le)

		require.Equal(t, KindUnsigned, v.Kind())
		require.Equal(t, uint8(4), v.Uint8())
	})
}

func TestDecodeField_Sentinels(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	tests := []struct {
		name string
		def  section.FieldDef
		raw  []byte
	}{
		{"Uint8 all ones", section.FieldDef{Size: 1, BaseType: basetype.UInt8}, []byte{0xFF}},
		{"Uint32 all ones", section.FieldDef{Size: 4, BaseType: basetype.UInt32}, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"SInt16 max positive", section.FieldDef{Size: 2, BaseType: basetype.SInt16}, []byte{0xFF, 0x7F}},
		{"UInt16z zero", section.FieldDef{Size: 2, BaseType: basetype.UInt16Z}, []byte{0x00, 0x00}},
		{"Enum all ones", section.FieldDef{Size: 1, BaseType: basetype.Enum}, []byte{0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decodeField(tt.def, tt.raw, le)
			require.True(t, v.Absent())
		})
	}

	t.Run("SInt16 minus one is present", func(t *testing.T) {
		def := section.FieldDef{Size: 2, BaseType: basetype.SInt16}
		v := decodeField(def, []byte{0xFF, 0xFF}, le)

		require.False(t, v.Absent())
		require.Equal(t, int16(-1), v.Int16())
	})

	t.Run("UInt16z all ones is present", func(t *testing.T) {
		def := section.FieldDef{Size: 2, BaseType: basetype.UInt16Z}
		v := decodeField(def, []byte{0xFF, 0xFF}, le)

		require.False(t, v.Absent())
		require.Equal(t, uint16(0xFFFF), v.Uint16())
	})
}

func TestDecodeField_Strings(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	def := section.FieldDef{Num: 3, Size: 8, BaseType: basetype.String}

	t.Run("NUL terminated", func(t *testing.T) {
		v := decodeField(def, []byte("run\x00\x00\x00\x00\x00"), le)

		require.Equal(t, KindString, v.Kind())
		require.Equal(t, "run", v.StringValue())
	})

	t.Run("No terminator uses full size", func(t *testing.T) {
		v := decodeField(def, []byte("12345678"), le)

		require.Equal(t, "12345678", v.StringValue())
	})

	t.Run("Empty is absent", func(t *testing.T) {
		v := decodeField(def, []byte("\x00\x00\x00\x00\x00\x00\x00\x00"), le)

		require.True(t, v.Absent())
	})
}

func TestDecodeField_ByteArrays(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	def := section.FieldDef{Num: 1, Size: 4, BaseType: basetype.Byte}

	t.Run("Copies raw bytes", func(t *testing.T) {
		raw := []byte{0x01, 0x02, 0x03, 0xFF}
		v := decodeField(def, raw, le)

		require.Equal(t, KindBytes, v.Kind())
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0xFF}, v.Bytes())

		raw[0] = 0xAA
		require.Equal(t, byte(0x01), v.Bytes()[0])
	})

	t.Run("All 0xFF is absent", func(t *testing.T) {
		v := decodeField(def, []byte{0xFF, 0xFF, 0xFF, 0xFF}, le)

		require.True(t, v.Absent())
	})
}

func TestDecodeField_Arrays(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	def := section.FieldDef{Num: 6, Size: 6, BaseType: basetype.UInt16}

	v := decodeField(def, []byte{0x01, 0x00, 0xFF, 0xFF, 0x03, 0x00}, le)
	require.Equal(t, KindArray, v.Kind())

	elems := v.Array()
	require.Len(t, elems, 3)
	require.Equal(t, uint16(1), elems[0].Uint16())
	require.True(t, elems[1].Absent())
	require.Equal(t, uint16(3), elems[2].Uint16())

	for i := range elems {
		require.Equal(t, uint8(6), elems[i].Num)
		require.Equal(t, basetype.UInt16, elems[i].BaseType)
	}
}

func TestDecodeField_OpaqueFallback(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	t.Run("Unknown base type", func(t *testing.T) {
		def := section.FieldDef{Num: 9, Size: 3, BaseType: basetype.BaseType(0x1F)}
		v := decodeField(def, []byte{0xAA, 0xBB, 0xCC}, le)

		require.Equal(t, KindBytes, v.Kind())
		require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, v.Bytes())
	})

	t.Run("Size not multiple of width", func(t *testing.T) {
		def := section.FieldDef{Num: 9, Size: 3, BaseType: basetype.UInt16}
		v := decodeField(def, []byte{0xAA, 0xBB, 0xCC}, le)

		require.Equal(t, KindBytes, v.Kind())
		require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, v.Bytes())
	})
}
