package decode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/profile"
)

func descriptionFields(index, num uint8, bt basetype.BaseType, name, units string) []FieldValue {
	fields := []FieldValue{
		withNum(profile.FieldDescDeveloperDataIndex, unsignedValue(uint64(index))),
		withNum(profile.FieldDescFieldDefNumber, unsignedValue(uint64(num))),
		withNum(profile.FieldDescBaseTypeID, unsignedValue(uint64(bt))),
	}
	if name != "" {
		fields = append(fields, withNum(profile.FieldDescFieldName, stringValue(name)))
	}
	if units != "" {
		fields = append(fields, withNum(profile.FieldDescUnits, stringValue(units)))
	}

	return fields
}

func withNum(num uint8, v FieldValue) FieldValue {
	v.Num = num
	return v
}

func TestDevFieldRegistry_Lookup(t *testing.T) {
	r := newDevFieldRegistry()

	_, ok := r.Lookup(0, 5)
	require.False(t, ok)

	r.addFieldDescription(descriptionFields(0, 5, basetype.UInt16, "stride_length", "mm"))
	require.Equal(t, 1, r.Len())

	meta, ok := r.Lookup(0, 5)
	require.True(t, ok)
	require.Equal(t, uint8(0), meta.DevDataIndex)
	require.Equal(t, uint8(5), meta.Num)
	require.Equal(t, basetype.UInt16, meta.BaseType)
	require.Equal(t, "stride_length", meta.Name)
	require.Equal(t, "mm", meta.Units)

	// Same field number under another developer index is a distinct field.
	_, ok = r.Lookup(1, 5)
	require.False(t, ok)
}

func TestDevFieldRegistry_LookupByName(t *testing.T) {
	r := newDevFieldRegistry()
	r.addFieldDescription(descriptionFields(2, 0, basetype.Float32, "core_temp", "C"))

	meta, ok := r.LookupByName("core_temp")
	require.True(t, ok)
	require.Equal(t, uint8(2), meta.DevDataIndex)

	_, ok = r.LookupByName("missing")
	require.False(t, ok)
}

func TestDevFieldRegistry_Redefinition(t *testing.T) {
	r := newDevFieldRegistry()
	r.addFieldDescription(descriptionFields(0, 1, basetype.UInt8, "power", "W"))
	r.addFieldDescription(descriptionFields(0, 1, basetype.UInt16, "power", "W"))

	require.Equal(t, 1, r.Len())

	meta, ok := r.Lookup(0, 1)
	require.True(t, ok)
	require.Equal(t, basetype.UInt16, meta.BaseType)
}

func TestDevFieldRegistry_IncompleteDescription(t *testing.T) {
	r := newDevFieldRegistry()

	// Missing the base type id: ignored.
	r.addFieldDescription([]FieldValue{
		withNum(profile.FieldDescDeveloperDataIndex, unsignedValue(0)),
		withNum(profile.FieldDescFieldDefNumber, unsignedValue(7)),
	})
	require.Equal(t, 0, r.Len())

	// Absent values do not count as present.
	r.addFieldDescription([]FieldValue{
		withNum(profile.FieldDescDeveloperDataIndex, unsignedValue(0)),
		withNum(profile.FieldDescFieldDefNumber, unsignedValue(7)),
		withNum(profile.FieldDescBaseTypeID, absentValue()),
	})
	require.Equal(t, 0, r.Len())
}

func TestDevFieldRegistry_ApplicationID(t *testing.T) {
	r := newDevFieldRegistry()

	_, ok := r.ApplicationID(0)
	require.False(t, ok)

	appID := []byte{0x01, 0x02, 0x03, 0x04}
	r.addDeveloperDataID([]FieldValue{
		withNum(profile.DevDataIDApplicationID, bytesValue(appID)),
		withNum(profile.DevDataIDDeveloperDataIndex, unsignedValue(0)),
	})

	got, ok := r.ApplicationID(0)
	require.True(t, ok)
	require.Equal(t, appID, got)
}
