package section

import (
	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/endian"
	"github.com/openfit/fitwire/errs"
	"github.com/openfit/fitwire/profile"
)

const (
	// DefinitionHeaderSize is the fixed prefix of a definition message:
	// reserved byte, architecture byte, global message number, field count.
	DefinitionHeaderSize = 5
	// FieldDefSize is the wire size of one field definition.
	FieldDefSize = 3
	// DevFieldDefSize is the wire size of one developer field definition.
	DevFieldDefSize = 3
)

// FieldDef describes one native field inside a definition message.
type FieldDef struct {
	// Num is the field definition number the profile assigns meaning to.
	Num uint8
	// Size is the total byte size of the field in each data message.
	Size uint8
	// BaseType is the declared base type code.
	BaseType basetype.BaseType
}

// Count returns the element count (Size divided by the base-type width) and
// whether the division is exact. A zero-width (unknown) base type or an
// uneven split returns ok=false; the caller degrades to opaque bytes.
func (f FieldDef) Count() (int, bool) {
	width := f.BaseType.Size()
	if width == 0 || int(f.Size)%width != 0 {
		return 0, false
	}

	return int(f.Size) / width, true
}

// Bytes serializes the field definition.
func (f FieldDef) Bytes() []byte {
	return []byte{f.Num, f.Size, uint8(f.BaseType)}
}

// ParseFieldDef parses one 3-byte field definition.
func ParseFieldDef(data []byte) (FieldDef, error) {
	if len(data) < FieldDefSize {
		return FieldDef{}, errs.ErrUnexpectedEOF
	}

	return FieldDef{Num: data[0], Size: data[1], BaseType: basetype.BaseType(data[2])}, nil
}

// DevFieldDef describes one developer field inside a definition message.
// Its base type is not declared here; it is resolved against the field
// description message with the matching developer data index.
type DevFieldDef struct {
	// Num is the developer field definition number.
	Num uint8
	// Size is the total byte size of the field in each data message.
	Size uint8
	// DevDataIndex selects which developer's field description applies.
	DevDataIndex uint8
}

// Bytes serializes the developer field definition.
func (f DevFieldDef) Bytes() []byte {
	return []byte{f.Num, f.Size, f.DevDataIndex}
}

// ParseDevFieldDef parses one 3-byte developer field definition.
func ParseDevFieldDef(data []byte) (DevFieldDef, error) {
	if len(data) < DevFieldDefSize {
		return DevFieldDef{}, errs.ErrUnexpectedEOF
	}

	return DevFieldDef{Num: data[0], Size: data[1], DevDataIndex: data[2]}, nil
}

// MessageDefinition is the resolved layout a definition message binds to a
// local message type. Data messages of that local type are decoded against
// it until another definition message overwrites the slot.
type MessageDefinition struct {
	// Architecture is the raw architecture byte; non-zero means big endian.
	Architecture uint8
	// GlobalMesgNum names the semantic message kind.
	GlobalMesgNum profile.MesgNum
	// Fields are the native field layouts, in wire order.
	Fields []FieldDef
	// DevFields are the developer field layouts, in wire order, following
	// all native fields in each data message.
	DevFields []DevFieldDef
}

// Engine returns the byte order engine the definition's data messages are
// decoded with.
func (d *MessageDefinition) Engine() endian.EndianEngine {
	return endian.FromArchitecture(d.Architecture)
}

// DataSize returns the byte size of one data message conforming to this
// definition, excluding the record header byte.
func (d *MessageDefinition) DataSize() int {
	size := 0
	for _, f := range d.Fields {
		size += int(f.Size)
	}
	for _, f := range d.DevFields {
		size += int(f.Size)
	}

	return size
}

// Bytes serializes the definition message content (everything after the
// record header byte). The developer field block is emitted only when
// DevFields is non-empty; the record header's developer-data bit must be
// set to match.
func (d *MessageDefinition) Bytes() []byte {
	engine := d.Engine()

	b := make([]byte, 0, DefinitionHeaderSize+len(d.Fields)*FieldDefSize+1+len(d.DevFields)*DevFieldDefSize)
	b = append(b, 0, d.Architecture)
	b = engine.AppendUint16(b, uint16(d.GlobalMesgNum))
	b = append(b, uint8(len(d.Fields)))
	for _, f := range d.Fields {
		b = append(b, f.Bytes()...)
	}

	if len(d.DevFields) > 0 {
		b = append(b, uint8(len(d.DevFields)))
		for _, f := range d.DevFields {
			b = append(b, f.Bytes()...)
		}
	}

	return b
}
