package decode

import (
	"github.com/openfit/fitwire/basetype"
	"github.com/openfit/fitwire/internal/hash"
	"github.com/openfit/fitwire/profile"
)

// DevFieldMeta is the resolved description of one developer field,
// accumulated from a field description message (global number 206).
type DevFieldMeta struct {
	// DevDataIndex identifies the developer that defined the field.
	DevDataIndex uint8
	// Num is the field definition number within that developer's space.
	Num uint8
	// BaseType is the declared base type the field decodes with.
	BaseType basetype.BaseType
	// Name is the field's human-readable name, empty if none was given.
	Name string
	// Units is the field's unit string, empty if none was given.
	Units string
}

// DevFieldRegistry resolves developer field definitions against the field
// description and developer data id messages seen earlier in the stream.
//
// The registry is populated incrementally while decoding and queried lazily
// per data message: a description may arrive any time before the data that
// references it, or never. Redefinition is last-write-wins, matching device
// behavior of re-announcing fields.
type DevFieldRegistry struct {
	fields map[uint16]DevFieldMeta
	byName map[uint64]uint16 // hash.ID(name) -> composite key
	apps   map[uint8][]byte  // developer data index -> application id
}

func newDevFieldRegistry() *DevFieldRegistry {
	return &DevFieldRegistry{
		fields: make(map[uint16]DevFieldMeta),
		byName: make(map[uint64]uint16),
		apps:   make(map[uint8][]byte),
	}
}

func devFieldKey(devDataIndex, num uint8) uint16 {
	return uint16(devDataIndex)<<8 | uint16(num)
}

// Lookup resolves a (developer data index, field definition number) pair.
func (r *DevFieldRegistry) Lookup(devDataIndex, num uint8) (DevFieldMeta, bool) {
	meta, ok := r.fields[devFieldKey(devDataIndex, num)]
	return meta, ok
}

// LookupByName resolves a developer field by its declared name. When two
// developers announce the same name the most recent description wins.
func (r *DevFieldRegistry) LookupByName(name string) (DevFieldMeta, bool) {
	key, ok := r.byName[hash.ID(name)]
	if !ok {
		return DevFieldMeta{}, false
	}

	return r.fields[key], true
}

// ApplicationID returns the application id bytes announced by the
// developer data id message for the given developer data index.
func (r *DevFieldRegistry) ApplicationID(devDataIndex uint8) ([]byte, bool) {
	id, ok := r.apps[devDataIndex]
	return id, ok
}

// Len returns the number of registered field descriptions.
func (r *DevFieldRegistry) Len() int {
	return len(r.fields)
}

// addFieldDescription folds a decoded field description message into the
// registry. Messages missing the index, field number, or base type are
// ignored rather than rejected; the fields they would have described simply
// stay unresolved.
func (r *DevFieldRegistry) addFieldDescription(fields []FieldValue) {
	var (
		meta     DevFieldMeta
		hasIndex bool
		hasNum   bool
		hasType  bool
	)

	for i := range fields {
		f := &fields[i]
		if f.Absent() {
			continue
		}
		switch f.Num {
		case profile.FieldDescDeveloperDataIndex:
			meta.DevDataIndex = f.Uint8()
			hasIndex = true
		case profile.FieldDescFieldDefNumber:
			meta.Num = f.Uint8()
			hasNum = true
		case profile.FieldDescBaseTypeID:
			meta.BaseType = basetype.BaseType(f.Uint8())
			hasType = true
		case profile.FieldDescFieldName:
			meta.Name = f.StringValue()
		case profile.FieldDescUnits:
			meta.Units = f.StringValue()
		}
	}

	if !hasIndex || !hasNum || !hasType {
		return
	}

	key := devFieldKey(meta.DevDataIndex, meta.Num)
	r.fields[key] = meta
	if meta.Name != "" {
		r.byName[hash.ID(meta.Name)] = key
	}
}

// addDeveloperDataID folds a decoded developer data id message into the
// registry.
func (r *DevFieldRegistry) addDeveloperDataID(fields []FieldValue) {
	var (
		appID    []byte
		index    uint8
		hasIndex bool
	)

	for i := range fields {
		f := &fields[i]
		if f.Absent() {
			continue
		}
		switch f.Num {
		case profile.DevDataIDApplicationID:
			appID = f.Bytes()
		case profile.DevDataIDDeveloperDataIndex:
			index = f.Uint8()
			hasIndex = true
		}
	}

	if hasIndex {
		r.apps[index] = appID
	}
}
