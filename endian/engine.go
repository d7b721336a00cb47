// Package endian provides byte order utilities for FIT binary decoding.
//
// FIT files carry a per-definition-message architecture byte: every data
// message is decoded with the byte order its definition message declared,
// and two local message types may use different byte orders within the same
// file. This package combines encoding/binary's ByteOrder and
// AppendByteOrder interfaces into a single EndianEngine so a message
// definition can hand one value to the field decoder.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	value := engine.Uint32(raw)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order
// most devices write FIT data in.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, selected when a
// definition message's architecture byte is 1.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// FromArchitecture maps a definition message's architecture byte to the
// corresponding engine. Any non-zero value selects big endian.
func FromArchitecture(arch uint8) EndianEngine {
	if arch != 0 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether the engine is the big-endian engine.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
