// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It extends the standard encoding/binary package by combining ByteOrder
// and AppendByteOrder into a single EndianEngine interface, so encoders
// can use the faster Append* path without losing access to the Put*/Uint*
// methods decoders need.
//
// # Basic usage
//
// The SPZ wire format is little-endian throughout:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(buf, value)
//
// # Performance
//
// AppendUint32/AppendUint64 avoid the temporary buffer a ByteOrder-only
// call site needs:
//
//	buf = engine.AppendUint32(buf, value) // no intermediate allocation
//
// # Thread safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
