// Package endian provides the byte order used by the rpcwire format.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine so that primitive codecs can both patch fixed
// offsets and append to a growing buffer with one value.
//
// Every multi-byte fixed-width integer on the wire is little-endian,
// regardless of the host byte order:
//
//	engine := endian.Wire()
//	buf = engine.AppendUint32(buf, payloadSize)
//
// The returned engine is immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the engine mandated by the wire format (little-endian).
func Wire() EndianEngine {
	return binary.LittleEndian
}
