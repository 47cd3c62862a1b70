// Package wire implements the primitive codec of the rpcwire format.
//
// Every primitive has a decode function and an encode function with the same
// shape across types:
//
//	func ReadX(buf []byte, off int) (value, newOffset int, err error)
//	func WriteX(sink Sink, value) (bytesWritten int, err error)
//
// Decoders never read past len(buf). They return the offset immediately after
// the value so callers can thread a single cursor through a sequence of
// fields. On failure the returned offset is the offset that was passed in.
//
// # Wire Layout
//
// All multi-byte fixed-width integers are little-endian.
//
//	Uint8, Int8, Bool   1 byte (Bool: nonzero decodes as true, encodes as 0x01)
//	Uint32              4 bytes
//	Uint64              8 bytes
//	VarInt              unsigned LEB128, 1 to 10 bytes
//	String              [length:u32][UTF-8 bytes]
//	Buffer              [length:u32][raw bytes]
//	Array<T>            [count:u32][T]*count
//
// Zero-length strings, buffers and arrays are valid and occupy exactly the
// 4-byte prefix. Decoded buffers and arrays are never nil.
//
// # Limits
//
// Length prefixes above MaxBytesLength and counts above MaxArrayCount are
// rejected with errs.ErrLengthLimit before anything is allocated, on both the
// decode and the encode path, so a corrupt prefix cannot force a large
// allocation and an encoder cannot produce bytes its peer would refuse.
//
// # Sinks
//
// Encoders append to a Sink and never read from it. A Sink must not be shared
// by concurrent encoders.
package wire
