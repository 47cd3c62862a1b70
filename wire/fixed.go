package wire

import (
	"fmt"

	"github.com/arloliu/rpcwire/endian"
	"github.com/arloliu/rpcwire/errs"
)

var engine = endian.Wire()

// need verifies that n bytes are available at off.
func need(buf []byte, off, n int, what string) error {
	if off < 0 || off > len(buf) {
		return fmt.Errorf("%w: %s at offset %d, buffer length %d", errs.ErrBounds, what, off, len(buf))
	}
	if len(buf)-off < n {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d", errs.ErrBounds, what, n, off, len(buf)-off)
	}

	return nil
}

// ReadUint8 decodes one unsigned byte.
func ReadUint8(buf []byte, off int) (uint8, int, error) {
	if err := need(buf, off, 1, "uint8"); err != nil {
		return 0, off, err
	}

	return buf[off], off + 1, nil
}

// ReadInt8 decodes one byte as a two's complement signed integer.
func ReadInt8(buf []byte, off int) (int8, int, error) {
	if err := need(buf, off, 1, "int8"); err != nil {
		return 0, off, err
	}

	return int8(buf[off]), off + 1, nil //nolint:gosec
}

// ReadBool decodes one byte; any nonzero value is true.
func ReadBool(buf []byte, off int) (bool, int, error) {
	if err := need(buf, off, 1, "bool"); err != nil {
		return false, off, err
	}

	return buf[off] != 0, off + 1, nil
}

// ReadUint32 decodes a 4-byte little-endian unsigned integer.
func ReadUint32(buf []byte, off int) (uint32, int, error) {
	if err := need(buf, off, 4, "uint32"); err != nil {
		return 0, off, err
	}

	return engine.Uint32(buf[off : off+4]), off + 4, nil
}

// ReadUint64 decodes an 8-byte little-endian unsigned integer.
func ReadUint64(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 8, "uint64"); err != nil {
		return 0, off, err
	}

	return engine.Uint64(buf[off : off+8]), off + 8, nil
}

// WriteUint8 appends v and returns 1.
func WriteUint8(sink Sink, v uint8) (int, error) {
	sink.MustWrite([]byte{v})
	return 1, nil
}

// WriteInt8 appends the two's complement byte of v and returns 1.
func WriteInt8(sink Sink, v int8) (int, error) {
	sink.MustWrite([]byte{byte(v)})
	return 1, nil
}

// WriteBool appends 0x01 for true and 0x00 for false and returns 1.
func WriteBool(sink Sink, v bool) (int, error) {
	var b byte
	if v {
		b = 1
	}
	sink.MustWrite([]byte{b})

	return 1, nil
}

// WriteUint32 appends v as 4 little-endian bytes and returns 4.
func WriteUint32(sink Sink, v uint32) (int, error) {
	var tmp [4]byte
	sink.MustWrite(engine.AppendUint32(tmp[:0], v))

	return 4, nil
}

// WriteUint64 appends v as 8 little-endian bytes and returns 8.
func WriteUint64(sink Sink, v uint64) (int, error) {
	var tmp [8]byte
	sink.MustWrite(engine.AppendUint64(tmp[:0], v))

	return 8, nil
}
