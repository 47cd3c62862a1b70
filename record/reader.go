package record

import (
	"fmt"

	"github.com/arloliu/rpcwire/wire"
)

// Reader threads a single offset through a sequence of field decodes.
//
// After the first failure every further read is skipped and returns the zero
// value; Err reports that first failure wrapped with the field name.
type Reader struct {
	buf   []byte
	start int
	off   int
	err   error
}

// NewReader creates a Reader positioned at off.
func NewReader(buf []byte, off int) *Reader {
	return &Reader{buf: buf, start: off, off: off}
}

// Offset returns the position immediately after the last decoded field.
func (r *Reader) Offset() int {
	return r.off
}

// Consumed returns the number of bytes decoded since the Reader was created.
func (r *Reader) Consumed() int {
	return r.off - r.start
}

// Err returns the first decode failure, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Read decodes one field with fn and advances the Reader.
func Read[T any](r *Reader, name string, fn wire.ReadFunc[T]) T {
	var zero T
	if r.err != nil {
		return zero
	}

	v, next, err := fn(r.buf, r.off)
	if err != nil {
		r.err = fmt.Errorf("field %q at offset %d: %w", name, r.off, err)
		return zero
	}
	r.off = next

	return v
}

// ReadArray decodes a count-prefixed array field whose elements are decoded with elem.
func ReadArray[T any](r *Reader, name string, elem wire.ReadFunc[T]) []T {
	return Read(r, name, func(buf []byte, off int) ([]T, int, error) {
		return wire.ReadArray(buf, off, elem)
	})
}

// Uint8 reads the field name as a uint8.
func (r *Reader) Uint8(name string) uint8 {
	return Read(r, name, wire.ReadUint8)
}

// Int8 reads the field name as an int8.
func (r *Reader) Int8(name string) int8 {
	return Read(r, name, wire.ReadInt8)
}

// Bool reads the field name as a bool byte.
func (r *Reader) Bool(name string) bool {
	return Read(r, name, wire.ReadBool)
}

// Uint32 reads the field name as a little-endian uint32.
func (r *Reader) Uint32(name string) uint32 {
	return Read(r, name, wire.ReadUint32)
}

// Uint64 reads the field name as a little-endian uint64.
func (r *Reader) Uint64(name string) uint64 {
	return Read(r, name, wire.ReadUint64)
}

// VarInt reads the field name as an unsigned LEB128 varint.
func (r *Reader) VarInt(name string) uint64 {
	return Read(r, name, wire.ReadVarInt)
}

// String reads the field name as a length-prefixed UTF-8 string.
func (r *Reader) String(name string) string {
	return Read(r, name, wire.ReadString)
}

// Buffer reads the field name as a length-prefixed byte buffer. The result
// is a copy and does not alias the input.
func (r *Reader) Buffer(name string) []byte {
	return Read(r, name, wire.ReadBuffer)
}
