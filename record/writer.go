package record

import (
	"fmt"

	"github.com/arloliu/rpcwire/wire"
)

// Writer appends fields to a sink in call order and totals the bytes written.
//
// After the first failure every further write is skipped. Bytes appended
// before the failure stay in the sink; use Encode to stage a record so that
// the sink only ever receives complete records.
type Writer struct {
	sink wire.Sink
	n    int
	err  error
}

// NewWriter creates a Writer appending to sink.
func NewWriter(sink wire.Sink) *Writer {
	return &Writer{sink: sink}
}

// Result returns the total bytes written and the first failure, if any.
func (w *Writer) Result() (int, error) {
	return w.n, w.err
}

// Put encodes one field with fn.
func Put[T any](w *Writer, name string, fn wire.WriteFunc[T], v T) {
	if w.err != nil {
		return
	}

	n, err := fn(w.sink, v)
	w.n += n
	if err != nil {
		w.err = fmt.Errorf("field %q: %w", name, err)
	}
}

// PutArray encodes a count-prefixed array field whose elements are encoded with elem.
func PutArray[T any](w *Writer, name string, items []T, elem wire.WriteFunc[T]) {
	Put(w, name, func(sink wire.Sink, v []T) (int, error) {
		return wire.WriteArray(sink, v, elem)
	}, items)
}

// Uint8 writes v as a uint8.
func (w *Writer) Uint8(name string, v uint8) {
	Put(w, name, wire.WriteUint8, v)
}

// Int8 writes v as an int8.
func (w *Writer) Int8(name string, v int8) {
	Put(w, name, wire.WriteInt8, v)
}

// Bool writes v as a bool byte.
func (w *Writer) Bool(name string, v bool) {
	Put(w, name, wire.WriteBool, v)
}

// Uint32 writes v as a little-endian uint32.
func (w *Writer) Uint32(name string, v uint32) {
	Put(w, name, wire.WriteUint32, v)
}

// Uint64 writes v as a little-endian uint64.
func (w *Writer) Uint64(name string, v uint64) {
	Put(w, name, wire.WriteUint64, v)
}

// VarInt writes v as an unsigned LEB128 varint.
func (w *Writer) VarInt(name string, v uint64) {
	Put(w, name, wire.WriteVarInt, v)
}

// String writes v as a length-prefixed UTF-8 string.
func (w *Writer) String(name string, v string) {
	Put(w, name, wire.WriteString, v)
}

// Buffer writes v as a length-prefixed byte buffer.
func (w *Writer) Buffer(name string, v []byte) {
	Put(w, name, wire.WriteBuffer, v)
}
