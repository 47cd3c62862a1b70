package record

import (
	"github.com/arloliu/rpcwire/format"
)

// Value is a dynamically typed wire value.
//
// Unsigned kinds (Uint8, Uint32, Uint64, VarInt) carry their value in Uint
// and Int8 carries it in Int. A numeric value supplied from a signed source
// sets Signed and carries it in Int for any numeric kind; the encoder then
// rejects negative values for unsigned kinds instead of reinterpreting them.
type Value struct {
	Kind   format.Kind
	Uint   uint64
	Int    int64
	Signed bool
	Bool   bool
	Str    string
	Bytes  []byte
	Items  []Value
	Record *Record
}

// Uint8 creates an unsigned 8-bit value. Range is checked on encode.
func Uint8(v uint64) Value { return Value{Kind: format.KindUint8, Uint: v} }

// Uint32 creates an unsigned 32-bit value. Range is checked on encode.
func Uint32(v uint64) Value { return Value{Kind: format.KindUint32, Uint: v} }

// Uint64 creates an unsigned 64-bit value.
func Uint64(v uint64) Value { return Value{Kind: format.KindUint64, Uint: v} }

// VarInt creates a value encoded as an unsigned LEB128 varint.
func VarInt(v uint64) Value { return Value{Kind: format.KindVarInt, Uint: v} }

// Int8 creates a signed 8-bit value. Range is checked on encode.
func Int8(v int64) Value { return Value{Kind: format.KindInt8, Int: v, Signed: true} }

// Bool creates a boolean value.
func Bool(v bool) Value { return Value{Kind: format.KindBool, Bool: v} }

// String creates a string value. It must be valid UTF-8 to encode.
func String(v string) Value { return Value{Kind: format.KindString, Str: v} }

// Int creates a numeric value of the given kind from a signed source.
func Int(kind format.Kind, v int64) Value {
	return Value{Kind: kind, Int: v, Signed: true}
}

// Buffer creates a buffer value. A nil slice is stored as an empty one, which
// is how empty buffers decode.
func Buffer(v []byte) Value {
	if v == nil {
		v = []byte{}
	}

	return Value{Kind: format.KindBuffer, Bytes: v}
}

// Array creates an array value. Without items it is an empty array, which is
// how empty arrays decode.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{Kind: format.KindArray, Items: items}
}

// Nested creates a nested record value.
func Nested(r *Record) Value {
	return Value{Kind: format.KindRecord, Record: r}
}
