package record

import (
	"fmt"
	"math"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/wire"
)

var (
	errNoElem   = fmt.Errorf("%w: array without element type", errs.ErrInvalidSchema)
	errNoRecord = fmt.Errorf("%w: nested record without schema", errs.ErrInvalidSchema)
)

// Record is a dynamic record: a schema and one value per schema field, in
// schema order.
type Record struct {
	Schema *Schema
	Values []Value
}

// New creates a record of schema s from values given in field order.
// Values are type-checked when the record is encoded.
func (s *Schema) New(values ...Value) (*Record, error) {
	if len(values) != len(s.Fields) {
		return nil, fmt.Errorf("%w: schema %s has %d fields, got %d values",
			errs.ErrInvalidFieldValue, s.Name, len(s.Fields), len(values))
	}

	return &Record{Schema: s, Values: values}, nil
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (Value, error) {
	i, err := r.index(name)
	if err != nil {
		return Value{}, err
	}

	return r.Values[i], nil
}

// Set replaces the value of the named field.
func (r *Record) Set(name string, v Value) error {
	i, err := r.index(name)
	if err != nil {
		return err
	}
	r.Values[i] = v

	return nil
}

// index locates the named field and checks that the record holds one value
// per schema field.
func (r *Record) index(name string) (int, error) {
	if r.Schema == nil {
		return -1, fmt.Errorf("%w: record without schema", errs.ErrInvalidFieldValue)
	}
	if len(r.Values) != len(r.Schema.Fields) {
		return -1, fmt.Errorf("%w: schema %s has %d fields, record has %d values",
			errs.ErrInvalidFieldValue, r.Schema.Name, len(r.Schema.Fields), len(r.Values))
	}

	i := r.Schema.Index(name)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s.%s", errs.ErrUnknownField, r.Schema.Name, name)
	}

	return i, nil
}

// Decode decodes a record of schema s starting at off.
//
// The returned offset is the position after the last field. On failure no
// record is returned and the offset is off.
func (s *Schema) Decode(buf []byte, off int) (*Record, int, error) {
	r := NewReader(buf, off)
	values := make([]Value, len(s.Fields))
	for i, f := range s.Fields {
		t := f.Type
		values[i] = Read(r, f.Name, func(b []byte, o int) (Value, int, error) {
			return decodeValue(t, b, o)
		})
	}
	if err := r.Err(); err != nil {
		return nil, off, fmt.Errorf("%s: %w", s.Name, err)
	}

	return &Record{Schema: s, Values: values}, r.Offset(), nil
}

// Encode appends the record to sink in schema order and returns the number
// of bytes written. Nothing is appended if any value is invalid for its field.
func (r *Record) Encode(sink wire.Sink) (int, error) {
	return Encode(sink, r, encodeRecord)
}

func encodeRecord(sink wire.Sink, r *Record) (int, error) {
	if r == nil || r.Schema == nil {
		return 0, fmt.Errorf("%w: nil record", errs.ErrInvalidFieldValue)
	}
	if len(r.Values) != len(r.Schema.Fields) {
		return 0, fmt.Errorf("%w: schema %s has %d fields, record has %d values",
			errs.ErrInvalidFieldValue, r.Schema.Name, len(r.Schema.Fields), len(r.Values))
	}

	w := NewWriter(sink)
	for i, f := range r.Schema.Fields {
		t := f.Type
		Put(w, f.Name, func(s wire.Sink, v Value) (int, error) {
			return encodeValue(t, s, v)
		}, r.Values[i])
	}

	n, err := w.Result()
	if err != nil {
		return n, fmt.Errorf("%s: %w", r.Schema.Name, err)
	}

	return n, nil
}

func decodeValue(t Type, buf []byte, off int) (Value, int, error) {
	v := Value{Kind: t.Kind}
	var (
		next = off
		err  error
	)

	switch t.Kind {
	case format.KindUint8:
		var u uint8
		u, next, err = wire.ReadUint8(buf, off)
		v.Uint = uint64(u)
	case format.KindInt8:
		var i int8
		i, next, err = wire.ReadInt8(buf, off)
		v.Int, v.Signed = int64(i), true
	case format.KindUint32:
		var u uint32
		u, next, err = wire.ReadUint32(buf, off)
		v.Uint = uint64(u)
	case format.KindUint64:
		v.Uint, next, err = wire.ReadUint64(buf, off)
	case format.KindVarInt:
		v.Uint, next, err = wire.ReadVarInt(buf, off)
	case format.KindBool:
		v.Bool, next, err = wire.ReadBool(buf, off)
	case format.KindString:
		v.Str, next, err = wire.ReadString(buf, off)
	case format.KindBuffer:
		v.Bytes, next, err = wire.ReadBuffer(buf, off)
	case format.KindArray:
		if t.Elem == nil {
			return Value{}, off, errNoElem
		}
		elem := *t.Elem
		v.Items, next, err = wire.ReadArray(buf, off, func(b []byte, o int) (Value, int, error) {
			return decodeValue(elem, b, o)
		})
	case format.KindRecord:
		if t.Record == nil {
			return Value{}, off, errNoRecord
		}
		v.Record, next, err = t.Record.Decode(buf, off)
	default:
		err = fmt.Errorf("%w: unknown kind %d", errs.ErrInvalidSchema, t.Kind)
	}
	if err != nil {
		return Value{}, off, err
	}

	return v, next, nil
}

func encodeValue(t Type, sink wire.Sink, v Value) (int, error) {
	if v.Kind != t.Kind {
		return 0, fmt.Errorf("%w: %s value for %s field", errs.ErrInvalidFieldValue, v.Kind, t)
	}

	switch t.Kind {
	case format.KindUint8:
		u, err := v.unsigned(math.MaxUint8)
		if err != nil {
			return 0, err
		}

		return wire.WriteUint8(sink, uint8(u))
	case format.KindInt8:
		i, err := v.signed(math.MinInt8, math.MaxInt8)
		if err != nil {
			return 0, err
		}

		return wire.WriteInt8(sink, int8(i))
	case format.KindUint32:
		u, err := v.unsigned(math.MaxUint32)
		if err != nil {
			return 0, err
		}

		return wire.WriteUint32(sink, uint32(u))
	case format.KindUint64:
		u, err := v.unsigned(math.MaxUint64)
		if err != nil {
			return 0, err
		}

		return wire.WriteUint64(sink, u)
	case format.KindVarInt:
		u, err := v.unsigned(math.MaxUint64)
		if err != nil {
			return 0, err
		}

		return wire.WriteVarInt(sink, u)
	case format.KindBool:
		return wire.WriteBool(sink, v.Bool)
	case format.KindString:
		return wire.WriteString(sink, v.Str)
	case format.KindBuffer:
		return wire.WriteBuffer(sink, v.Bytes)
	case format.KindArray:
		if t.Elem == nil {
			return 0, errNoElem
		}
		elem := *t.Elem
		return wire.WriteArray(sink, v.Items, func(s wire.Sink, item Value) (int, error) {
			return encodeValue(elem, s, item)
		})
	case format.KindRecord:
		if t.Record == nil {
			return 0, errNoRecord
		}
		if v.Record == nil || v.Record.Schema != t.Record {
			return 0, fmt.Errorf("%w: nested record does not match %s", errs.ErrInvalidFieldValue, t)
		}

		return encodeRecord(sink, v.Record)
	default:
		return 0, fmt.Errorf("%w: unknown kind %d", errs.ErrInvalidSchema, t.Kind)
	}
}

func (v Value) unsigned(limit uint64) (uint64, error) {
	u := v.Uint
	if v.Signed {
		if v.Int < 0 {
			return 0, fmt.Errorf("%w: negative value %d for %s", errs.ErrInvalidFieldValue, v.Int, v.Kind)
		}
		u = uint64(v.Int)
	}
	if u > limit {
		return 0, fmt.Errorf("%w: value %d overflows %s", errs.ErrInvalidFieldValue, u, v.Kind)
	}

	return u, nil
}

func (v Value) signed(lo, hi int64) (int64, error) {
	if !v.Signed {
		if v.Uint > uint64(hi) {
			return 0, fmt.Errorf("%w: value %d overflows %s", errs.ErrInvalidFieldValue, v.Uint, v.Kind)
		}

		return int64(v.Uint), nil //nolint:gosec
	}
	if v.Int < lo || v.Int > hi {
		return 0, fmt.Errorf("%w: value %d overflows %s", errs.ErrInvalidFieldValue, v.Int, v.Kind)
	}

	return v.Int, nil
}
