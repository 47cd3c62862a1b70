package record

import (
	"fmt"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
)

// Type describes the wire type of a field or array element.
type Type struct {
	Kind format.Kind
	// Elem is the element type of an array; required when Kind is KindArray.
	Elem *Type
	// Record is the layout of a nested record; required when Kind is KindRecord.
	Record *Schema
}

// Scalar field types.
var (
	Uint8Type  = Type{Kind: format.KindUint8}
	Int8Type   = Type{Kind: format.KindInt8}
	Uint32Type = Type{Kind: format.KindUint32}
	Uint64Type = Type{Kind: format.KindUint64}
	VarIntType = Type{Kind: format.KindVarInt}
	BoolType   = Type{Kind: format.KindBool}
	StringType = Type{Kind: format.KindString}
	BufferType = Type{Kind: format.KindBuffer}
)

// ArrayOf returns the type of an array whose elements have type elem.
func ArrayOf(elem Type) Type {
	return Type{Kind: format.KindArray, Elem: &elem}
}

// RecordOf returns the type of a nested record with layout s.
func RecordOf(s *Schema) Type {
	return Type{Kind: format.KindRecord, Record: s}
}

func (t Type) String() string {
	switch t.Kind {
	case format.KindArray:
		if t.Elem == nil {
			return "Array<?>"
		}

		return "Array<" + t.Elem.String() + ">"
	case format.KindRecord:
		if t.Record == nil {
			return "Record<?>"
		}

		return "Record<" + t.Record.Name + ">"
	default:
		return t.Kind.String()
	}
}

// Field is a named, typed slot of a record.
type Field struct {
	Name string
	Type Type
}

// Schema is the ordered field list of a record type.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema creates and validates a schema.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{Name: name, Fields: fields}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid schema. It is meant
// for package-level schema variables.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Index returns the position of the named field, or -1.
func (s *Schema) Index(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}

	return -1
}

// Validate checks that field names are present and unique, that every array
// has an element type, that every nested record has a schema, and that no
// record type contains itself.
func (s *Schema) Validate() error {
	return s.validate(map[*Schema]bool{})
}

func (s *Schema) validate(visiting map[*Schema]bool) error {
	if s.Name == "" {
		return fmt.Errorf("%w: schema name is empty", errs.ErrInvalidSchema)
	}
	if visiting[s] {
		return fmt.Errorf("%w: schema %s contains itself", errs.ErrInvalidSchema, s.Name)
	}
	visiting[s] = true
	defer delete(visiting, s)

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: schema %s has a field without a name", errs.ErrInvalidSchema, s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: schema %s declares field %q twice", errs.ErrInvalidSchema, s.Name, f.Name)
		}
		seen[f.Name] = true

		if err := f.Type.validate(visiting); err != nil {
			return fmt.Errorf("%s.%s: %w", s.Name, f.Name, err)
		}
	}

	return nil
}

func (t Type) validate(visiting map[*Schema]bool) error {
	switch t.Kind {
	case format.KindUint8, format.KindInt8, format.KindUint32, format.KindUint64,
		format.KindVarInt, format.KindBool, format.KindString, format.KindBuffer:
		return nil
	case format.KindArray:
		if t.Elem == nil {
			return fmt.Errorf("%w: array without element type", errs.ErrInvalidSchema)
		}

		return t.Elem.validate(visiting)
	case format.KindRecord:
		if t.Record == nil {
			return fmt.Errorf("%w: nested record without schema", errs.ErrInvalidSchema)
		}

		return t.Record.validate(visiting)
	default:
		return fmt.Errorf("%w: unknown kind %d", errs.ErrInvalidSchema, t.Kind)
	}
}
