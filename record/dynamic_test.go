package record

import (
	"math"
	"testing"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/wire"
	"github.com/stretchr/testify/require"
)

var pointSchema = MustSchema("Point",
	Field{Name: "x", Type: Uint32Type},
	Field{Name: "y", Type: Uint32Type},
)

var shapeSchema = MustSchema("Shape",
	Field{Name: "name", Type: StringType},
	Field{Name: "sides", Type: Uint8Type},
	Field{Name: "offset", Type: Int8Type},
	Field{Name: "filled", Type: BoolType},
	Field{Name: "id", Type: VarIntType},
	Field{Name: "stamp", Type: Uint64Type},
	Field{Name: "raw", Type: BufferType},
	Field{Name: "labels", Type: ArrayOf(StringType)},
	Field{Name: "origin", Type: RecordOf(pointSchema)},
	Field{Name: "points", Type: ArrayOf(RecordOf(pointSchema))},
)

func newPoint(t *testing.T, x, y uint64) *Record {
	t.Helper()
	p, err := pointSchema.New(Uint32(x), Uint32(y))
	require.NoError(t, err)

	return p
}

func newShape(t *testing.T) *Record {
	t.Helper()
	r, err := shapeSchema.New(
		String("triangle"),
		Uint8(3),
		Int8(-1),
		Bool(true),
		VarInt(math.MaxUint64),
		Uint64(1<<60),
		Buffer([]byte{1, 2, 3}),
		Array(String("a"), String("b")),
		Nested(newPoint(t, 10, 20)),
		Array(Nested(newPoint(t, 0, 0)), Nested(newPoint(t, 1, 1))),
	)
	require.NoError(t, err)

	return r
}

func TestDynamic_RoundTrip(t *testing.T) {
	original := newShape(t)

	buf := wire.NewBuffer(128)
	n, err := original.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)

	decoded, off, err := shapeSchema.Decode(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, n, off)
	require.Equal(t, original, decoded)
}

func TestDynamic_EmptyCollections(t *testing.T) {
	original, err := shapeSchema.New(
		String(""), Uint8(0), Int8(0), Bool(false), VarInt(0), Uint64(0),
		Buffer(nil), Array(), Nested(newPoint(t, 0, 0)), Array(),
	)
	require.NoError(t, err)

	buf := wire.NewBuffer(64)
	n, err := original.Encode(buf)
	require.NoError(t, err)
	// string + u8 + i8 + bool + varint + u64 + buffer + array + point + array
	require.Equal(t, 4+1+1+1+1+8+4+4+8+4, n)

	decoded, _, err := shapeSchema.Decode(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, original, decoded)

	labels, err := decoded.Get("labels")
	require.NoError(t, err)
	require.NotNil(t, labels.Items)
	require.Empty(t, labels.Items)
}

func TestDynamic_MatchesStaticLayout(t *testing.T) {
	s := sample{ID: 3, Name: "dyn", Flags: []bool{true}, Blob: []byte{7}, Seq: 128, Level: -8}
	static, err := Marshal(s, writeSample)
	require.NoError(t, err)

	schema := MustSchema("Sample",
		Field{Name: "id", Type: Uint32Type},
		Field{Name: "name", Type: StringType},
		Field{Name: "flags", Type: ArrayOf(BoolType)},
		Field{Name: "blob", Type: BufferType},
		Field{Name: "seq", Type: VarIntType},
		Field{Name: "level", Type: Int8Type},
	)
	r, err := schema.New(Uint32(3), String("dyn"), Array(Bool(true)), Buffer([]byte{7}), VarInt(128), Int8(-8))
	require.NoError(t, err)

	buf := wire.NewBuffer(64)
	_, err = r.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, static, buf.Bytes())
}

func TestDynamic_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value Value
	}{
		{"uint8 overflow", "sides", Uint8(256)},
		{"negative for unsigned", "sides", Int(format.KindUint8, -1)},
		{"negative varint", "id", Int(format.KindVarInt, -5)},
		{"int8 above range", "offset", Int8(128)},
		{"int8 below range", "offset", Int8(-129)},
		{"int8 from large unsigned", "offset", Value{Kind: format.KindInt8, Uint: 200}},
		{"kind mismatch", "sides", Uint32(3)},
		{"invalid utf8", "name", String("\xed\xa0\x80")},
		{"array element kind mismatch", "labels", Array(Uint8(1))},
		{"nested schema mismatch", "origin", Nested(&Record{Schema: shapeSchema})},
		{"nested record nil", "origin", Value{Kind: format.KindRecord}},
		{"nested point overflow", "origin", Nested(&Record{Schema: pointSchema, Values: []Value{Uint32(math.MaxUint32 + 1), Uint32(0)}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newShape(t)
			require.NoError(t, r.Set(tt.field, tt.value))

			sink := wire.NewBuffer(64)
			n, err := r.Encode(sink)
			require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
			require.Equal(t, 0, n)
			require.Equal(t, 0, sink.Len())
		})
	}
}

func TestDynamic_SignedSourceForUnsigned(t *testing.T) {
	schema := MustSchema("Counter", Field{Name: "n", Type: Uint32Type})
	r, err := schema.New(Int(format.KindUint32, 42))
	require.NoError(t, err)

	buf := wire.NewBuffer(8)
	_, err = r.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{42, 0, 0, 0}, buf.Bytes())

	decoded, _, err := schema.Decode(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, Uint32(42), decoded.Values[0])
}

func TestDynamic_DecodeFailure(t *testing.T) {
	buf := wire.NewBuffer(128)
	_, err := newShape(t).Encode(buf)
	require.NoError(t, err)
	data := buf.Bytes()

	for _, cut := range []int{0, 5, 12, len(data) - 1} {
		r, off, err := shapeSchema.Decode(data[:cut], 0)
		require.ErrorIs(t, err, errs.ErrBounds, "cut at %d", cut)
		require.Nil(t, r)
		require.Equal(t, 0, off)
	}
}

func TestRecord_GetSet(t *testing.T) {
	r := newShape(t)

	v, err := r.Get("name")
	require.NoError(t, err)
	require.Equal(t, "triangle", v.Str)

	require.NoError(t, r.Set("name", String("square")))
	v, err = r.Get("name")
	require.NoError(t, err)
	require.Equal(t, "square", v.Str)

	_, err = r.Get("missing")
	require.ErrorIs(t, err, errs.ErrUnknownField)
	require.ErrorIs(t, r.Set("missing", Bool(true)), errs.ErrUnknownField)
}

func TestRecord_GetSet_ValueCountMismatch(t *testing.T) {
	for _, r := range []*Record{
		{Schema: pointSchema},
		{Schema: pointSchema, Values: []Value{Uint32(1)}},
		{},
	} {
		_, err := r.Get("x")
		require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
		require.ErrorIs(t, r.Set("x", Uint32(2)), errs.ErrInvalidFieldValue)
	}
}

func TestDynamic_UnvalidatedSchema(t *testing.T) {
	bareArray := &Schema{Name: "BareArray", Fields: []Field{
		{Name: "a", Type: Type{Kind: format.KindArray}},
	}}
	bareRecord := &Schema{Name: "BareRecord", Fields: []Field{
		{Name: "r", Type: Type{Kind: format.KindRecord}},
	}}

	data := []byte{1, 0, 0, 0, 7}

	rec, off, err := bareArray.Decode(data, 0)
	require.ErrorIs(t, err, errs.ErrInvalidSchema)
	require.Nil(t, rec)
	require.Equal(t, 0, off)

	rec, off, err = bareRecord.Decode(data, 0)
	require.ErrorIs(t, err, errs.ErrInvalidSchema)
	require.Nil(t, rec)
	require.Equal(t, 0, off)

	buf := wire.NewBuffer(16)
	n, err := (&Record{Schema: bareArray, Values: []Value{Array(Uint8(1))}}).Encode(buf)
	require.ErrorIs(t, err, errs.ErrInvalidSchema)
	require.Equal(t, 0, n)
	require.Equal(t, 0, buf.Len())

	n, err = (&Record{Schema: bareRecord, Values: []Value{Nested(newPoint(t, 1, 2))}}).Encode(buf)
	require.ErrorIs(t, err, errs.ErrInvalidSchema)
	require.Equal(t, 0, n)
	require.Equal(t, 0, buf.Len())
}

func TestSchema_New_ValueCount(t *testing.T) {
	_, err := pointSchema.New(Uint32(1))
	require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
}

func TestSchema_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, shapeSchema.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewSchema("")
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("unnamed field", func(t *testing.T) {
		_, err := NewSchema("S", Field{Type: Uint8Type})
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := NewSchema("S", Field{Name: "a", Type: Uint8Type}, Field{Name: "a", Type: BoolType})
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("array without element", func(t *testing.T) {
		_, err := NewSchema("S", Field{Name: "a", Type: Type{Kind: format.KindArray}})
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("record without schema", func(t *testing.T) {
		_, err := NewSchema("S", Field{Name: "a", Type: Type{Kind: format.KindRecord}})
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewSchema("S", Field{Name: "a", Type: Type{Kind: 0xFF}})
		require.ErrorIs(t, err, errs.ErrInvalidSchema)
	})

	t.Run("self reference", func(t *testing.T) {
		s := &Schema{Name: "Loop"}
		s.Fields = []Field{{Name: "next", Type: RecordOf(s)}}
		require.ErrorIs(t, s.Validate(), errs.ErrInvalidSchema)
	})

	t.Run("shared nested schema is not a cycle", func(t *testing.T) {
		_, err := NewSchema("Line",
			Field{Name: "from", Type: RecordOf(pointSchema)},
			Field{Name: "to", Type: RecordOf(pointSchema)},
		)
		require.NoError(t, err)
	})

	t.Run("must panics", func(t *testing.T) {
		require.Panics(t, func() { MustSchema("") })
	})
}

func TestType_String(t *testing.T) {
	require.Equal(t, "Uint32", Uint32Type.String())
	require.Equal(t, "Array<String>", ArrayOf(StringType).String())
	require.Equal(t, "Array<Array<Int8>>", ArrayOf(ArrayOf(Int8Type)).String())
	require.Equal(t, "Record<Point>", RecordOf(pointSchema).String())
}
