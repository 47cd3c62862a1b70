package messages

import (
	"fmt"

	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

// MetadataInfo describes a coprocessor and the topics it consumes.
type MetadataInfo struct {
	Inputs []string
	Name   string
	// Age is a signed byte on the wire even though it is never negative in
	// practice; peers decode it as int8.
	Age    int8
	IsCool bool
	ID     uint64 // varint
	Data   []byte
}

// MetadataInfoSchema is the dynamic layout of MetadataInfo.
var MetadataInfoSchema = record.MustSchema("MetadataInfo",
	record.Field{Name: "inputs", Type: record.ArrayOf(record.StringType)},
	record.Field{Name: "name", Type: record.StringType},
	record.Field{Name: "age", Type: record.Int8Type},
	record.Field{Name: "isCool", Type: record.BoolType},
	record.Field{Name: "id", Type: record.VarIntType},
	record.Field{Name: "data", Type: record.BufferType},
)

// DecodeMetadataInfo decodes a MetadataInfo at off.
func DecodeMetadataInfo(buf []byte, off int) (MetadataInfo, int, error) {
	r := record.NewReader(buf, off)

	var m MetadataInfo
	m.Inputs = record.ReadArray(r, "inputs", wire.ReadString)
	m.Name = r.String("name")
	m.Age = r.Int8("age")
	m.IsCool = r.Bool("isCool")
	m.ID = r.VarInt("id")
	m.Data = r.Buffer("data")

	if err := r.Err(); err != nil {
		return MetadataInfo{}, off, fmt.Errorf("MetadataInfo: %w", err)
	}

	return m, r.Offset(), nil
}

// Encode appends the record to sink and returns the bytes written.
// On failure nothing is appended and 0 is returned.
func (m MetadataInfo) Encode(sink wire.Sink) (int, error) {
	n, err := record.Encode(sink, m, encodeMetadataInfo)
	if err != nil {
		return 0, fmt.Errorf("MetadataInfo: %w", err)
	}

	return n, nil
}

func encodeMetadataInfo(sink wire.Sink, m MetadataInfo) (int, error) {
	w := record.NewWriter(sink)
	record.PutArray(w, "inputs", m.Inputs, wire.WriteString)
	w.String("name", m.Name)
	w.Int8("age", m.Age)
	w.Bool("isCool", m.IsCool)
	w.VarInt("id", m.ID)
	w.Buffer("data", m.Data)

	return w.Result()
}

// Size returns the encoded length of the record.
func (m MetadataInfo) Size() int {
	size := wire.LengthPrefixSize
	for _, in := range m.Inputs {
		size += wire.SizeString(in)
	}

	return size + wire.SizeString(m.Name) + 1 + 1 + wire.SizeVarInt(m.ID) + wire.SizeBuffer(m.Data)
}
