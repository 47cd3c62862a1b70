package messages

import (
	"fmt"

	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

// EnableTopicsReply carries one signed status code per requested topic.
type EnableTopicsReply struct {
	Inputs []int8
}

// EnableTopicsReplySchema is the dynamic layout of EnableTopicsReply.
var EnableTopicsReplySchema = record.MustSchema("EnableTopicsReply",
	record.Field{Name: "inputs", Type: record.ArrayOf(record.Int8Type)},
)

// DecodeEnableTopicsReply decodes an EnableTopicsReply at off.
func DecodeEnableTopicsReply(buf []byte, off int) (EnableTopicsReply, int, error) {
	inputs, next, err := decodeInputs(buf, off)
	if err != nil {
		return EnableTopicsReply{}, off, fmt.Errorf("EnableTopicsReply: %w", err)
	}

	return EnableTopicsReply{Inputs: inputs}, next, nil
}

// Encode appends the reply to sink and returns the bytes written.
// On failure nothing is appended and 0 is returned.
func (m EnableTopicsReply) Encode(sink wire.Sink) (int, error) {
	return encodeInputs(sink, m.Inputs)
}

// Size returns the encoded length of the reply.
func (m EnableTopicsReply) Size() int {
	return wire.LengthPrefixSize + len(m.Inputs)
}

// DisableTopicsReply carries one signed status code per requested topic.
type DisableTopicsReply struct {
	Inputs []int8
}

// DisableTopicsReplySchema is the dynamic layout of DisableTopicsReply.
var DisableTopicsReplySchema = record.MustSchema("DisableTopicsReply",
	record.Field{Name: "inputs", Type: record.ArrayOf(record.Int8Type)},
)

// DecodeDisableTopicsReply decodes a DisableTopicsReply at off.
func DecodeDisableTopicsReply(buf []byte, off int) (DisableTopicsReply, int, error) {
	inputs, next, err := decodeInputs(buf, off)
	if err != nil {
		return DisableTopicsReply{}, off, fmt.Errorf("DisableTopicsReply: %w", err)
	}

	return DisableTopicsReply{Inputs: inputs}, next, nil
}

// Encode appends the reply to sink and returns the bytes written.
// On failure nothing is appended and 0 is returned.
func (m DisableTopicsReply) Encode(sink wire.Sink) (int, error) {
	return encodeInputs(sink, m.Inputs)
}

// Size returns the encoded length of the reply.
func (m DisableTopicsReply) Size() int {
	return wire.LengthPrefixSize + len(m.Inputs)
}

func decodeInputs(buf []byte, off int) ([]int8, int, error) {
	r := record.NewReader(buf, off)
	inputs := record.ReadArray(r, "inputs", wire.ReadInt8)
	if err := r.Err(); err != nil {
		return nil, off, err
	}

	return inputs, r.Offset(), nil
}

// encodeInputs stages the inputs array so that a failed encode leaves sink untouched.
func encodeInputs(sink wire.Sink, inputs []int8) (int, error) {
	return record.Encode(sink, inputs, func(s wire.Sink, v []int8) (int, error) {
		w := record.NewWriter(s)
		record.PutArray(w, "inputs", v, wire.WriteInt8)

		return w.Result()
	})
}
