package record

import (
	"fmt"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/internal/pool"
	"github.com/arloliu/rpcwire/wire"
)

// Encode encodes v with fn and appends the result to sink only if encoding
// succeeded. On failure nothing is appended and 0 is returned.
func Encode[T any](sink wire.Sink, v T, fn wire.WriteFunc[T]) (int, error) {
	scratch := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(scratch)

	n, err := fn(scratch, v)
	if err != nil {
		return 0, err
	}
	sink.MustWrite(scratch.Bytes())

	return n, nil
}

// Marshal encodes v with fn into a new byte slice owned by the caller.
func Marshal[T any](v T, fn wire.WriteFunc[T]) ([]byte, error) {
	scratch := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(scratch)

	if _, err := fn(scratch, v); err != nil {
		return nil, err
	}

	out := make([]byte, scratch.Len())
	copy(out, scratch.Bytes())

	return out, nil
}

// Unmarshal decodes exactly one record from data with fn.
//
// Returns errs.ErrTrailingData if fn does not consume all of data.
func Unmarshal[T any](data []byte, fn wire.ReadFunc[T]) (T, error) {
	var zero T

	v, off, err := fn(data, 0)
	if err != nil {
		return zero, err
	}
	if off != len(data) {
		return zero, fmt.Errorf("%w: decoded %d of %d bytes", errs.ErrTrailingData, off, len(data))
	}

	return v, nil
}

// Encodable is implemented by record types that encode themselves.
type Encodable interface {
	Encode(sink wire.Sink) (int, error)
}

// Method adapts an Encodable type to a wire.WriteFunc so that it can be
// passed to Encode, Marshal and PutArray:
//
//	data, err := record.Marshal(reply, record.Method[EnableTopicsReply])
func Method[T Encodable](sink wire.Sink, v T) (int, error) {
	return v.Encode(sink)
}
