package wire

import "github.com/arloliu/rpcwire/internal/pool"

// Sink is an append-only destination for encoded bytes.
type Sink interface {
	// MustWrite appends data. Sinks grow as needed and cannot fail.
	MustWrite(data []byte)
	// Len returns the total number of bytes appended so far.
	Len() int
}

// Buffer is the default growable Sink.
type Buffer = pool.ByteBuffer

var _ Sink = (*Buffer)(nil)

// NewBuffer creates an empty Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return pool.NewByteBuffer(capacity)
}
