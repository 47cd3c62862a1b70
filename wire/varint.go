package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/rpcwire/errs"
)

// MaxVarIntLen is the maximum encoded length of a 64-bit varint.
const MaxVarIntLen = binary.MaxVarintLen64

// ReadVarInt decodes an unsigned LEB128 varint: 7 data bits per byte, least
// significant group first, high bit set on every byte except the last.
//
// Returns errs.ErrMalformedVarInt when the chain is longer than MaxVarIntLen
// bytes or overflows 64 bits, and errs.ErrBounds when the input ends before
// the chain terminates.
func ReadVarInt(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 1, "varint"); err != nil {
		return 0, off, err
	}

	v, n := binary.Uvarint(buf[off:])
	switch {
	case n > 0:
		return v, off + n, nil
	case n == 0:
		return 0, off, fmt.Errorf("%w: varint at offset %d is truncated", errs.ErrBounds, off)
	default:
		return 0, off, fmt.Errorf("%w: continuation chain at offset %d exceeds %d bytes", errs.ErrMalformedVarInt, off, MaxVarIntLen)
	}
}

// WriteVarInt appends v as an unsigned LEB128 varint and returns its length.
func WriteVarInt(sink Sink, v uint64) (int, error) {
	var tmp [MaxVarIntLen]byte
	b := binary.AppendUvarint(tmp[:0], v)
	sink.MustWrite(b)

	return len(b), nil
}

// SizeVarInt returns the encoded length of v.
func SizeVarInt(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
