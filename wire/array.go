package wire

import (
	"fmt"

	"github.com/arloliu/rpcwire/errs"
)

// maxArrayPrealloc bounds the initial capacity of a decoded array; larger
// arrays grow through append as their elements are actually decoded.
const maxArrayPrealloc = 4096

// ReadFunc decodes one value of type T at off.
type ReadFunc[T any] func(buf []byte, off int) (T, int, error)

// WriteFunc encodes one value of type T into sink.
type WriteFunc[T any] func(sink Sink, v T) (int, error)

// ReadArray decodes a uint32 count followed by count elements, threading the
// offset through elem for each element in order.
//
// The returned slice is never nil. Pre-allocation is bounded by the bytes
// remaining in buf and by maxArrayPrealloc, so a forged count cannot force a
// large allocation even for wide element types.
func ReadArray[T any](buf []byte, off int, elem ReadFunc[T]) ([]T, int, error) {
	count, next, err := ReadUint32(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("array count: %w", err)
	}
	if count > MaxArrayCount {
		return nil, off, fmt.Errorf("%w: array count %d exceeds maximum %d", errs.ErrLengthLimit, count, MaxArrayCount)
	}

	items := make([]T, 0, min(int(count), len(buf)-next, maxArrayPrealloc))
	for i := range int(count) {
		v, n, err := elem(buf, next)
		if err != nil {
			return nil, off, fmt.Errorf("array element %d: %w", i, err)
		}
		items = append(items, v)
		next = n
	}

	return items, next, nil
}

// WriteArray appends len(items) as a uint32 count followed by each element
// encoded with elem. It returns 4 plus the sum of the element sizes.
func WriteArray[T any](sink Sink, items []T, elem WriteFunc[T]) (int, error) {
	if len(items) > MaxArrayCount {
		return 0, fmt.Errorf("%w: array count %d exceeds maximum %d", errs.ErrLengthLimit, len(items), MaxArrayCount)
	}

	total, _ := WriteUint32(sink, uint32(len(items))) //nolint:gosec
	for i, v := range items {
		n, err := elem(sink, v)
		if err != nil {
			return total, fmt.Errorf("array element %d: %w", i, err)
		}
		total += n
	}

	return total, nil
}
