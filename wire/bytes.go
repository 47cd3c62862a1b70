package wire

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/rpcwire/errs"
)

const (
	// MaxBytesLength is the largest accepted string or buffer length prefix.
	MaxBytesLength = 64 * 1024 * 1024 // 64MiB
	// MaxArrayCount is the largest accepted array element count.
	MaxArrayCount = 1 << 24

	// LengthPrefixSize is the size of the uint32 length/count prefix.
	LengthPrefixSize = 4
)

// readLength decodes a length prefix and checks it against the limit and the
// remaining input.
func readLength(buf []byte, off int, what string) (int, int, error) {
	length, next, err := ReadUint32(buf, off)
	if err != nil {
		return 0, off, fmt.Errorf("%s length: %w", what, err)
	}
	if length > MaxBytesLength {
		return 0, off, fmt.Errorf("%w: %s length %d exceeds maximum %d", errs.ErrLengthLimit, what, length, MaxBytesLength)
	}
	if err := need(buf, next, int(length), what); err != nil {
		return 0, off, err
	}

	return int(length), next, nil
}

// ReadString decodes a uint32 length-prefixed UTF-8 string.
//
// Returns errs.ErrInvalidFieldValue if the bytes are not valid UTF-8.
func ReadString(buf []byte, off int) (string, int, error) {
	length, next, err := readLength(buf, off, "string")
	if err != nil {
		return "", off, err
	}

	data := buf[next : next+length]
	if !utf8.Valid(data) {
		return "", off, fmt.Errorf("%w: string at offset %d is not valid UTF-8", errs.ErrInvalidFieldValue, off)
	}

	return string(data), next + length, nil
}

// ReadBuffer decodes a uint32 length-prefixed byte buffer.
//
// The returned slice is a copy owned by the caller, never nil.
func ReadBuffer(buf []byte, off int) ([]byte, int, error) {
	length, next, err := readLength(buf, off, "buffer")
	if err != nil {
		return nil, off, err
	}

	data := make([]byte, length)
	copy(data, buf[next:next+length])

	return data, next + length, nil
}

func checkLength(length int, what string) error {
	if length > MaxBytesLength {
		return fmt.Errorf("%w: %s length %d exceeds maximum %d", errs.ErrLengthLimit, what, length, MaxBytesLength)
	}

	return nil
}

// WriteString appends s with a uint32 length prefix and returns 4+len(s).
//
// Invalid UTF-8 is rejected with errs.ErrInvalidFieldValue before anything is written.
func WriteString(sink Sink, s string) (int, error) {
	if err := checkLength(len(s), "string"); err != nil {
		return 0, err
	}
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: string is not valid UTF-8", errs.ErrInvalidFieldValue)
	}

	n, _ := WriteUint32(sink, uint32(len(s))) //nolint:gosec
	sink.MustWrite([]byte(s))

	return n + len(s), nil
}

// WriteBuffer appends data with a uint32 length prefix and returns 4+len(data).
func WriteBuffer(sink Sink, data []byte) (int, error) {
	if err := checkLength(len(data), "buffer"); err != nil {
		return 0, err
	}

	n, _ := WriteUint32(sink, uint32(len(data))) //nolint:gosec
	sink.MustWrite(data)

	return n + len(data), nil
}

// SizeString returns the encoded length of s.
func SizeString(s string) int {
	return LengthPrefixSize + len(s)
}

// SizeBuffer returns the encoded length of data.
func SizeBuffer(data []byte) int {
	return LengthPrefixSize + len(data)
}
