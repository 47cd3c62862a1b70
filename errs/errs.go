// Package errs defines the sentinel errors returned by rpcwire.
//
// Errors are wrapped with field and offset context using fmt.Errorf("%w"),
// so callers should match them with errors.Is rather than by comparing
// error strings.
package errs

import "errors"

// Primitive codec errors.
var (
	// ErrBounds indicates that a declared length, count or fixed-width field
	// would read past the end of the input buffer.
	ErrBounds = errors.New("read out of bounds")
	// ErrMalformedVarInt indicates a varint whose continuation chain exceeds
	// the maximum encoded width of a 64-bit value.
	ErrMalformedVarInt = errors.New("malformed varint")
	// ErrLengthLimit indicates a length or count prefix above the configured ceiling.
	ErrLengthLimit = errors.New("length exceeds limit")
	// ErrInvalidFieldValue indicates a value that cannot be represented in its
	// declared wire type, such as an out-of-range integer or invalid UTF-8 text.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Record codec errors.
var (
	ErrInvalidSchema = errors.New("invalid record schema")
	ErrUnknownField  = errors.New("unknown record field")
	// ErrTrailingData indicates bytes left over after a complete record was decoded
	// from an input that should have contained exactly one record.
	ErrTrailingData = errors.New("trailing data after record")
)

// Framing errors.
var (
	// ErrChecksumMismatch indicates that the header or payload checksum did
	// not match the received bytes. The message must be discarded.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrFramingMismatch indicates that the payload size declared in the
	// header disagrees with the bytes actually carried or consumed.
	ErrFramingMismatch        = errors.New("framing mismatch")
	ErrUnsupportedVersion     = errors.New("unsupported header version")
	ErrUnsupportedCompression = errors.New("unsupported compression")
	ErrInvalidConfig          = errors.New("invalid configuration")
)
