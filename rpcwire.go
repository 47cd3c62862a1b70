// Package rpcwire provides a byte-exact binary record codec and the message
// framing used by an RPC transport.
//
// Records are built from little-endian fixed-width integers, LEB128 varints,
// booleans, uint32 length-prefixed strings and buffers, and uint32
// count-prefixed arrays. Every message on the wire is a fixed 26-byte header
// followed by one payload record.
//
// # Core Features
//
//   - Offset-threaded primitive decoders that never read past the input
//   - All-or-nothing record encoding into an append-only sink
//   - Length and count ceilings against allocation attacks
//   - CRC32C header checksum and xxHash64 payload checksum
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - Schema-driven dynamic records for tooling and tests
//
// # Basic Usage
//
// Framing a reply:
//
//	import "github.com/arloliu/rpcwire"
//
//	codec, _ := rpcwire.NewDefaultCodec()
//	reply := messages.EnableTopicsReply{Inputs: []int8{1, 2, 3}}
//	data, err := codec.EncodeMessage(codec.NewHeader(0, 42), reply)
//
// Unframing it on the other side:
//
//	hdr, reply, err := rpcwire.DecodeMessage(codec, data, messages.DecodeEnableTopicsReply)
//	fmt.Println(hdr.CorrelationID, reply.Inputs)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the frame and
// record packages. The wire package holds the primitive codecs, record the
// field sequencing and dynamic schemas, frame the header and message state
// machine, compress the payload codecs and config the YAML settings loader.
package rpcwire

import (
	"io"

	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/frame"
	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

var defaultCodecOptions = []frame.CodecOption{
	frame.WithCompression(format.CompressionNone),
	frame.WithMaxPayloadSize(frame.DefaultMaxPayloadSize),
}

// NewCodec creates a message codec with custom options.
//
// Available options:
//   - frame.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - frame.WithMaxPayloadSize(size)
//   - frame.WithMetrics(frame.NewMetrics(registry))
//
// Returns an error if an option is invalid.
//
// Example:
//
//	codec, err := rpcwire.NewCodec(
//	    frame.WithCompression(format.CompressionS2),
//	    frame.WithMaxPayloadSize(1 << 20),
//	)
func NewCodec(opts ...frame.CodecOption) (*frame.Codec, error) {
	return frame.NewCodec(opts...)
}

// NewDefaultCodec creates a message codec that leaves payloads uncompressed
// and accepts payloads up to frame.DefaultMaxPayloadSize.
func NewDefaultCodec() (*frame.Codec, error) {
	return frame.NewCodec(defaultCodecOptions...)
}

// EncodeMessage frames payload under h with codec.
//
// PayloadSize and both checksums are computed; see frame.Codec.EncodeMessage.
func EncodeMessage(codec *frame.Codec, h frame.Header, payload record.Encodable) ([]byte, error) {
	return codec.EncodeMessage(h, payload)
}

// DecodeMessage verifies one framed message and decodes its payload with fn.
//
// It fails with errs.ErrChecksumMismatch, errs.ErrFramingMismatch,
// errs.ErrBounds or errs.ErrUnsupportedVersion when the message is damaged,
// and never returns a partially decoded payload.
func DecodeMessage[T any](codec *frame.Codec, data []byte, fn wire.ReadFunc[T]) (frame.Header, T, error) {
	return frame.DecodeMessage(codec, data, fn)
}

// NewReader creates a stream reader that verifies each message with codec.
func NewReader(r io.Reader, codec *frame.Codec) *frame.Reader {
	return frame.NewReader(r, codec)
}

// NewWriter creates a stream writer that frames each message with codec.
func NewWriter(w io.Writer, codec *frame.Codec) *frame.Writer {
	return frame.NewWriter(w, codec)
}

// Marshal encodes a single record into a new byte slice without framing.
//
// Example:
//
//	data, err := rpcwire.Marshal(info, record.Method[messages.MetadataInfo])
func Marshal[T any](v T, fn wire.WriteFunc[T]) ([]byte, error) {
	return record.Marshal(v, fn)
}

// Unmarshal decodes exactly one record from data without framing.
func Unmarshal[T any](data []byte, fn wire.ReadFunc[T]) (T, error) {
	return record.Unmarshal(data, fn)
}
