package frame

import (
	"errors"
	"fmt"

	"github.com/arloliu/rpcwire/compress"
	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/internal/hash"
	"github.com/arloliu/rpcwire/internal/options"
	"github.com/arloliu/rpcwire/internal/pool"
	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

// DefaultMaxPayloadSize is the payload size limit of a Codec created without
// WithMaxPayloadSize.
const DefaultMaxPayloadSize = wire.MaxBytesLength

// Codec frames and unframes messages.
//
// A Codec is immutable after NewCodec returns and is safe for concurrent use.
type Codec struct {
	compression    format.Compression
	maxPayloadSize uint32
	metrics        *Metrics
}

// CodecOption represents a functional option for configuring a Codec.
type CodecOption = options.Option[*Codec]

// WithCompression sets the compression flag stamped by NewHeader.
// The default is format.CompressionNone.
func WithCompression(c format.Compression) CodecOption {
	return options.New(func(codec *Codec) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		codec.compression = c

		return nil
	})
}

// WithMaxPayloadSize sets the largest on-wire payload the Codec will encode
// or accept. It must be positive.
func WithMaxPayloadSize(size uint32) CodecOption {
	return options.New(func(codec *Codec) error {
		if size == 0 {
			return fmt.Errorf("%w: max payload size must be positive", errs.ErrInvalidConfig)
		}
		codec.maxPayloadSize = size

		return nil
	})
}

// NewCodec creates a Codec with the given options applied in order.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{
		compression:    format.CompressionNone,
		maxPayloadSize: DefaultMaxPayloadSize,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compression returns the compression flag stamped by NewHeader.
func (c *Codec) Compression() format.Compression {
	return c.compression
}

// MaxPayloadSize returns the payload size limit.
func (c *Codec) MaxPayloadSize() uint32 {
	return c.maxPayloadSize
}

// NewHeader returns a header for the current version using the Codec's
// compression flag.
func (c *Codec) NewHeader(meta, correlationID uint32) Header {
	return Header{
		Version:       Version,
		Compression:   c.compression,
		Meta:          meta,
		CorrelationID: correlationID,
	}
}

// EncodeMessage encodes payload, compresses it per h.Compression and returns
// the header followed by the on-wire payload in a new slice.
//
// PayloadSize, PayloadChecksum and HeaderChecksum are computed and override
// whatever h holds; a zero Version is replaced by Version. If payload fails
// to encode, no bytes are returned.
func (c *Codec) EncodeMessage(h Header, payload record.Encodable) ([]byte, error) {
	out := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(out)

	if err := c.appendMessage(out, h, payload); err != nil {
		return nil, err
	}

	data := make([]byte, out.Len())
	copy(data, out.Bytes())

	return data, nil
}

// appendMessage appends one complete message to out, or nothing on failure.
func (c *Codec) appendMessage(out *pool.ByteBuffer, h Header, payload record.Encodable) error {
	start := out.Len()
	h, err := c.frameMessage(out, h, payload)
	c.metrics.observe(directionEncode, h, out.Len()-start, err)

	return err
}

func (c *Codec) frameMessage(out *pool.ByteBuffer, h Header, payload record.Encodable) (Header, error) {
	if h.Version == 0 {
		h.Version = Version
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return h, err
	}

	scratch := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(scratch)

	if _, err := payload.Encode(scratch); err != nil {
		return h, fmt.Errorf("payload: %w", err)
	}

	onWire, err := codec.Compress(scratch.Bytes())
	if err != nil {
		return h, fmt.Errorf("compress payload with %s: %w", h.Compression, err)
	}
	if uint64(len(onWire)) > uint64(c.maxPayloadSize) {
		return h, fmt.Errorf("%w: payload size %d exceeds maximum %d", errs.ErrLengthLimit, len(onWire), c.maxPayloadSize)
	}

	h.PayloadSize = uint32(len(onWire)) //nolint:gosec
	h.PayloadChecksum = hash.Payload(onWire)
	h.HeaderChecksum = 0

	start := out.Len()
	out.Grow(HeaderSize + len(onWire))
	if _, err := encodeHeader(out, h); err != nil {
		return h, err
	}
	out.MustWrite(onWire)
	h.HeaderChecksum = stampHeaderChecksum(out.Bytes()[start : start+HeaderSize])

	return h, nil
}

// Unframe verifies a complete message and returns its header and the
// decompressed payload bytes.
//
// buf must hold exactly one message. For uncompressed messages the returned
// payload aliases buf.
func (c *Codec) Unframe(buf []byte) (Header, []byte, error) {
	h, payload, err := c.unframe(buf)
	c.metrics.observe(directionDecode, h, len(buf), err)
	if err != nil {
		return Header{}, nil, err
	}

	return h, payload, nil
}

func (c *Codec) unframe(buf []byte) (Header, []byte, error) {
	h, err := c.verifyHeader(buf)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := c.verifyPayload(h, buf[HeaderSize:])
	if err != nil {
		return Header{}, nil, err
	}

	return h, payload, nil
}

// verifyHeader runs the header state: it decodes the first HeaderSize bytes
// of buf and checks the checksum, version and payload size limit.
func (c *Codec) verifyHeader(buf []byte) (Header, error) {
	h, _, err := DecodeHeader(buf, 0)
	if err != nil {
		return Header{}, err
	}

	if sum := ComputeHeaderChecksum(buf); sum != h.HeaderChecksum {
		return Header{}, fmt.Errorf("%w: header checksum 0x%08x, computed 0x%08x", errs.ErrChecksumMismatch, h.HeaderChecksum, sum)
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.PayloadSize > c.maxPayloadSize {
		return Header{}, fmt.Errorf("%w: payload size %d exceeds maximum %d", errs.ErrLengthLimit, h.PayloadSize, c.maxPayloadSize)
	}

	return h, nil
}

// verifyPayload runs the payload state on the bytes following the header.
func (c *Codec) verifyPayload(h Header, rest []byte) ([]byte, error) {
	size := int(h.PayloadSize)
	if len(rest) < size {
		return nil, fmt.Errorf("%w: payload needs %d bytes, have %d", errs.ErrBounds, size, len(rest))
	}
	if len(rest) > size {
		return nil, fmt.Errorf("%w: %d bytes after %d byte payload", errs.ErrFramingMismatch, len(rest)-size, size)
	}

	if sum := hash.Payload(rest); sum != h.PayloadChecksum {
		return nil, fmt.Errorf("%w: payload checksum 0x%016x, computed 0x%016x", errs.ErrChecksumMismatch, h.PayloadChecksum, sum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(rest)
	if err != nil {
		return nil, fmt.Errorf("decompress payload with %s: %w", h.Compression, err)
	}

	return payload, nil
}

// DecodeMessage unframes buf and decodes its payload with fn.
//
// The payload record must consume every payload byte; a shorter record
// fails with errs.ErrFramingMismatch.
func DecodeMessage[T any](c *Codec, buf []byte, fn wire.ReadFunc[T]) (Header, T, error) {
	var zero T

	h, payload, err := c.Unframe(buf)
	if err != nil {
		return Header{}, zero, err
	}

	v, err := decodePayload(payload, fn)
	if err != nil {
		return Header{}, zero, err
	}

	return h, v, nil
}

func decodePayload[T any](payload []byte, fn wire.ReadFunc[T]) (T, error) {
	v, err := record.Unmarshal(payload, fn)
	if errors.Is(err, errs.ErrTrailingData) {
		return v, fmt.Errorf("%w: %w", errs.ErrFramingMismatch, err)
	}
	if err != nil {
		return v, fmt.Errorf("payload: %w", err)
	}

	return v, nil
}
