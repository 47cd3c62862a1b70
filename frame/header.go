package frame

import (
	"fmt"

	"github.com/arloliu/rpcwire/endian"
	"github.com/arloliu/rpcwire/format"
	"github.com/arloliu/rpcwire/internal/hash"
	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

const (
	// Version is the only header version this package produces and accepts.
	Version uint8 = 1
	// HeaderSize is the fixed encoded size of Header.
	HeaderSize = 26

	headerChecksumOffset = 1
	headerChecksumEnd    = 5
)

// Header is the fixed-layout record that precedes every payload.
type Header struct {
	Version         uint8              // byte offset 0
	HeaderChecksum  uint32             // byte offset 1-4
	Compression     format.Compression // byte offset 5
	PayloadSize     uint32             // byte offset 6-9
	Meta            uint32             // byte offset 10-13
	CorrelationID   uint32             // byte offset 14-17
	PayloadChecksum uint64             // byte offset 18-25
}

var _ record.Encodable = Header{}

// DecodeHeader decodes the seven header fields at off exactly as they appear
// on the wire. It does not verify checksums; see Codec.Unframe.
func DecodeHeader(buf []byte, off int) (Header, int, error) {
	r := record.NewReader(buf, off)
	h := Header{
		Version:         r.Uint8("version"),
		HeaderChecksum:  r.Uint32("headerChecksum"),
		Compression:     format.Compression(r.Int8("compression")),
		PayloadSize:     r.Uint32("payloadSize"),
		Meta:            r.Uint32("meta"),
		CorrelationID:   r.Uint32("correlationId"),
		PayloadChecksum: r.Uint64("payloadChecksum"),
	}
	if err := r.Err(); err != nil {
		return Header{}, off, fmt.Errorf("header: %w", err)
	}

	return h, r.Offset(), nil
}

// Encode appends the seven header fields as-is and returns HeaderSize.
// No field is computed or stamped; Codec.EncodeMessage does that.
// On failure nothing is appended and 0 is returned.
func (h Header) Encode(sink wire.Sink) (int, error) {
	return record.Encode(sink, h, encodeHeader)
}

func encodeHeader(sink wire.Sink, h Header) (int, error) {
	w := record.NewWriter(sink)
	w.Uint8("version", h.Version)
	w.Uint32("headerChecksum", h.HeaderChecksum)
	w.Int8("compression", int8(h.Compression))
	w.Uint32("payloadSize", h.PayloadSize)
	w.Uint32("meta", h.Meta)
	w.Uint32("correlationId", h.CorrelationID)
	w.Uint64("payloadChecksum", h.PayloadChecksum)

	return w.Result()
}

// Bytes returns the encoded header as a new HeaderSize slice.
func (h Header) Bytes() []byte {
	buf := wire.NewBuffer(HeaderSize)
	_, _ = h.Encode(buf)

	return buf.Bytes()
}

// ComputeHeaderChecksum returns the CRC32C of an encoded header, skipping the
// four checksum bytes. data must hold at least HeaderSize bytes.
func ComputeHeaderChecksum(data []byte) uint32 {
	return hash.Header(data[:headerChecksumOffset], data[headerChecksumEnd:HeaderSize])
}

// stampHeaderChecksum overwrites the checksum bytes of an encoded header.
func stampHeaderChecksum(data []byte) uint32 {
	sum := ComputeHeaderChecksum(data)
	endian.Wire().PutUint32(data[headerChecksumOffset:headerChecksumEnd], sum)

	return sum
}
