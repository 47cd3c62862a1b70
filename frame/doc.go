// Package frame wraps encoded payload records in the fixed 26-byte message
// header used by every RPC exchange.
//
// # Header Layout
//
//	offset  size  field
//	0       1     Version          (uint8)
//	1       4     HeaderChecksum   (uint32, CRC32C)
//	5       1     Compression      (int8, see format.Compression)
//	6       4     PayloadSize      (uint32, on-wire payload bytes)
//	10      4     Meta             (uint32, method identifier owned by the transport)
//	14      4     CorrelationID    (uint32)
//	18      8     PayloadChecksum  (uint64, xxHash64)
//
// All integers are little-endian. HeaderChecksum is the CRC32C (Castagnoli)
// of every header byte except its own four, that is bytes 0 and 5 through 25.
// PayloadChecksum is the xxHash64 (seed 0) of the payload bytes exactly as
// they follow the header, after compression.
//
// # Decoding
//
// Codec.Unframe runs a two-step state machine. In the header state it
// consumes exactly HeaderSize bytes and verifies the header checksum, the
// version and the payload size limit. In the payload state it consumes exactly
// PayloadSize bytes, verifies the payload checksum and decompresses. Any
// failure is terminal for the message; nothing is repaired or retried.
//
//	codec, _ := frame.NewCodec(frame.WithCompression(format.CompressionS2))
//	data, err := codec.EncodeMessage(frame.Header{CorrelationID: 42}, reply)
//	...
//	hdr, reply, err := frame.DecodeMessage(codec, data, messages.DecodeEnableTopicsReply)
//
// Reader and Writer apply the same rules to a byte stream.
package frame
