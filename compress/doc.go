// Package compress provides the payload codecs selected by the header
// compression flag.
//
// A framed message carries a signed compression byte in its header. The
// payload record is encoded first; the encoded bytes are then compressed with
// the codec registered for that flag, and the payload size and payload
// checksum in the header describe the compressed bytes as they appear on the
// wire.
//
//	flag                      algorithm
//	format.CompressionNone    payload bytes unchanged
//	format.CompressionZstd    Zstandard (klauspost/compress, or valyala/gozstd with the gozstd build tag and cgo)
//	format.CompressionS2      S2 (klauspost/compress/s2)
//	format.CompressionLZ4     LZ4 block with a varint size prefix (pierrec/lz4)
//
// Every decompressor refuses to produce more than MaxDecompressedSize bytes,
// so a small corrupted or hostile payload cannot expand without bound.
//
// All codecs are safe for concurrent use. Encoders and decoders that keep
// internal state are pooled with sync.Pool.
package compress
