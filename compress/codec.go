package compress

import (
	"fmt"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/format"
)

// MaxDecompressedSize caps the output of every decompressor.
const MaxDecompressedSize = 128 * 1024 * 1024 // 128MiB

// Compressor compresses an encoded payload.
//
// The returned slice may alias data (the no-op codec does) and must not be
// modified by the caller while data is still in use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if data is corrupted, was produced by another
// algorithm, or would decompress beyond MaxDecompressedSize.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.Compression]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec registered for a header compression flag.
//
// Returns errs.ErrUnsupportedCompression for unknown flags.
func GetCodec(c format.Compression) (Codec, error) {
	if codec, ok := builtinCodecs[c]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: flag %d", errs.ErrUnsupportedCompression, c)
}

func tooLarge(size int) error {
	return fmt.Errorf("%w: decompressed size %d exceeds maximum %d", errs.ErrLengthLimit, size, MaxDecompressedSize)
}
