package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of
// the built-in codecs and suits large, repetitive payloads.
//
// The pure Go implementation from klauspost/compress is used by default.
// Building with cgo and the gozstd tag switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
