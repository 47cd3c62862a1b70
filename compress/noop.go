package compress

// NoOpCompressor passes payloads through unchanged. It backs
// format.CompressionNone.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself without copying.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) > MaxDecompressedSize {
		return nil, tooLarge(len(data))
	}

	return data, nil
}
