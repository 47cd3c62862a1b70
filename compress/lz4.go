package compress

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// that is expensive to allocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

var (
	errLZ4SizePrefix   = errors.New("lz4: invalid size prefix")
	errLZ4SizeMismatch = errors.New("lz4: decompressed size does not match prefix")
)

// LZ4Compressor compresses payloads as a single LZ4 block preceded by the
// decompressed size as an unsigned varint:
//
//	[size:uvarint][lz4 block]
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a size-prefixed LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	prefix := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, err
	}

	return dst[:prefix+n], nil
}

// Decompress decompresses a size-prefixed LZ4 block. The output buffer is
// allocated once from the prefix after checking it against MaxDecompressedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefix := binary.Uvarint(data)
	if prefix <= 0 {
		return nil, errLZ4SizePrefix
	}
	if size > MaxDecompressedSize {
		return nil, tooLarge(int(min(size, MaxDecompressedSize+1))) //nolint:gosec
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[prefix:], out)
	if err != nil {
		return nil, err
	}
	if n != len(out) {
		return nil, errLZ4SizeMismatch
	}

	return out, nil
}
