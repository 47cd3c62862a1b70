package hash

import (
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Header computes the CRC32C (Castagnoli) checksum over the given parts,
// in order, as if they were one contiguous slice.
func Header(parts ...[]byte) uint32 {
	var crc uint32
	for _, p := range parts {
		crc = crc32.Update(crc, castagnoli, p)
	}

	return crc
}

// Payload computes the xxHash64 (seed 0) of the encoded payload bytes.
func Payload(data []byte) uint64 {
	return xxhash.Sum64(data)
}
