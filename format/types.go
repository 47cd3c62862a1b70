package format

import "strings"

type (
	Kind        uint8
	Compression int8
)

const (
	KindUint8  Kind = 0x1 // KindUint8 represents an unsigned 1-byte integer.
	KindInt8   Kind = 0x2 // KindInt8 represents a signed 1-byte integer.
	KindUint32 Kind = 0x3 // KindUint32 represents an unsigned 4-byte little-endian integer.
	KindUint64 Kind = 0x4 // KindUint64 represents an unsigned 8-byte little-endian integer.
	KindVarInt Kind = 0x5 // KindVarInt represents an unsigned LEB128 variable-length integer.
	KindBool   Kind = 0x6 // KindBool represents a 1-byte boolean.
	KindString Kind = 0x7 // KindString represents a uint32 length-prefixed UTF-8 string.
	KindBuffer Kind = 0x8 // KindBuffer represents a uint32 length-prefixed opaque byte buffer.
	KindArray  Kind = 0x9 // KindArray represents a uint32 count-prefixed homogeneous array.
	KindRecord Kind = 0xA // KindRecord represents a nested record encoded field by field.

	CompressionNone Compression = 0x0 // CompressionNone represents an uncompressed payload.
	CompressionZstd Compression = 0x1 // CompressionZstd represents a Zstandard compressed payload.
	CompressionS2   Compression = 0x2 // CompressionS2 represents an S2 compressed payload.
	CompressionLZ4  Compression = 0x3 // CompressionLZ4 represents an LZ4 block compressed payload.
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "Uint8"
	case KindInt8:
		return "Int8"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindVarInt:
		return "VarInt"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindBuffer:
		return "Buffer"
	case KindArray:
		return "Array"
	case KindRecord:
		return "Record"
	default:
		return "Unknown"
	}
}

// FixedSize returns the encoded size of fixed-width kinds, or 0 for
// variable-length kinds.
func (k Kind) FixedSize() int {
	switch k {
	case KindUint8, KindInt8, KindBool:
		return 1
	case KindUint32:
		return 4
	case KindUint64:
		return 8
	default:
		return 0
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a configuration name to its wire flag.
// Names are matched case-insensitively against String().
func ParseCompression(name string) (Compression, bool) {
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		if strings.EqualFold(name, c.String()) {
			return c, true
		}
	}

	return CompressionNone, false
}
