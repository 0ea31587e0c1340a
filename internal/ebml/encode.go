package ebml

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UnknownSize is the largest encodable 8-byte size value. A Segment written
// with this size tells a sequential consumer to keep reading instead of
// trying to determine the real length of a still-growing stream.
const UnknownSize uint64 = 1<<56 - 2

// maxShortSize is the largest value that fits the 4-byte size form.
const maxShortSize uint64 = 1<<28 - 2

// AppendSize appends n encoded as an element size. Sizes are always written
// in the 4-byte form when they fit and the 8-byte form otherwise; the legal
// 1-3 byte forms are never chosen.
func AppendSize(dst []byte, n uint64) []byte {
	if n <= maxShortSize {
		return binary.BigEndian.AppendUint32(dst, 1<<28|uint32(n))
	}
	return binary.BigEndian.AppendUint64(dst, 1<<56|n)
}

// AppendUint appends n as a fixed-length big-endian integer payload, using
// 4 bytes when it fits and 8 bytes otherwise.
func AppendUint(dst []byte, n uint64) []byte {
	if n < 1<<32 {
		return binary.BigEndian.AppendUint32(dst, uint32(n))
	}
	return binary.BigEndian.AppendUint64(dst, n)
}

// AppendFloat appends f as an 8-byte big-endian IEEE double.
func AppendFloat(dst []byte, f float64) []byte {
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
}

// AppendID appends a 1-4 byte element ID, choosing the width from the
// numeric range of the value. IDs below 0x80 have no valid wire form.
func AppendID(dst []byte, id uint32) ([]byte, error) {
	switch {
	case id >= 0x10000000:
		return binary.BigEndian.AppendUint32(dst, id), nil
	case id >= 0x200000:
		return append(dst, byte(id>>16), byte(id>>8), byte(id)), nil
	case id >= 0x4000:
		return binary.BigEndian.AppendUint16(dst, uint16(id)), nil
	case id >= 0x80:
		return append(dst, byte(id)), nil
	default:
		return dst, fmt.Errorf("cannot encode element ID 0x%X: %w", id, ErrFraming)
	}
}
