package ebml

import (
	"fmt"
	"io"
	"math"
)

// ReadID decodes a variable-length element ID (1-4 bytes). The length-class
// bits of the leading byte are retained in the returned value, matching how
// Matroska IDs are catalogued. io.EOF before the first byte is returned
// unchanged so callers can treat it as ordinary end of input; running out of
// bytes mid-ID is a framing error.
func ReadID(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("read element ID: %w", ErrFraming)
	}

	var length int
	switch {
	case b[0]&0x80 != 0:
		length = 1
	case b[0]&0x40 != 0:
		length = 2
	case b[0]&0x20 != 0:
		length = 3
	case b[0]&0x10 != 0:
		length = 4
	default:
		return 0, fmt.Errorf("element ID with leading byte 0x%02X: %w", b[0], ErrFraming)
	}

	if length > 1 {
		if _, err := io.ReadFull(r, b[1:length]); err != nil {
			return 0, fmt.Errorf("read %d-byte element ID: %w", length, ErrFraming)
		}
	}
	return uint32(be(b[:length])), nil
}

// ReadSize decodes a variable-length element size (1-8 bytes). Unlike IDs,
// the length-class bits are stripped from the value. Classes longer than
// four bytes are assembled as two big-endian 32-bit halves.
func ReadSize(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return 0, fmt.Errorf("read element size: %w", ErrFraming)
	}

	var length int
	var mask byte
	switch {
	case b[0]&0x80 != 0:
		length, mask = 1, 0x7f
	case b[0]&0x40 != 0:
		length, mask = 2, 0x3f
	case b[0]&0x20 != 0:
		length, mask = 3, 0x1f
	case b[0]&0x10 != 0:
		length, mask = 4, 0x0f
	case b[0]&0x08 != 0:
		length, mask = 5, 0x07
	case b[0]&0x04 != 0:
		length, mask = 6, 0x03
	case b[0]&0x02 != 0:
		length, mask = 7, 0x01
	case b[0]&0x01 != 0:
		length, mask = 8, 0x00
	default:
		return 0, fmt.Errorf("element size with leading byte 0x00: %w", ErrFraming)
	}

	if length > 1 {
		if _, err := io.ReadFull(r, b[1:length]); err != nil {
			return 0, fmt.Errorf("read %d-byte element size: %w", length, ErrFraming)
		}
	}
	b[0] &= mask

	if length <= 4 {
		return be(b[:length]), nil
	}
	high := be(b[:length-4])
	low := be(b[length-4 : length])
	return high*(1<<32) + low, nil
}

// Uint decodes a fixed-length big-endian unsigned integer of 1-8 bytes.
func Uint(b []byte) (uint64, error) {
	if len(b) == 0 || len(b) > 8 {
		return 0, fmt.Errorf("cannot decode %d-byte integer: %w", len(b), ErrDecode)
	}
	return be(b), nil
}

// Float decodes a 4- or 8-byte IEEE float. A 10-byte extended-precision
// float is reported via ErrExtendedFloat together with a NaN value; the
// caller decides whether to drop the element or keep the sentinel.
func Float(b []byte) (float64, error) {
	switch len(b) {
	case 4:
		return float64(math.Float32frombits(uint32(be(b)))), nil
	case 8:
		return math.Float64frombits(be(b)), nil
	case 10:
		return math.NaN(), ErrExtendedFloat
	default:
		return 0, fmt.Errorf("cannot decode %d-byte float: %w", len(b), ErrDecode)
	}
}

func be(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
