package ebml

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestSizeRoundTrip(t *testing.T) {
	cases := []struct {
		value uint64
		width int
	}{
		{0, 4},
		{1, 4},
		{127, 4},
		{1<<28 - 2, 4},
		{1<<28 - 1, 8},
		{1 << 40, 8},
		{UnknownSize, 8},
	}
	for _, tc := range cases {
		encoded := AppendSize(nil, tc.value)
		if len(encoded) != tc.width {
			t.Errorf("AppendSize(%d): width %d, want %d", tc.value, len(encoded), tc.width)
		}
		got, err := ReadSize(bytes.NewReader(encoded))
		if err != nil {
			t.Fatalf("ReadSize(%d): %v", tc.value, err)
		}
		if got != tc.value {
			t.Errorf("size round trip: got %d, want %d", got, tc.value)
		}
	}
}

func TestReadSizeShortForms(t *testing.T) {
	// Decoding must accept all 1-8 byte classes even though the encoder
	// never emits the short ones.
	cases := []struct {
		input []byte
		want  uint64
	}{
		{[]byte{0x81}, 1},
		{[]byte{0xff}, 127},
		{[]byte{0x41, 0x23}, 0x123},
		{[]byte{0x21, 0x23, 0x45}, 0x12345},
		{[]byte{0x08, 0x01, 0x02, 0x03, 0x04}, 0x01020304},
		{[]byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}, UnknownSize},
	}
	for _, tc := range cases {
		got, err := ReadSize(bytes.NewReader(tc.input))
		if err != nil {
			t.Fatalf("ReadSize(% x): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ReadSize(% x) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestReadSizeZeroByte(t *testing.T) {
	if _, err := ReadSize(bytes.NewReader([]byte{0x00})); !errors.Is(err, ErrFraming) {
		t.Fatalf("expected framing error on zero leading byte, got %v", err)
	}
}

func TestReadIDClasses(t *testing.T) {
	cases := []struct {
		input []byte
		want  uint32
	}{
		{[]byte{0x80}, 0x80},
		{[]byte{0xec}, 0xec},
		{[]byte{0x42, 0x86}, 0x4286},
		{[]byte{0x2a, 0xd7, 0xb1}, 0x2ad7b1},
		{[]byte{0x18, 0x53, 0x80, 0x67}, 0x18538067},
	}
	for _, tc := range cases {
		got, err := ReadID(bytes.NewReader(tc.input))
		if err != nil {
			t.Fatalf("ReadID(% x): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ReadID(% x) = 0x%x, want 0x%x", tc.input, got, tc.want)
		}
	}
}

func TestReadIDErrors(t *testing.T) {
	if _, err := ReadID(bytes.NewReader([]byte{0x7f})); !errors.Is(err, ErrFraming) {
		t.Fatalf("expected framing error on leading byte 0x7F, got %v", err)
	}
	if _, err := ReadID(bytes.NewReader(nil)); err != io.EOF {
		t.Fatalf("expected io.EOF on empty input, got %v", err)
	}
	// Truncated multi-byte ID.
	if _, err := ReadID(bytes.NewReader([]byte{0x18, 0x53})); !errors.Is(err, ErrFraming) {
		t.Fatalf("expected framing error on truncated ID, got %v", err)
	}
}

func TestAppendIDWidths(t *testing.T) {
	cases := []struct {
		id    uint32
		width int
	}{
		{0x80, 1},
		{0x3fff, 1},
		{0x4000, 2},
		{0x1fffff, 2},
		{0x200000, 3},
		{0xfffffff, 3},
		{0x10000000, 4},
		{0x18538067, 4},
	}
	for _, tc := range cases {
		encoded, err := AppendID(nil, tc.id)
		if err != nil {
			t.Fatalf("AppendID(0x%x): %v", tc.id, err)
		}
		if len(encoded) != tc.width {
			t.Errorf("AppendID(0x%x): width %d, want %d", tc.id, len(encoded), tc.width)
		}
	}
	if _, err := AppendID(nil, 0x7f); !errors.Is(err, ErrFraming) {
		t.Fatalf("expected framing error for ID below 0x80, got %v", err)
	}
}

func TestAppendIDRoundTrip(t *testing.T) {
	for _, id := range []uint32{0x80, 0xec, 0x4286, 0x2ad7b1, 0x18538067} {
		encoded, err := AppendID(nil, id)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ReadID(bytes.NewReader(encoded))
		if err != nil {
			t.Fatal(err)
		}
		if got != id {
			t.Errorf("ID round trip: got 0x%x, want 0x%x", got, id)
		}
	}
}

func TestUint(t *testing.T) {
	got, err := Uint([]byte{0x01, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if got != 256 {
		t.Errorf("Uint = %d, want 256", got)
	}
	if _, err := Uint(nil); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error on empty integer, got %v", err)
	}
	if _, err := Uint(make([]byte, 9)); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error on 9-byte integer, got %v", err)
	}
}

func TestAppendUintWidths(t *testing.T) {
	if encoded := AppendUint(nil, 1<<32-1); len(encoded) != 4 {
		t.Errorf("AppendUint(2^32-1): width %d, want 4", len(encoded))
	}
	if encoded := AppendUint(nil, 1<<32); len(encoded) != 8 {
		t.Errorf("AppendUint(2^32): width %d, want 8", len(encoded))
	}
}

func TestFloat(t *testing.T) {
	encoded := AppendFloat(nil, 1234.5)
	if len(encoded) != 8 {
		t.Fatalf("AppendFloat: width %d, want 8", len(encoded))
	}
	got, err := Float(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1234.5 {
		t.Errorf("Float = %v, want 1234.5", got)
	}

	single := []byte{0x3f, 0x80, 0x00, 0x00} // 1.0f
	got, err = Float(single)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.0 {
		t.Errorf("Float(single) = %v, want 1.0", got)
	}

	got, err = Float(make([]byte, 10))
	if !errors.Is(err, ErrExtendedFloat) {
		t.Fatalf("expected ErrExtendedFloat, got %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("extended float sentinel = %v, want NaN", got)
	}

	if _, err := Float(make([]byte, 3)); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error on 3-byte float, got %v", err)
	}
}
