package source

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.mkv")
	content := []byte("0123456789")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if src.Size() != int64(len(content)) {
		t.Fatalf("Size = %d, want %d", src.Size(), len(content))
	}

	buf := make([]byte, 4)
	if _, err := io.ReadFull(src, buf); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "0123" {
		t.Fatalf("read %q, want 0123", buf)
	}
	if src.Pos() != 4 {
		t.Fatalf("Pos = %d, want 4", src.Pos())
	}

	// Backward seeks are fine on a file.
	if _, err := src.Seek(1, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadFull(src, buf[:1]); err != nil {
		t.Fatal(err)
	}
	if buf[0] != '1' {
		t.Fatalf("read %q after seek, want 1", buf[0])
	}

	if pos, err := src.Seek(-2, io.SeekEnd); err != nil || pos != 8 {
		t.Fatalf("Seek from end = %d, %v", pos, err)
	}
}

func TestPipeForwardSeek(t *testing.T) {
	src := NewPipe(bytes.NewReader([]byte("0123456789")))

	if pos, err := src.Seek(3, io.SeekStart); err != nil || pos != 3 {
		t.Fatalf("forward seek = %d, %v", pos, err)
	}
	buf := make([]byte, 1)
	if _, err := io.ReadFull(src, buf); err != nil {
		t.Fatal(err)
	}
	if buf[0] != '3' {
		t.Fatalf("read %q after discard seek, want 3", buf[0])
	}

	if pos, err := src.Seek(2, io.SeekCurrent); err != nil || pos != 6 {
		t.Fatalf("relative seek = %d, %v", pos, err)
	}
}

func TestPipeBackwardSeekFails(t *testing.T) {
	src := NewPipe(bytes.NewReader([]byte("0123456789")))
	if _, err := src.Seek(5, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	_, err := src.Seek(2, io.SeekStart)
	var seekErr *SeekError
	if !errors.As(err, &seekErr) {
		t.Fatalf("expected *SeekError, got %v", err)
	}
	if seekErr.Pos != 5 || seekErr.Target != 2 {
		t.Fatalf("SeekError = %+v", seekErr)
	}

	if _, err := src.Seek(0, io.SeekEnd); err == nil {
		t.Fatal("expected error for seek from end on a pipe")
	}
}

func TestPipeSizeIsUnbounded(t *testing.T) {
	src := NewPipe(bytes.NewReader(nil))
	if src.Size() != UnboundedSize {
		t.Fatalf("Size = %d, want UnboundedSize", src.Size())
	}
}
