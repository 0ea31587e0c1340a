package source

import (
	"fmt"
	"os"
)

// File is a random-access source backed by a regular file. Its size is
// measured once at open.
type File struct {
	f    *os.File
	size int64
	pos  int64
}

// OpenFile opens path for reading and measures its length.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &File{f: f, size: info.Size()}, nil
}

func (s *File) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	s.pos += int64(n)
	return n, err
}

func (s *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return s.pos, err
	}
	s.pos = pos
	return pos, nil
}

func (s *File) Pos() int64 { return s.pos }

func (s *File) Size() int64 { return s.size }

func (s *File) Close() error { return s.f.Close() }

var _ Source = (*File)(nil)
