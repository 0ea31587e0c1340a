package source

import (
	"fmt"
	"io"
)

// Pipe is a forward-only source, typically standard input fed by an encoder
// that is still producing the stream. Its size is unknowable and forward
// seeks are emulated by reading and discarding.
type Pipe struct {
	r   io.Reader
	pos int64
}

// NewPipe wraps r as a forward-only source.
func NewPipe(r io.Reader) *Pipe {
	return &Pipe{r: r}
}

func (s *Pipe) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.pos += int64(n)
	return n, err
}

func (s *Pipe) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	default:
		return s.pos, fmt.Errorf("seek from end is not supported on a forward-only source")
	}
	if target < s.pos {
		return s.pos, &SeekError{Pos: s.pos, Target: target}
	}
	skipped, err := io.CopyN(io.Discard, s.r, target-s.pos)
	s.pos += skipped
	if err != nil {
		return s.pos, fmt.Errorf("skip to %d: %w", target, err)
	}
	return s.pos, nil
}

func (s *Pipe) Pos() int64 { return s.pos }

func (s *Pipe) Size() int64 { return UnboundedSize }

// Close closes the underlying reader when it is closable.
func (s *Pipe) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ Source = (*Pipe)(nil)
