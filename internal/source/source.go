package source

import (
	"fmt"
	"io"
	"math"
)

// UnboundedSize is what Size reports for a source whose true length cannot
// be known, such as a pipe that is still being written.
const UnboundedSize int64 = math.MaxInt64

// Source is a byte origin the parser pulls from. Reads block until data is
// available or the origin is closed; a short read only happens at true end
// of input.
type Source interface {
	io.Reader
	io.Closer

	// Seek repositions the cursor using the io.Seek* whence values and
	// returns the new position. Forward-only sources reject any move
	// backward with a *SeekError.
	Seek(offset int64, whence int) (int64, error)

	// Pos reports the current cursor position.
	Pos() int64

	// Size reports the total length, or UnboundedSize when it cannot be
	// known. It never blocks.
	Size() int64
}

// SeekError reports a seek a forward-only source cannot perform: the bytes
// between Target and Pos have already been consumed and are gone.
type SeekError struct {
	Pos    int64
	Target int64
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("cannot seek backwards to %d from %d on a forward-only source", e.Target, e.Pos)
}
