package ebml

import "errors"

var (
	// ErrFraming reports a malformed ID or size byte pattern. Position
	// tracking is unreliable past the offending byte, so callers abort the
	// current structural level and recover at the parent.
	ErrFraming = errors.New("ebml: framing error")

	// ErrDecode reports an element payload that could not be interpreted as
	// its declared type. The payload has been consumed in full, so callers
	// drop the value and continue with the next sibling.
	ErrDecode = errors.New("ebml: decode error")

	// ErrExtendedFloat reports a 10-byte extended-precision float, which this
	// codec does not interpret. The bytes are consumed; the value is lost.
	ErrExtendedFloat = errors.New("ebml: 10-byte extended float not supported")
)
