package element

import (
	"bytes"
	"io"

	"mkvlive/internal/ebml"
	"mkvlive/internal/matroska"
)

// DurationPlaceholder is the synthesized Info Duration: 100 hours expressed
// in the container's default millisecond timecode unit. A live capture has
// no real duration yet; a long-but-finite one keeps players from either
// stopping early or probing the file length.
const DurationPlaceholder = 100 * 60 * 60 * 1000.0

// Master is an element whose payload is a sequence of child elements.
// Children keep input encounter order. Two IDs carry override behavior set
// at construction: Segment writes the unbounded placeholder size, and Info
// rejects real Duration children and synthesizes the placeholder at
// serialization time.
type Master struct {
	id       uint32
	name     string
	children []Element

	unboundedSize bool
	synthDuration bool
	durationAdded bool
}

// NewMaster builds a Master for the given ID, applying the Segment and Info
// overrides when the ID calls for them.
func NewMaster(id uint32, name string) *Master {
	m := &Master{id: id, name: name}
	switch id {
	case matroska.IDSegment:
		m.unboundedSize = true
	case matroska.IDInfo:
		m.synthDuration = true
	}
	return m
}

// NewRoot builds the ID-less container for level-0 elements. It has no wire
// form of its own; writing it writes only its children.
func NewRoot() *Master {
	return &Master{}
}

func (m *Master) ID() uint32      { return m.id }
func (m *Master) Name() string    { return m.name }
func (m *Master) Type() ebml.Type { return ebml.TypeMaster }

// AddChild appends a child in encounter order. Info drops real Duration
// children here; the placeholder is appended exactly once when the element
// is serialized.
func (m *Master) AddChild(c Element) {
	if m.synthDuration && c.ID() == matroska.IDDuration {
		return
	}
	m.children = append(m.children, c)
}

// Children returns the owned child sequence.
func (m *Master) Children() []Element { return m.children }

// Find returns the first child with the given name, or nil.
func (m *Master) Find(name string) Element {
	for _, c := range m.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// FindMaster returns the first Master child with the given name, or nil.
func (m *Master) FindMaster(name string) *Master {
	for _, c := range m.children {
		if child, ok := c.(*Master); ok && child.name == name {
			return child
		}
	}
	return nil
}

func (m *Master) payload() ([]byte, error) {
	if m.synthDuration && !m.durationAdded {
		m.children = append(m.children, NewFloat(matroska.IDDuration, "Duration", DurationPlaceholder))
		m.durationAdded = true
	}
	var buf bytes.Buffer
	for _, c := range m.children {
		if _, err := c.WriteTo(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (m *Master) WriteTo(w io.Writer) (int64, error) {
	payload, err := m.payload()
	if err != nil {
		return 0, err
	}
	if m.id == 0 {
		n, err := w.Write(payload)
		return int64(n), err
	}
	size := uint64(len(payload))
	if m.unboundedSize {
		size = ebml.UnknownSize
	}
	return writeElement(w, m.id, size, payload)
}

// WriteHeader emits only the element's ID and size, no payload. The live
// rewriter uses this for Segment, whose children follow incrementally.
func (m *Master) WriteHeader(w io.Writer) (int64, error) {
	size := uint64(0)
	if m.unboundedSize {
		size = ebml.UnknownSize
	}
	return writeElement(w, m.id, size, nil)
}

func (m *Master) ValueString() string { return "" }

var _ Element = (*Master)(nil)
