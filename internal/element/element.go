package element

import (
	"fmt"
	"io"

	"mkvlive/internal/ebml"
)

// Element is one decoded node of the tree. Every variant can serialize its
// own encoded form: ID, size, then payload.
type Element interface {
	ID() uint32
	Name() string
	Type() ebml.Type
	WriteTo(w io.Writer) (int64, error)

	// ValueString renders the decoded value for diagnostics. Masters
	// return an empty string; their content is their children.
	ValueString() string
}

// writeElement emits the standard wire form. size is usually
// uint64(len(payload)); Segment passes the unbounded placeholder instead.
func writeElement(w io.Writer, id uint32, size uint64, payload []byte) (int64, error) {
	header, err := ebml.AppendID(nil, id)
	if err != nil {
		return 0, err
	}
	header = ebml.AppendSize(header, size)

	n, err := w.Write(header)
	written := int64(n)
	if err != nil {
		return written, err
	}
	n, err = w.Write(payload)
	written += int64(n)
	return written, err
}

// Int is an integer leaf; Type distinguishes unsigned, signed, and date
// interpretation of the same big-endian payload.
type Int struct {
	id    uint32
	name  string
	typ   ebml.Type
	Value uint64
}

// NewInt builds an integer leaf. typ must be one of TypeUint, TypeInt,
// TypeDate.
func NewInt(id uint32, name string, typ ebml.Type, value uint64) *Int {
	return &Int{id: id, name: name, typ: typ, Value: value}
}

func (e *Int) ID() uint32      { return e.id }
func (e *Int) Name() string    { return e.name }
func (e *Int) Type() ebml.Type { return e.typ }

func (e *Int) WriteTo(w io.Writer) (int64, error) {
	payload := ebml.AppendUint(nil, e.Value)
	return writeElement(w, e.id, uint64(len(payload)), payload)
}

func (e *Int) ValueString() string { return fmt.Sprintf("%s = %d", e.typ, e.Value) }

// Float is a floating-point leaf, always re-encoded as an 8-byte double.
type Float struct {
	id    uint32
	name  string
	Value float64
}

func NewFloat(id uint32, name string, value float64) *Float {
	return &Float{id: id, name: name, Value: value}
}

func (e *Float) ID() uint32      { return e.id }
func (e *Float) Name() string    { return e.name }
func (e *Float) Type() ebml.Type { return ebml.TypeFloat }

func (e *Float) WriteTo(w io.Writer) (int64, error) {
	payload := ebml.AppendFloat(nil, e.Value)
	return writeElement(w, e.id, uint64(len(payload)), payload)
}

func (e *Float) ValueString() string { return fmt.Sprintf("float = %g", e.Value) }

// String is an ASCII string leaf.
type String struct {
	id    uint32
	name  string
	Value string
}

func NewString(id uint32, name, value string) *String {
	return &String{id: id, name: name, Value: value}
}

func (e *String) ID() uint32      { return e.id }
func (e *String) Name() string    { return e.name }
func (e *String) Type() ebml.Type { return ebml.TypeString }

func (e *String) WriteTo(w io.Writer) (int64, error) {
	payload := []byte(e.Value)
	return writeElement(w, e.id, uint64(len(payload)), payload)
}

func (e *String) ValueString() string { return fmt.Sprintf("string = %q", e.Value) }

// UTF8 is a UTF-8 string leaf.
type UTF8 struct {
	id    uint32
	name  string
	Value string
}

func NewUTF8(id uint32, name, value string) *UTF8 {
	return &UTF8{id: id, name: name, Value: value}
}

func (e *UTF8) ID() uint32      { return e.id }
func (e *UTF8) Name() string    { return e.name }
func (e *UTF8) Type() ebml.Type { return ebml.TypeUTF8 }

func (e *UTF8) WriteTo(w io.Writer) (int64, error) {
	payload := []byte(e.Value)
	return writeElement(w, e.id, uint64(len(payload)), payload)
}

func (e *UTF8) ValueString() string { return fmt.Sprintf("utf8 = %q", e.Value) }

// Binary is an opaque leaf carried through byte for byte.
type Binary struct {
	id    uint32
	name  string
	Value []byte
}

func NewBinary(id uint32, name string, value []byte) *Binary {
	return &Binary{id: id, name: name, Value: value}
}

func (e *Binary) ID() uint32      { return e.id }
func (e *Binary) Name() string    { return e.name }
func (e *Binary) Type() ebml.Type { return ebml.TypeBinary }

func (e *Binary) WriteTo(w io.Writer) (int64, error) {
	return writeElement(w, e.id, uint64(len(e.Value)), e.Value)
}

func (e *Binary) ValueString() string {
	if len(e.Value) > 4 {
		return fmt.Sprintf("binary = % x ... (%d bytes)", e.Value[:4], len(e.Value))
	}
	return fmt.Sprintf("binary = % x (%d bytes)", e.Value, len(e.Value))
}

var (
	_ Element = (*Int)(nil)
	_ Element = (*Float)(nil)
	_ Element = (*String)(nil)
	_ Element = (*UTF8)(nil)
	_ Element = (*Binary)(nil)
)
