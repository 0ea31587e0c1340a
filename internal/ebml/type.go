package ebml

// Type classifies how an element's payload is interpreted.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeMaster
	TypeUint
	TypeInt
	TypeFloat
	TypeString
	TypeUTF8
	TypeDate
	TypeBinary
)

func (t Type) String() string {
	switch t {
	case TypeMaster:
		return "master"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeUTF8:
		return "utf8"
	case TypeDate:
		return "date"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}
