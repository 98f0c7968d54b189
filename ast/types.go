package ast

// ParamType is the closed enumeration of primitive types a parameter or return
// annotation may name.
type ParamType int

const (
	TypeUnknown ParamType = iota
	TypeInt
	TypeDouble
	TypeVoid
)

// ParamTypeFromName derives a parameter type from a type-name string.  An
// empty name resolves to void; any unrecognized name resolves to TypeUnknown,
// which callers must treat as invalid.
func ParamTypeFromName(name string) ParamType {
	switch name {
	case "Int":
		return TypeInt
	case "Double":
		return TypeDouble
	case "Void", "":
		return TypeVoid
	default:
		return TypeUnknown
	}
}

func (pt ParamType) String() string {
	switch pt {
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	case TypeVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Parameter represents a single named, typed function parameter.  Parameter
// lists are currently constrained to be empty at parse time; the model keeps
// the general shape for forward compatibility.
type Parameter struct {
	Name string
	Type ParamType
}

// ReturnSpec is the parsed return-type annotation of a function.
type ReturnSpec struct {
	Type ParamType
}
