package jit

// Type is the static type of a graph Value.
//
// Only the type category matters for shape inference: element types (dtypes) of tensors are
// not tracked.
type Type int

const (
	// TypeInvalid is the zero value, and it is never a valid value type.
	TypeInvalid Type = iota

	// TypeTensor is a tensor of any element type and shape.
	TypeTensor

	// TypeFloat is a Python float scalar.
	TypeFloat

	// TypeInt is a Python int scalar.
	TypeInt

	// TypeBool is a Python bool scalar.
	TypeBool

	// TypeNone is the type of None (e.g. an omitted optional argument).
	TypeNone

	// TypeIntList is a list of ints, e.g. the output of prim::ListConstruct over ints.
	TypeIntList

	// TypeString is a Python str.
	TypeString

	// TypeDevice is a torch.device.
	TypeDevice
)

// String returns a TorchScript-like name for the type.
func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "Invalid"
	case TypeTensor:
		return "Tensor"
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeNone:
		return "None"
	case TypeIntList:
		return "int[]"
	case TypeString:
		return "str"
	case TypeDevice:
		return "Device"
	default:
		return "Unknown"
	}
}

// IsTensor returns whether values of this type are tensors.
func (t Type) IsTensor() bool {
	return t == TypeTensor
}

// IsScalar returns whether values of this type are Python scalars (float, int or bool).
func (t Type) IsScalar() bool {
	return t == TypeFloat || t == TypeInt || t == TypeBool
}
