package jit

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// AttributeKind is the type of value stored in an Attribute.
type AttributeKind int

const (
	AttributeInvalid AttributeKind = iota
	AttributeInt
	AttributeFloat
	AttributeTensor
)

// String implements fmt.Stringer.
func (k AttributeKind) String() string {
	switch k {
	case AttributeInt:
		return "i"
	case AttributeFloat:
		return "f"
	case AttributeTensor:
		return "t"
	default:
		return "invalid"
	}
}

// Attribute is a named static parameter of a Node.
//
// Booleans are stored as integers (0 or 1), as TorchScript does.
type Attribute struct {
	Name string
	Kind AttributeKind
	I    int64
	F    float64
	T    *tensors.Tensor
}

func (n *Node) setAttribute(attr *Attribute) *Node {
	if n.attributes == nil {
		n.attributes = make(map[string]*Attribute)
	}
	n.attributes[attr.Name] = attr
	return n
}

// SetI sets an integer attribute, and returns the node for chaining.
func (n *Node) SetI(name string, value int64) *Node {
	return n.setAttribute(&Attribute{Name: name, Kind: AttributeInt, I: value})
}

// SetF sets a float attribute, and returns the node for chaining.
func (n *Node) SetF(name string, value float64) *Node {
	return n.setAttribute(&Attribute{Name: name, Kind: AttributeFloat, F: value})
}

// SetT sets a tensor attribute, and returns the node for chaining.
func (n *Node) SetT(name string, value *tensors.Tensor) *Node {
	return n.setAttribute(&Attribute{Name: name, Kind: AttributeTensor, T: value})
}

// HasAttribute returns whether the node has an attribute with the given name.
func (n *Node) HasAttribute(name string) bool {
	_, found := n.attributes[name]
	return found
}

// Attribute returns the named attribute, or nil if it is not set.
func (n *Node) Attribute(name string) *Attribute {
	return n.attributes[name]
}

// mustGetAttr returns the attribute with the given name and kind.
// It panics with an exception if the attribute is not set or if it is of the wrong kind.
func (n *Node) mustGetAttr(name string, kind AttributeKind) *Attribute {
	attr := n.attributes[name]
	if attr == nil {
		exceptions.Panicf("jit: %s is missing required attribute %q", n.kind, name)
	}
	if attr.Kind != kind {
		exceptions.Panicf("jit: attribute %q of %s has kind %q, wanted %q", name, n.kind, attr.Kind, kind)
	}
	return attr
}

// I returns the integer attribute with the given name.
// It panics with an exception if the attribute is not set or if it is of the wrong kind.
func (n *Node) I(name string) int64 {
	return n.mustGetAttr(name, AttributeInt).I
}

// F returns the float attribute with the given name.
// It panics with an exception if the attribute is not set or if it is of the wrong kind.
func (n *Node) F(name string) float64 {
	return n.mustGetAttr(name, AttributeFloat).F
}

// T returns the tensor attribute with the given name.
// It panics with an exception if the attribute is not set or if it is of the wrong kind.
func (n *Node) T(name string) *tensors.Tensor {
	return n.mustGetAttr(name, AttributeTensor).T
}

// IOr returns the integer attribute if present, or defaultValue otherwise.
// It panics with an exception if the attribute is present but is of the wrong kind.
func (n *Node) IOr(name string, defaultValue int64) int64 {
	if !n.HasAttribute(name) {
		return defaultValue
	}
	return n.I(name)
}
