package jit

import "github.com/gomlx/gomlx/pkg/core/tensors"

// This file has helpers to add prim::Constant nodes, one per TorchScript constant type:
//
//	int = prim::Constant[value=0]()
//	float = prim::Constant[value=0.5]()
//	bool = prim::Constant[value=0]()
//	None = prim::Constant()
//	Tensor = prim::Constant[value=<Tensor>]()

func (g *Graph) addConstant(t Type) *Node {
	return g.AddNode(PrimConstant, nil, t)
}

// ConstantInt adds an int constant and returns its value.
func (g *Graph) ConstantInt(value int64) ValueID {
	return g.addConstant(TypeInt).SetI(AttrValue, value).outputs[0]
}

// ConstantBool adds a bool constant and returns its value.
func (g *Graph) ConstantBool(value bool) ValueID {
	var i int64
	if value {
		i = 1
	}
	return g.addConstant(TypeBool).SetI(AttrValue, i).outputs[0]
}

// ConstantFloat adds a float constant and returns its value.
func (g *Graph) ConstantFloat(value float64) ValueID {
	return g.addConstant(TypeFloat).SetF(AttrValue, value).outputs[0]
}

// ConstantNone adds a None constant and returns its value.
func (g *Graph) ConstantNone() ValueID {
	return g.addConstant(TypeNone).outputs[0]
}

// ConstantTensor adds a tensor constant and returns its value.
func (g *Graph) ConstantTensor(value *tensors.Tensor) ValueID {
	return g.addConstant(TypeTensor).SetT(AttrValue, value).outputs[0]
}
