package jit

import "strings"

// Symbol is the qualified name of an operator, in the form "<namespace>::<name>", e.g. "aten::add".
type Symbol string

// Operator symbols with a shape rule in package shapeinference, plus a few common ones
// used when building graphs.
const (
	PrimConstant      Symbol = "prim::Constant"
	PrimConstantChunk Symbol = "prim::ConstantChunk"
	PrimFusedConcat   Symbol = "prim::FusedConcat"
	PrimListConstruct Symbol = "prim::ListConstruct"

	AtenTanh    Symbol = "aten::tanh"
	AtenRelu    Symbol = "aten::relu"
	AtenSigmoid Symbol = "aten::sigmoid"
	AtenSub     Symbol = "aten::sub"
	AtenPow     Symbol = "aten::pow"
	AtenMul     Symbol = "aten::mul"
	AtenAdd     Symbol = "aten::add"
	AtenMM      Symbol = "aten::mm"
	AtenAddMM   Symbol = "aten::addmm"
	AtenBMM     Symbol = "aten::bmm"
	AtenCat     Symbol = "aten::cat"
)

// Attribute names used by the operators above.
const (
	AttrValue  = "value"
	AttrDim    = "dim"
	AttrChunks = "chunks"
)

// Namespace returns the part of the symbol before "::", or "" if it is not qualified.
func (s Symbol) Namespace() string {
	ns, _, found := strings.Cut(string(s), "::")
	if !found {
		return ""
	}
	return ns
}

// Unqualified returns the name of the symbol without its namespace.
func (s Symbol) Unqualified() string {
	_, name, found := strings.Cut(string(s), "::")
	if !found {
		return string(s)
	}
	return name
}

// QualString returns the fully qualified name, e.g. "aten::add".
func (s Symbol) QualString() string {
	return string(s)
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return string(s)
}
