package shapeinference

import (
	"github.com/gomlx/gomlx/pkg/support/sets"
	"github.com/gomlx/jitshapes/jit"
)

// OpKind enumerates the operators with a shape rule. It's a closed set: any other jit.Symbol is
// reported as an UnsupportedOperator.
type OpKind int

//go:generate go tool enumer -type=OpKind -trimprefix=OpKind -output=gen_opkind_enumer.go opkind.go

const (
	OpKindInvalid OpKind = iota
	OpKindConstant

	// Unary elementwise.
	OpKindTanh
	OpKindRelu
	OpKindSigmoid

	// Binary elementwise, with broadcasting.
	OpKindSub
	OpKindPow
	OpKindMul
	OpKindAdd

	OpKindMatMul
	OpKindAddMM
	OpKindBatchMatMul
	OpKindFusedConcat
	OpKindConstantChunk
)

var symbolToOpKind = map[jit.Symbol]OpKind{
	jit.PrimConstant:      OpKindConstant,
	jit.AtenTanh:          OpKindTanh,
	jit.AtenRelu:          OpKindRelu,
	jit.AtenSigmoid:       OpKindSigmoid,
	jit.AtenSub:           OpKindSub,
	jit.AtenPow:           OpKindPow,
	jit.AtenMul:           OpKindMul,
	jit.AtenAdd:           OpKindAdd,
	jit.AtenMM:            OpKindMatMul,
	jit.AtenAddMM:         OpKindAddMM,
	jit.AtenBMM:           OpKindBatchMatMul,
	jit.PrimFusedConcat:   OpKindFusedConcat,
	jit.PrimConstantChunk: OpKindConstantChunk,
}

// OpKindForSymbol returns the OpKind of the operator symbol, or OpKindInvalid if it has no shape rule.
func OpKindForSymbol(symbol jit.Symbol) OpKind {
	return symbolToOpKind[symbol] // Zero value is OpKindInvalid.
}

// Symbol returns the operator symbol of the kind, or "" for OpKindInvalid.
func (k OpKind) Symbol() jit.Symbol {
	for symbol, kind := range symbolToOpKind {
		if kind == k {
			return symbol
		}
	}
	return ""
}

var (
	// UnaryElementwiseOps take one tensor and return a tensor of the same shape.
	UnaryElementwiseOps = sets.MakeWith(OpKindTanh, OpKindRelu, OpKindSigmoid)

	// BinaryElementwiseOps broadcast their first two operands, an optional third scalar is ignored.
	BinaryElementwiseOps = sets.MakeWith(OpKindSub, OpKindPow, OpKindMul, OpKindAdd)
)

// SupportedSymbols returns the set of operator symbols with a shape rule.
func SupportedSymbols() sets.Set[jit.Symbol] {
	symbols := sets.Make[jit.Symbol](len(symbolToOpKind))
	for _, kind := range OpKindValues() {
		if kind != OpKindInvalid {
			symbols.Insert(kind.Symbol())
		}
	}
	return symbols
}
