package shapeinference

import (
	"slices"

	"github.com/gomlx/jitshapes/internal/fromgomlx"
	"github.com/gomlx/jitshapes/jit"
	"github.com/pkg/errors"
)

// This file holds the shape rules, one per operator family. They are pure functions of the
// inputs' metadata (and static attributes), and they always return freshly allocated slices.

// Constant returns the payload of a prim::Constant node, based on its declared output type:
//
//   - float: [1], the value itself doesn't matter for shapes.
//   - int or bool: [value].
//   - None: [] (empty).
//   - Tensor: the dimensions of the embedded tensor.
//
// The dispatcher stores the result as the shape for tensors, and as IntValues otherwise.
// Other output types return an UnsupportedInputKind error.
func Constant(node *jit.Node) ([]int, error) {
	t := node.Output().Type
	switch t {
	case jit.TypeFloat:
		return []int{1}, nil
	case jit.TypeInt, jit.TypeBool:
		return []int{int(node.I(jit.AttrValue))}, nil
	case jit.TypeNone:
		return []int{}, nil
	case jit.TypeTensor:
		dims, err := fromgomlx.TensorDimensions(node.T(jit.AttrValue))
		if err != nil {
			return nil, errors.WithStack(&Error{Kind: KindUnsupportedInputKind,
				msg: "tensor constant: " + err.Error(), cause: err})
		}
		return dims, nil
	default:
		return nil, errorf(KindUnsupportedInputKind, nil, "constants of type %s are not supported", t)
	}
}

// UnaryOp returns the shape of an elementwise unary operator (tanh, relu, sigmoid): the same as its input.
func UnaryOp(metas []ValueMeta) ([]int, error) {
	if len(metas) != 1 {
		return nil, arityErrorf(len(metas), "UnaryOp takes 1 input, got %d", len(metas))
	}
	return slices.Clone(metas[0].Shape), nil
}

// BinaryOp returns the shape of an elementwise binary operator (sub, pow, mul, add), broadcasting
// its first two operands. An optional third input (the alpha coefficient of add and sub) is a
// scalar that doesn't affect the shape.
//
// If the second operand has rank 1 it's taken to be a scalar, and the result is the shape of the
// first operand. Otherwise, see Broadcast.
func BinaryOp(metas []ValueMeta) ([]int, error) {
	if len(metas) != 2 && len(metas) != 3 {
		return nil, arityErrorf(len(metas), "BinaryOp takes 2 or 3 inputs, got %d", len(metas))
	}
	return binaryShape(metas[0].Shape, metas[1].Shape)
}

func binaryShape(lhs, rhs []int) ([]int, error) {
	if len(rhs) == 1 {
		return slices.Clone(lhs), nil
	}
	return Broadcast(lhs, rhs)
}

// Broadcast returns the shape resulting from broadcasting lhs and rhs: they are aligned on their
// rightmost axes, the result has the rank of the larger one, and for each axis a missing
// dimension or a dimension of size 1 takes the size of the other operand.
//
// It returns a ShapeMismatch error, with the two conflicting sizes, if the operands have different
// dimensions other than 1 on the same axis.
func Broadcast(lhs, rhs []int) ([]int, error) {
	rank := max(len(lhs), len(rhs))
	output := make([]int, rank)
	for fromRight := range rank {
		lhsAxis, rhsAxis := len(lhs)-1-fromRight, len(rhs)-1-fromRight
		outAxis := rank - 1 - fromRight
		switch {
		case lhsAxis < 0:
			output[outAxis] = rhs[rhsAxis]
		case rhsAxis < 0:
			output[outAxis] = lhs[lhsAxis]
		case lhs[lhsAxis] == rhs[rhsAxis] || rhs[rhsAxis] == 1:
			output[outAxis] = lhs[lhsAxis]
		case lhs[lhsAxis] == 1:
			output[outAxis] = rhs[rhsAxis]
		default:
			a, b := lhs[lhsAxis], rhs[rhsAxis]
			return nil, errorf(KindShapeMismatch, []int{a, b},
				"the size of tensor a (%d) must match the size of tensor b (%d) at non-singleton dimension %d, got shapes %v and %v",
				a, b, outAxis, lhs, rhs)
		}
	}
	return output, nil
}

// MatMul returns the shape of the product of two matrices (aten::mm): [lhs[0], rhs[1]].
func MatMul(metas []ValueMeta) ([]int, error) {
	if len(metas) != 2 {
		return nil, arityErrorf(len(metas), "MatMul takes 2 inputs, got %d", len(metas))
	}
	return matMulShape(metas[0].Shape, metas[1].Shape)
}

func matMulShape(lhs, rhs []int) ([]int, error) {
	if len(lhs) != 2 || len(rhs) != 2 {
		return nil, errorf(KindRankMismatch, []int{len(lhs), len(rhs)},
			"MatMul operands must be matrices (rank 2), got shapes %v and %v", lhs, rhs)
	}
	if lhs[1] != rhs[0] {
		return nil, errorf(KindShapeMismatch, []int{lhs[1], rhs[0]},
			"MatMul contracting dimensions don't match (%d != %d), got shapes %v and %v", lhs[1], rhs[0], lhs, rhs)
	}
	return []int{lhs[0], rhs[1]}, nil
}

// BatchMatMul returns the shape of a batch of matrix products (aten::bmm): [lhs[0], lhs[1], rhs[2]].
func BatchMatMul(metas []ValueMeta) ([]int, error) {
	if len(metas) != 2 {
		return nil, arityErrorf(len(metas), "BatchMatMul takes 2 inputs, got %d", len(metas))
	}
	lhs, rhs := metas[0].Shape, metas[1].Shape
	if len(lhs) != 3 || len(rhs) != 3 {
		return nil, errorf(KindRankMismatch, []int{len(lhs), len(rhs)},
			"BatchMatMul operands must have rank 3, got shapes %v and %v", lhs, rhs)
	}
	if lhs[0] != rhs[0] {
		return nil, errorf(KindShapeMismatch, []int{lhs[0], rhs[0]},
			"BatchMatMul batch dimensions don't match (%d != %d), got shapes %v and %v", lhs[0], rhs[0], lhs, rhs)
	}
	if lhs[2] != rhs[1] {
		return nil, errorf(KindShapeMismatch, []int{lhs[2], rhs[1]},
			"BatchMatMul contracting dimensions don't match (%d != %d), got shapes %v and %v", lhs[2], rhs[1], lhs, rhs)
	}
	return []int{lhs[0], lhs[1], rhs[2]}, nil
}

// AddMM returns the shape of bias + mat1 x mat2 (aten::addmm). Inputs after the third (the beta
// and alpha coefficients) are ignored.
//
// If mat2 has rank 1, mat1's shape is taken as the product's shape.
func AddMM(metas []ValueMeta) ([]int, error) {
	if len(metas) < 3 {
		return nil, arityErrorf(len(metas), "AddMM takes at least 3 inputs, got %d", len(metas))
	}
	var product []int
	if metas[2].Rank() == 1 {
		product = metas[1].Shape
	} else {
		var err error
		product, err = matMulShape(metas[1].Shape, metas[2].Shape)
		if err != nil {
			return nil, errors.WithMessage(err, "AddMM product")
		}
	}
	output, err := binaryShape(metas[0].Shape, product)
	if err != nil {
		return nil, errors.WithMessage(err, "AddMM bias")
	}
	return output, nil
}

// normalizeAxis adjusts negative axes to count from the end, and checks it's in [0, rank).
func normalizeAxis(op string, axis, rank int) (int, error) {
	adjusted := axis
	if adjusted < 0 {
		adjusted += rank
	}
	if adjusted < 0 || adjusted >= rank {
		return 0, errorf(KindDimOutOfRange, []int{axis, rank},
			"%s dimension %d is out of range for rank %d", op, axis, rank)
	}
	return adjusted, nil
}

// ConstantChunk returns the shapes of the pieces of prim::ConstantChunk, which splits its input
// into chunks pieces along dim. Each piece has ceil(size/chunks) elements on dim, except the last
// that takes the remainder.
//
// It returns an ArityMismatch error if chunks <= 0, and a ShapeMismatch error if the dimension is
// too small to leave anything to the last chunk (e.g. 5 split in 4 chunks of 2).
func ConstantChunk(metas []ValueMeta, chunks, dim int) ([][]int, error) {
	if len(metas) != 1 {
		return nil, arityErrorf(len(metas), "ConstantChunk takes 1 input, got %d", len(metas))
	}
	if chunks <= 0 {
		return nil, arityErrorf(chunks, "ConstantChunk needs a positive number of chunks, got %d", chunks)
	}
	shape := metas[0].Shape
	axis, err := normalizeAxis("ConstantChunk", dim, len(shape))
	if err != nil {
		return nil, err
	}
	size := shape[axis]
	chunkSize := size / chunks
	if size%chunks != 0 {
		chunkSize++
	}
	lastSize := size - chunkSize*(chunks-1)
	if lastSize < 0 {
		return nil, errorf(KindShapeMismatch, []int{size, chunks},
			"ConstantChunk can't split dimension %d of size %d into %d chunks of %d", dim, size, chunks, chunkSize)
	}
	outputs := make([][]int, chunks)
	for ii := range outputs {
		outputs[ii] = slices.Clone(shape)
		outputs[ii][axis] = chunkSize
	}
	outputs[chunks-1][axis] = lastSize
	return outputs, nil
}

// FusedConcat returns the shape of the concatenation of its inputs along dim (prim::FusedConcat).
//
// All inputs must have the same rank and the same dimensions, except on the concatenated axis.
// A single input is returned as is, without checking dim.
func FusedConcat(metas []ValueMeta, dim int) ([]int, error) {
	if len(metas) == 0 {
		return nil, arityErrorf(0, "FusedConcat takes at least 1 input, got 0")
	}
	first := metas[0].Shape
	if len(metas) == 1 {
		return slices.Clone(first), nil
	}
	rank := len(first)
	axis, err := normalizeAxis("FusedConcat", dim, rank)
	if err != nil {
		return nil, err
	}
	output := slices.Clone(first)
	for ii, meta := range metas[1:] {
		shape := meta.Shape
		if len(shape) != rank {
			return nil, errorf(KindRankMismatch, []int{rank, len(shape)},
				"FusedConcat input #%d has rank %d, but input #0 has rank %d", ii+1, len(shape), rank)
		}
		for axisIdx, size := range shape {
			if axisIdx == axis {
				output[axis] += size
				continue
			}
			if size != first[axisIdx] {
				return nil, errorf(KindShapeMismatch, []int{first[axisIdx], size},
					"FusedConcat input #%d has dimension %d on axis %d, but input #0 has %d, got shapes %v and %v",
					ii+1, size, axisIdx, first[axisIdx], first, shape)
			}
		}
	}
	return output, nil
}
