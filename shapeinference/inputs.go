package shapeinference

import (
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/jitshapes/internal/fromgomlx"
	"github.com/gomlx/jitshapes/jit"
	"github.com/pkg/errors"
)

// InputMeta returns the metadata for one concrete graph input instance.
//
// The accepted instances are:
//
//   - *tensors.Tensor or shapes.Shape: a tensor, only its dimensions are used.
//   - bool, int, int32 or int64: Shape=[1] and IntValues=[value] (true is 1, false is 0).
//   - []int, []int32 or []int64 of length N: Shape=[N, 1] and IntValues are the elements.
//
// Anything else returns an error of kind UnsupportedInputKind.
func InputMeta(input any) (ValueMeta, error) {
	switch v := input.(type) {
	case *tensors.Tensor:
		dims, err := fromgomlx.TensorDimensions(v)
		if err != nil {
			return ValueMeta{}, errors.WithStack(&Error{Kind: KindUnsupportedInputKind, msg: err.Error(), cause: err})
		}
		return ValueMeta{Shape: dims}, nil
	case shapes.Shape:
		if !v.Ok() || v.IsTuple() {
			return ValueMeta{}, errorf(KindUnsupportedInputKind, nil, "shape %s is not a valid tensor shape", v)
		}
		return ValueMeta{Shape: fromgomlx.Dimensions(v)}, nil
	case bool:
		value := 0
		if v {
			value = 1
		}
		return scalarMeta(value), nil
	case int:
		return scalarMeta(v), nil
	case int32:
		return scalarMeta(int(v)), nil
	case int64:
		return scalarMeta(int(v)), nil
	case []int:
		return listMeta(fromgomlx.Ints(v)), nil
	case []int32:
		return listMeta(fromgomlx.Ints(v)), nil
	case []int64:
		return listMeta(fromgomlx.Ints(v)), nil
	default:
		return ValueMeta{}, errorf(KindUnsupportedInputKind, nil, "input of type %T is not a tensor, bool, int or int list", input)
	}
}

func scalarMeta(value int) ValueMeta {
	return ValueMeta{Shape: []int{1}, IntValues: []int{value}}
}

func listMeta(values []int) ValueMeta {
	return ValueMeta{Shape: []int{len(values), 1}, IntValues: values}
}

// materializeInputs stores the metadata of each graph input.
func (s *metaStore) materializeInputs(g *jit.Graph, inputs []any) error {
	graphInputs := g.Inputs()
	if len(inputs) != len(graphInputs) {
		return arityErrorf(len(inputs), "graph takes %d inputs, %d were given", len(graphInputs), len(inputs))
	}
	for ii, input := range inputs {
		meta, err := InputMeta(input)
		if err != nil {
			return errors.WithMessagef(err, "graph input #%d (%%%s)", ii, g.Value(graphInputs[ii]).DebugName)
		}
		s.set(g, graphInputs[ii], meta)
	}
	return nil
}
