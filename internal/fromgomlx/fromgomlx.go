// Package fromgomlx converts GoMLX runtime objects (tensors and shapes) into the plain dimension and
// integer lists used by shape inference.
package fromgomlx

import (
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
)

// Dimensions returns a copy of the dimensions of the shape. Scalars return an empty, non-nil, slice.
func Dimensions(shape shapes.Shape) []int {
	dims := make([]int, len(shape.Dimensions))
	copy(dims, shape.Dimensions)
	return dims
}

// TensorDimensions returns a copy of the dimensions of the tensor.
//
// Only the shape is used: the tensor may live on a device, its contents are never transferred.
func TensorDimensions(t *tensors.Tensor) ([]int, error) {
	if t == nil {
		return nil, errors.New("GoMLX tensor is nil")
	}
	shape := t.Shape()
	if !shape.Ok() {
		return nil, errors.Errorf("GoMLX tensor has an invalid shape %s", shape)
	}
	if shape.IsTuple() {
		return nil, errors.Errorf("GoMLX tuple shapes (%s) are not tensors", shape)
	}
	return Dimensions(shape), nil
}

// Ints converts a slice of any integer type to []int.
func Ints[T interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 }](values []T) []int {
	ints := make([]int, len(values))
	for ii, v := range values {
		ints[ii] = int(v)
	}
	return ints
}
