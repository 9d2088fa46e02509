// Package shapeinference statically infers the shapes of every value of a jit.Graph, given
// concrete instances for the graph inputs.
//
// Bool, int and int list values also have their integer values tracked, so operators that
// consume them can use them.
//
// Example:
//
//	e := shapeinference.New(graph, tensors.FromShape(shapes.Make(dtypes.Float32, 1, 3)))
//	if err := e.Run(); err != nil {
//		return err
//	}
//	fmt.Println(e.OutputShapes())
//
// An Engine does a single pass: create a new one to infer shapes for different inputs.
package shapeinference

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/jitshapes/jit"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Engine infers the shapes of the values of one graph, for one set of inputs.
// It is not safe for concurrent use.
type Engine struct {
	graph  *jit.Graph
	inputs []any

	checkOrder bool
	ran        bool

	store        *metaStore
	outputShapes [][]int
}

// New creates an Engine for graph with the given concrete input instances, one per graph input.
// See InputMeta for the accepted instance types.
//
// Inference happens when Engine.Run is called.
func New(graph *jit.Graph, inputs ...any) *Engine {
	return &Engine{
		graph:      graph,
		inputs:     inputs,
		checkOrder: true,
		store:      newMetaStore(graph.NumValues()),
	}
}

// WithTopologicalCheck enables (the default) or disables the verification that the graph nodes
// are in topological order before inferring shapes.
//
// Without the check, a node consuming a value not yet defined panics with an exception.
func (e *Engine) WithTopologicalCheck(enabled bool) *Engine {
	e.checkOrder = enabled
	return e
}

// Run infers the shapes of every value of the graph, in node order, and stops at the first error.
//
// Errors (see Error) are returned. Malformed graphs and calling Run more than once panic with an exception.
func (e *Engine) Run() error {
	if e.ran {
		exceptions.Panicf("shapeinference: Engine.Run() called twice, create a new Engine for each inference pass")
	}
	e.ran = true
	g := e.graph
	if klog.V(1).Enabled() {
		klog.Infof("shapeinference: %s", g.Summary())
	}

	if len(e.inputs) != len(g.Inputs()) {
		return errors.WithMessage(
			arityErrorf(len(e.inputs), "graph takes %d inputs, %d were given", len(g.Inputs()), len(e.inputs)),
			"while materializing graph inputs")
	}

	if e.checkOrder {
		if err := g.VerifyTopologicalOrder(); err != nil {
			return errors.WithStack(&Error{Kind: KindUnorderedGraph, msg: err.Error(), cause: err})
		}
	} else {
		klog.Warningf("shapeinference: topological order of the graph not verified")
	}

	if err := e.store.materializeInputs(g, e.inputs); err != nil {
		return errors.WithMessage(err, "while materializing graph inputs")
	}

	nodes := g.Nodes()
	for ii, node := range nodes {
		if err := e.shapeOnNode(node); err != nil {
			return errors.WithMessagef(err, "while inferring node #%d (%s) out of %d", ii, node.Kind(), len(nodes))
		}
	}

	e.outputShapes = sliceMap(g.Outputs(), func(id jit.ValueID) []int {
		return e.store.mustGet(g, id).Shape
	})
	if klog.V(1).Enabled() {
		klog.Infof("shapeinference: inferred %d values over %d nodes, outputs %v", e.store.len(), len(nodes), e.outputShapes)
	}
	return nil
}

// OutputShapes returns the shapes of the graph outputs, in order.
// It returns nil if Run hasn't been called or if it failed.
func (e *Engine) OutputShapes() [][]int {
	return sliceMap(e.outputShapes, func(shape []int) []int { return slices.Clone(shape) })
}

// Meta returns the metadata inferred for the value, and whether it was found.
func (e *Engine) Meta(id jit.ValueID) (ValueMeta, bool) {
	meta, found := e.store.get(id)
	if !found {
		return ValueMeta{}, false
	}
	return meta.Clone(), true
}

// Shape returns the shape inferred for the value, and whether it was found.
func (e *Engine) Shape(id jit.ValueID) ([]int, bool) {
	meta, found := e.store.get(id)
	if !found {
		return nil, false
	}
	return slices.Clone(meta.Shape), true
}

// ShapeMap returns a copy of the shapes inferred so far, indexed by value.
// After a failed Run it holds the values inferred before the failure.
func (e *Engine) ShapeMap() map[jit.ValueID][]int {
	shapes := make(map[jit.ValueID][]int, e.store.len())
	for id, meta := range e.store.metas {
		shapes[id] = slices.Clone(meta.Shape)
	}
	return shapes
}

// Infer is a shortcut to create an Engine, run it and return the output shapes.
func Infer(graph *jit.Graph, inputs ...any) ([][]int, error) {
	e := New(graph, inputs...)
	if err := e.Run(); err != nil {
		return nil, err
	}
	return e.OutputShapes(), nil
}

// sliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func sliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	if in == nil {
		return nil
	}
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}
