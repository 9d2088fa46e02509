package shapeinference

import (
	"maps"
	"slices"

	"github.com/gomlx/jitshapes/jit"
	"k8s.io/klog/v2"
)

// shapeOnNode infers the metadata of the outputs of node, and stores it.
//
// Inputs missing from the store, and missing required attributes, are malformed graphs and panic
// with an exception.
func (e *Engine) shapeOnNode(node *jit.Node) error {
	inputs := node.Inputs()
	metas := make([]ValueMeta, len(inputs))
	for ii, input := range inputs {
		metas[ii] = e.store.mustGet(e.graph, input)
	}

	outputs := node.Outputs()
	var outputShapes [][]int
	kind := OpKindForSymbol(node.Kind())
	switch {
	case kind == OpKindConstant:
		payload, err := Constant(node)
		if err != nil {
			return err
		}
		output := node.Output()
		if output.Type.IsTensor() {
			e.setOutput(output.ID, ValueMeta{Shape: payload})
		} else {
			e.setOutput(output.ID, ValueMeta{Shape: []int{1}, IntValues: payload})
		}
		return nil

	case UnaryElementwiseOps.Has(kind):
		shape, err := UnaryOp(metas)
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case BinaryElementwiseOps.Has(kind):
		shape, err := BinaryOp(metas)
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case kind == OpKindMatMul:
		shape, err := MatMul(metas)
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case kind == OpKindBatchMatMul:
		shape, err := BatchMatMul(metas)
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case kind == OpKindAddMM:
		shape, err := AddMM(metas)
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case kind == OpKindFusedConcat:
		shape, err := FusedConcat(metas, int(node.I(jit.AttrDim)))
		if err != nil {
			return err
		}
		outputShapes = [][]int{shape}

	case kind == OpKindConstantChunk:
		// The number of chunks is fixed by the node outputs: check it before sizing anything on it.
		chunks := node.I(jit.AttrChunks)
		if chunks != int64(len(outputs)) {
			return arityErrorf(int(chunks), "%s with chunks=%d, but the node has %d outputs",
				node.Kind(), chunks, len(outputs))
		}
		var err error
		outputShapes, err = ConstantChunk(metas, int(chunks), int(node.I(jit.AttrDim)))
		if err != nil {
			return err
		}

	default:
		if klog.V(1).Enabled() {
			klog.Infof("shapeinference: %s has no shape rule, supported operators: %v",
				node.Kind(), slices.Sorted(maps.Keys(SupportedSymbols())))
		}
		return unsupportedOperator(node.Kind())
	}

	if len(outputShapes) != len(outputs) {
		return arityErrorf(len(outputShapes), "%s produced %d shapes, but the node has %d outputs",
			node.Kind(), len(outputShapes), len(outputs))
	}
	for ii, output := range outputs {
		e.setOutput(output, ValueMeta{Shape: outputShapes[ii]})
	}
	return nil
}

func (e *Engine) setOutput(id jit.ValueID, meta ValueMeta) {
	e.store.set(e.graph, id, meta)
	if klog.V(2).Enabled() {
		klog.Infof("shapeinference: %%%s = %s", e.graph.Value(id).DebugName, meta)
	}
}
