package jit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(g *Graph) []Symbol {
	kinds := make([]Symbol, len(g.Nodes()))
	for ii, node := range g.Nodes() {
		kinds[ii] = node.Kind()
	}
	return kinds
}

func TestVerifyTopologicalOrder(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	h := g.AddOp(AtenRelu, x)
	y := g.AddOp(AtenTanh, h)
	g.MarkOutput(y)
	require.NoError(t, g.VerifyTopologicalOrder())

	g.Value(y).Node().MoveBefore(g.Value(h).Node())
	assert.Equal(t, []Symbol{AtenTanh, AtenRelu}, kinds(g))
	err := g.VerifyTopologicalOrder()
	require.ErrorIs(t, err, ErrUnorderedGraph)
	assert.Contains(t, err.Error(), "node #0 (aten::tanh) consumes %1 before it is defined")

	require.NoError(t, g.Sort())
	assert.Equal(t, []Symbol{AtenRelu, AtenTanh}, kinds(g))
	require.NoError(t, g.VerifyTopologicalOrder())
}

func TestSort(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	a := g.AddOp(AtenRelu, x)
	b := g.AddOp(AtenSigmoid, x)
	sum := g.AddOp(AtenAdd, a, b, g.ConstantInt(1))
	g.MarkOutput(sum)

	// Shuffle: add first, then sigmoid, relu, constant.
	addNode := g.Value(sum).Node()
	g.Value(b).Node().MoveBefore(g.Nodes()[0])
	addNode.MoveBefore(g.Nodes()[0])
	require.Error(t, g.VerifyTopologicalOrder())

	require.NoError(t, g.Sort())
	require.NoError(t, g.VerifyTopologicalOrder())
	assert.Equal(t, PrimConstant, g.Nodes()[0].Kind(), "nodes without inputs come first")
	assert.Equal(t, AtenAdd, g.Nodes()[3].Kind())
	assert.Equal(t, []Symbol{PrimConstant, AtenSigmoid, AtenRelu, AtenAdd}, kinds(g))
}

func TestSortCycle(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	a := g.AddNode(AtenAdd, []ValueID{x}, TypeTensor)
	b := g.AddNode(AtenMul, []ValueID{a.Outputs()[0]}, TypeTensor)
	// Close the cycle: a also consumes b's output.
	a.inputs = append(a.inputs, b.Outputs()[0])
	before := kinds(g)

	err := g.Sort()
	require.ErrorIs(t, err, ErrUnorderedGraph)
	assert.Contains(t, err.Error(), "only 0 out of 2 nodes")
	assert.Equal(t, before, kinds(g), "graph is left unchanged")
}

func TestVerifyUndefinedOutput(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	node := g.AddNode(AtenRelu, []ValueID{x}, TypeTensor)
	g.MarkOutput(node.Outputs()[0])
	g.nodes = nil
	err := g.VerifyTopologicalOrder()
	require.ErrorIs(t, err, ErrUnorderedGraph)
	assert.Contains(t, err.Error(), "graph output %1 is never defined")
}
