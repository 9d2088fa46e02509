package jit

import (
	"fmt"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "aten", AtenAdd.Namespace())
	assert.Equal(t, "add", AtenAdd.Unqualified())
	assert.Equal(t, "prim::Constant", PrimConstant.QualString())
	assert.Equal(t, "", Symbol("foo").Namespace())
	assert.Equal(t, "foo", Symbol("foo").Unqualified())
}

func TestGraphBuilder(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	y := g.AddInput("", TypeTensor)
	mm := g.AddOp(AtenMM, x, y)
	g.MarkOutput(mm)

	require.Equal(t, 3, g.NumValues())
	assert.Equal(t, []ValueID{x, y}, g.Inputs())
	assert.Equal(t, []ValueID{mm}, g.Outputs())
	assert.Equal(t, "1", g.Value(y).DebugName, "unnamed values use their number")
	assert.True(t, g.Value(x).IsGraphInput())
	assert.Nil(t, g.Value(x).Node())

	node := g.Value(mm).Node()
	require.NotNil(t, node)
	assert.Equal(t, AtenMM, node.Kind())
	assert.Equal(t, g, node.Graph())
	assert.Equal(t, []ValueID{x, y}, node.Inputs())
	assert.Equal(t, mm, node.Output().ID)
	assert.Equal(t, 0, g.Value(mm).Offset())
	assert.False(t, g.Value(mm).IsGraphInput())

	multi := g.AddNode(PrimConstantChunk, []ValueID{mm}, TypeTensor, TypeTensor)
	assert.Len(t, multi.Outputs(), 2)
	assert.Equal(t, 1, g.Value(multi.Outputs()[1]).Offset())
	require.Panics(t, func() { _ = multi.Output() })

	require.Panics(t, func() { g.Value(ValueID(100)) })
	require.Panics(t, func() { g.Value(InvalidValueID) })
	require.Panics(t, func() { g.AddOp(AtenRelu, ValueID(100)) })
	require.Panics(t, func() { g.MarkOutput(ValueID(100)) })
}

func TestAttributes(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	node := g.AddNode(PrimConstantChunk, []ValueID{x}, TypeTensor, TypeTensor).
		SetI(AttrChunks, 2).SetI(AttrDim, -1).SetF("scale", 0.5)

	assert.True(t, node.HasAttribute(AttrChunks))
	assert.False(t, node.HasAttribute(AttrValue))
	assert.Equal(t, int64(2), node.I(AttrChunks))
	assert.Equal(t, int64(-1), node.I(AttrDim))
	assert.Equal(t, 0.5, node.F("scale"))
	assert.Equal(t, int64(7), node.IOr("missing", 7))
	assert.Nil(t, node.Attribute("missing"))
	assert.Equal(t, AttributeFloat, node.Attribute("scale").Kind)

	require.Panics(t, func() { node.I("missing") })
	require.Panics(t, func() { node.F(AttrChunks) }, "wrong kind")
	require.Panics(t, func() { node.IOr("scale", 1) }, "wrong kind")
}

func TestConstants(t *testing.T) {
	g := NewGraph()
	i := g.ConstantInt(3)
	b := g.ConstantBool(true)
	f := g.ConstantFloat(1.5)
	n := g.ConstantNone()
	tensor := tensors.FromShape(shapes.Make(dtypes.Float32, 2, 2))
	ts := g.ConstantTensor(tensor)

	assert.Equal(t, TypeInt, g.Value(i).Type)
	assert.Equal(t, int64(3), g.Value(i).Node().I(AttrValue))
	assert.Equal(t, TypeBool, g.Value(b).Type)
	assert.Equal(t, int64(1), g.Value(b).Node().I(AttrValue))
	assert.Equal(t, 1.5, g.Value(f).Node().F(AttrValue))
	assert.Equal(t, TypeNone, g.Value(n).Type)
	assert.False(t, g.Value(n).Node().HasAttribute(AttrValue))
	assert.Same(t, tensor, g.Value(ts).Node().T(AttrValue))
	for _, node := range g.Nodes() {
		assert.Equal(t, PrimConstant, node.Kind())
		assert.Empty(t, node.Inputs())
	}
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "Tensor", TypeTensor.String())
	assert.Equal(t, "int[]", TypeIntList.String())
	assert.True(t, TypeTensor.IsTensor())
	assert.False(t, TypeInt.IsTensor())
	assert.True(t, TypeBool.IsScalar())
	assert.False(t, TypeNone.IsScalar())
}

func TestGraphString(t *testing.T) {
	g := NewGraph()
	x := g.AddInput("x", TypeTensor)
	c := g.ConstantInt(2)
	y := g.AddOp(AtenAdd, x, c)
	g.MarkOutput(y)
	fmt.Println(g)
	want := "graph(%x : Tensor):\n" +
		"  %1 : int = prim::Constant[value=2]()\n" +
		"  %2 : Tensor = aten::add(%x, %1)\n" +
		"  return (%2)\n"
	assert.Equal(t, want, g.String())
	assert.Equal(t, "JIT Graph: 1 inputs, 1 outputs, 2 nodes, 3 values, op kinds [aten::add prim::Constant]", g.Summary())
}
