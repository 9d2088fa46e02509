// Package jit models the subset of a TorchScript-like JIT graph IR consumed by shape inference.
//
//   - Graph: ordered list of nodes, plus the graph inputs and outputs.
//   - Node: one operator (a Symbol) with its input and output values and named attributes.
//   - Value: one SSA value, identified by a ValueID, the index into the graph's value table.
//
// Graphs are built with NewGraph, Graph.AddInput, Graph.AddNode and Graph.MarkOutput.
// Consumers treat them as read-only.
package jit

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
)

// ValueID identifies a Value in its Graph. It is the index of the value in the graph's value table,
// so it is stable for the lifetime of the graph and cheap to use as a map key.
type ValueID int

// InvalidValueID is returned where there is no value.
const InvalidValueID ValueID = -1

// Value is one SSA value in the graph: either a graph input or the output of a Node.
type Value struct {
	ID        ValueID
	DebugName string
	Type      Type

	// node that produces this value, nil for graph inputs.
	node *Node
	// offset of the value in node's outputs.
	offset int
}

// Node returns the node that produces the value, or nil if it is a graph input.
func (v *Value) Node() *Node {
	return v.node
}

// Offset returns the position of the value in its producing node's outputs.
func (v *Value) Offset() int {
	return v.offset
}

// IsGraphInput returns whether the value is fed by the caller instead of produced by a node.
func (v *Value) IsGraphInput() bool {
	return v.node == nil
}

// Node is one operator application in the graph.
type Node struct {
	graph      *Graph
	kind       Symbol
	inputs     []ValueID
	outputs    []ValueID
	attributes map[string]*Attribute
}

// Kind returns the operator symbol, e.g. "aten::add".
func (n *Node) Kind() Symbol {
	return n.kind
}

// Graph owning the node.
func (n *Node) Graph() *Graph {
	return n.graph
}

// Inputs returns the values consumed by the node, in order. The returned slice must not be modified.
func (n *Node) Inputs() []ValueID {
	return n.inputs
}

// Outputs returns the values produced by the node, in order. The returned slice must not be modified.
func (n *Node) Outputs() []ValueID {
	return n.outputs
}

// Output returns the only output of the node. It panics if the node doesn't have exactly one output.
func (n *Node) Output() *Value {
	if len(n.outputs) != 1 {
		exceptions.Panicf("jit: Node.Output() called on %s, which has %d outputs", n.kind, len(n.outputs))
	}
	return n.graph.values[n.outputs[0]]
}

// Graph is a computation graph: an ordered list of nodes plus the graph inputs and outputs.
type Graph struct {
	values  []*Value
	nodes   []*Node
	inputs  []ValueID
	outputs []ValueID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Nodes returns the nodes in their current order. The returned slice must not be modified.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Inputs returns the graph inputs, in order.
func (g *Graph) Inputs() []ValueID {
	return g.inputs
}

// Outputs returns the graph outputs, in order.
func (g *Graph) Outputs() []ValueID {
	return g.outputs
}

// NumValues returns the number of values in the graph. Valid ValueIDs are in [0, NumValues()).
func (g *Graph) NumValues() int {
	return len(g.values)
}

// Value returns the value with the given id. It panics if id is not a value of the graph.
func (g *Graph) Value(id ValueID) *Value {
	g.assertValue(id)
	return g.values[id]
}

func (g *Graph) assertValue(id ValueID) {
	if id < 0 || int(id) >= len(g.values) {
		exceptions.Panicf("jit: invalid ValueID %d, graph has %d values", id, len(g.values))
	}
}

// newValue appends a value to the value table.
// An empty debugName is replaced by the value's number, as TorchScript does for unnamed values.
func (g *Graph) newValue(debugName string, t Type, node *Node, offset int) ValueID {
	id := ValueID(len(g.values))
	if debugName == "" {
		debugName = fmt.Sprintf("%d", id)
	}
	g.values = append(g.values, &Value{ID: id, DebugName: debugName, Type: t, node: node, offset: offset})
	return id
}

// AddInput appends a graph input with the given debug name and type, and returns its ValueID.
func (g *Graph) AddInput(debugName string, t Type) ValueID {
	id := g.newValue(debugName, t, nil, 0)
	g.inputs = append(g.inputs, id)
	return id
}

// AddNode appends a node of the given kind, consuming inputs and producing one output per given
// output type. Use Graph.Value(node.Outputs()[i]) to access the outputs.
//
// Inputs must be values of this graph, but they don't need to be produced by earlier nodes: see
// Graph.VerifyTopologicalOrder.
func (g *Graph) AddNode(kind Symbol, inputs []ValueID, outputTypes ...Type) *Node {
	for _, input := range inputs {
		g.assertValue(input)
	}
	node := &Node{
		graph:  g,
		kind:   kind,
		inputs: slices.Clone(inputs),
	}
	node.outputs = make([]ValueID, len(outputTypes))
	for ii, t := range outputTypes {
		node.outputs[ii] = g.newValue("", t, node, ii)
	}
	g.nodes = append(g.nodes, node)
	return node
}

// AddOp is a shortcut to AddNode for single-output tensor operators, and returns the output value.
func (g *Graph) AddOp(kind Symbol, inputs ...ValueID) ValueID {
	return g.AddNode(kind, inputs, TypeTensor).outputs[0]
}

// MarkOutput appends the given values to the graph outputs.
func (g *Graph) MarkOutput(ids ...ValueID) {
	for _, id := range ids {
		g.assertValue(id)
	}
	g.outputs = append(g.outputs, ids...)
}

// SetDebugName changes the debug name of a value, used when printing the graph.
func (g *Graph) SetDebugName(id ValueID, debugName string) {
	g.Value(id).DebugName = debugName
}

// NodeIndex returns the position of the node in the graph, or -1 if it is not part of the graph.
func (g *Graph) NodeIndex(node *Node) int {
	return slices.Index(g.nodes, node)
}

// MoveBefore moves node to be immediately before the other node, which must be in the same graph.
//
// It doesn't check that the resulting order is topological.
func (n *Node) MoveBefore(other *Node) {
	g := n.graph
	if other.graph != g {
		exceptions.Panicf("jit: Node.MoveBefore() with nodes from different graphs")
	}
	idx := g.NodeIndex(n)
	if idx < 0 {
		exceptions.Panicf("jit: Node.MoveBefore() with node %s not in graph", n.kind)
	}
	g.nodes = slices.Delete(g.nodes, idx, idx+1)
	otherIdx := g.NodeIndex(other)
	if otherIdx < 0 {
		exceptions.Panicf("jit: Node.MoveBefore() with other node %s not in graph", other.kind)
	}
	g.nodes = slices.Insert(g.nodes, otherIdx, n)
}
