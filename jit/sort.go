package jit

import (
	"maps"
	"slices"

	"github.com/gomlx/gomlx/pkg/support/sets"
	"github.com/pkg/errors"
)

// ErrUnorderedGraph is returned (wrapped) when the nodes of a graph are not in topological order,
// or when they can't be put in one.
var ErrUnorderedGraph = errors.New("graph is not in topological order")

// VerifyTopologicalOrder checks that every node only consumes graph inputs or values produced by
// earlier nodes, and that the graph outputs are all defined.
//
// The returned error wraps ErrUnorderedGraph and names the first offending node and value.
func (g *Graph) VerifyTopologicalOrder() error {
	defined := sets.Make[ValueID]()
	for _, input := range g.inputs {
		defined.Insert(input)
	}
	for nodeIdx, node := range g.nodes {
		for _, input := range node.inputs {
			if !defined.Has(input) {
				return errors.Wrapf(ErrUnorderedGraph, "node #%d (%s) consumes %%%s before it is defined",
					nodeIdx, node.kind, g.values[input].DebugName)
			}
		}
		for _, output := range node.outputs {
			defined.Insert(output)
		}
	}
	for _, output := range g.outputs {
		if !defined.Has(output) {
			return errors.Wrapf(ErrUnorderedGraph, "graph output %%%s is never defined", g.values[output].DebugName)
		}
	}
	return nil
}

// Sort reorders the nodes of the graph in a topological order, so that every node comes after the
// producers of its inputs. Nodes without inputs (constants) are moved to the front, and the
// order is deterministic.
//
// It returns an error wrapping ErrUnorderedGraph if the graph has a cycle, and leaves the graph unchanged.
func (g *Graph) Sort() error {
	sortedNodes := make([]*Node, 0, len(g.nodes))

	// Build reverse dependency map.
	valueToDependants := make(map[ValueID]sets.Set[*Node])
	for _, node := range g.nodes {
		for _, input := range node.inputs {
			deps, found := valueToDependants[input]
			if !found {
				deps = sets.Make[*Node]()
				valueToDependants[input] = deps
			}
			deps.Insert(node)
		}
	}

	doneValues := sets.Make[ValueID]()
	doneNodes := sets.Make[*Node]()
	isReady := func(node *Node) bool {
		for _, input := range node.inputs {
			if !doneValues.Has(input) {
				return false
			}
		}
		return true
	}
	nextDoneScan := sets.Make[ValueID]()
	markNodeDone := func(node *Node) {
		sortedNodes = append(sortedNodes, node)
		doneNodes.Insert(node)
		for _, output := range node.outputs {
			doneValues.Insert(output)
			nextDoneScan.Insert(output)
		}
	}

	// Inputs and nodes without inputs are ready from the start.
	for _, input := range g.inputs {
		doneValues.Insert(input)
		nextDoneScan.Insert(input)
	}
	for _, node := range g.nodes {
		if len(node.inputs) == 0 {
			markNodeDone(node)
		}
	}

	// Each round releases the dependants of the values finished in the previous round. Within
	// a round, dependants are released in their current graph order, so the result is deterministic.
	position := make(map[*Node]int, len(g.nodes))
	for ii, node := range g.nodes {
		position[node] = ii
	}
	for len(nextDoneScan) > 0 {
		candidates := sets.Make[*Node]()
		for valueID := range maps.Keys(nextDoneScan) {
			for dep := range maps.Keys(valueToDependants[valueID]) {
				candidates.Insert(dep)
			}
			delete(valueToDependants, valueID)
		}
		clear(nextDoneScan)
		ordered := slices.Collect(maps.Keys(candidates))
		slices.SortFunc(ordered, func(a, b *Node) int { return position[a] - position[b] })
		for _, node := range ordered {
			if doneNodes.Has(node) || !isReady(node) {
				continue
			}
			markNodeDone(node)
		}
	}

	if len(sortedNodes) != len(g.nodes) {
		return errors.Wrapf(ErrUnorderedGraph, "sorting graph failed: only %d out of %d nodes are reachable from the inputs (cycle?)",
			len(sortedNodes), len(g.nodes))
	}
	g.nodes = sortedNodes
	return nil
}
