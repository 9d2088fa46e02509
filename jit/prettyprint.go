package jit

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gomlx/pkg/support/sets"
)

// String implements fmt.Stringer, and pretty prints the graph in a TorchScript-like format:
//
//	graph(%x : Tensor, %y : Tensor):
//	  %2 : Tensor = aten::mm(%x, %y)
//	  return (%2)
func (g *Graph) String() string {
	var buf bytes.Buffer
	w := func(format string, args ...any) {
		if len(args) == 0 {
			buf.WriteString(format)
		} else {
			buf.WriteString(fmt.Sprintf(format, args...))
		}
	}
	w("graph(%s):\n", g.joinValues(g.inputs, true))
	for _, node := range g.nodes {
		w("  ")
		if len(node.outputs) > 0 {
			w("%s = ", g.joinValues(node.outputs, true))
		}
		w("%s", node.kind)
		if len(node.attributes) > 0 {
			w("[%s]", node.attributesString())
		}
		w("(%s)\n", g.joinValues(node.inputs, false))
	}
	w("  return (%s)\n", g.joinValues(g.outputs, false))
	return buf.String()
}

// Summary returns a short description of the graph: number of nodes, values and the operator kinds used.
func (g *Graph) Summary() string {
	kinds := sets.Make[Symbol]()
	for _, node := range g.nodes {
		kinds.Insert(node.kind)
	}
	sortedKinds := slices.Sorted(maps.Keys(kinds))
	return fmt.Sprintf("JIT Graph: %d inputs, %d outputs, %s nodes, %s values, op kinds %v",
		len(g.inputs), len(g.outputs), humanize.Comma(int64(len(g.nodes))), humanize.Comma(int64(len(g.values))), sortedKinds)
}

func (g *Graph) joinValues(ids []ValueID, withTypes bool) string {
	parts := make([]string, len(ids))
	for ii, id := range ids {
		v := g.values[id]
		if withTypes {
			parts[ii] = fmt.Sprintf("%%%s : %s", v.DebugName, v.Type)
		} else {
			parts[ii] = "%" + v.DebugName
		}
	}
	return strings.Join(parts, ", ")
}

func (n *Node) attributesString() string {
	names := slices.Sorted(maps.Keys(n.attributes))
	parts := make([]string, len(names))
	for ii, name := range names {
		attr := n.attributes[name]
		switch attr.Kind {
		case AttributeInt:
			parts[ii] = fmt.Sprintf("%s=%d", name, attr.I)
		case AttributeFloat:
			parts[ii] = fmt.Sprintf("%s=%g", name, attr.F)
		case AttributeTensor:
			if attr.T == nil {
				parts[ii] = fmt.Sprintf("%s=<nil Tensor>", name)
			} else {
				parts[ii] = fmt.Sprintf("%s=<Tensor %s>", name, attr.T.Shape())
			}
		default:
			parts[ii] = name
		}
	}
	return strings.Join(parts, ", ")
}
