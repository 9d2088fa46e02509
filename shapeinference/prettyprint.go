package shapeinference

import (
	"bytes"
	"fmt"
	"strings"

	"k8s.io/klog/v2"
)

// String implements fmt.Stringer, and dumps the metadata inferred so far, one value per line,
// sorted by ValueID and using the values' debug names:
//
//	Shapes (3 values):
//		%x:	[1 3]
//		%1:	[1] = [2]
//		%2:	[1 3]
func (e *Engine) String() string {
	var buf bytes.Buffer
	w := func(format string, args ...any) {
		if len(args) == 0 {
			buf.WriteString(format)
		} else {
			buf.WriteString(fmt.Sprintf(format, args...))
		}
	}
	w("Shapes (%d values):\n", e.store.len())
	for _, id := range e.store.sortedIDs() {
		meta := e.store.metas[id]
		w("\t%%%s:\t%v", e.graph.Value(id).DebugName, meta.Shape)
		if meta.HasValues() {
			w(" = %v", meta.IntValues)
		}
		w("\n")
	}
	return buf.String()
}

// PrintShapeMap logs the metadata inferred so far (see Engine.String), one line per value.
func (e *Engine) PrintShapeMap() {
	for _, line := range strings.Split(strings.TrimSuffix(e.String(), "\n"), "\n") {
		klog.Info(line)
	}
}
