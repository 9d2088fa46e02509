package shapeinference

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/jitshapes/jit"
)

// ValueMeta is the metadata inferred for one graph value.
//
// Values that are bools, ints or int lists also carry their integer values in IntValues, and
// their Shape is then [1] for scalars or [N, 1] for lists of length N.
type ValueMeta struct {
	// Shape holds the dimensions of a tensor, major-to-minor. It is empty for scalar tensors and
	// values for which a shape is not meaningful (e.g. None).
	Shape []int

	// IntValues holds the values of bool (0 or 1), int and int list values. Empty otherwise.
	IntValues []int
}

// Rank of the shape.
func (m ValueMeta) Rank() int {
	return len(m.Shape)
}

// HasValues returns whether the metadata carries integer values.
func (m ValueMeta) HasValues() bool {
	return len(m.IntValues) > 0
}

// Clone returns a deep copy.
func (m ValueMeta) Clone() ValueMeta {
	return ValueMeta{Shape: slices.Clone(m.Shape), IntValues: slices.Clone(m.IntValues)}
}

// String implements fmt.Stringer.
func (m ValueMeta) String() string {
	if m.HasValues() {
		return fmt.Sprintf("%v=%v", m.Shape, m.IntValues)
	}
	return fmt.Sprintf("%v", m.Shape)
}

// metaStore maps graph values to their inferred metadata. Each value is written once.
type metaStore struct {
	metas map[jit.ValueID]ValueMeta
}

func newMetaStore(capacity int) *metaStore {
	return &metaStore{metas: make(map[jit.ValueID]ValueMeta, capacity)}
}

func (s *metaStore) get(id jit.ValueID) (ValueMeta, bool) {
	meta, found := s.metas[id]
	return meta, found
}

// mustGet returns the metadata of id. A missing value means the graph was not in topological order,
// and it panics with an exception.
func (s *metaStore) mustGet(g *jit.Graph, id jit.ValueID) ValueMeta {
	meta, found := s.metas[id]
	if !found {
		exceptions.Panicf("shapeinference: value %%%s used before its shape was inferred -- is the graph in topological order?",
			g.Value(id).DebugName)
	}
	return meta
}

// set stores the metadata of id. Values are only written once: overwriting is an exception.
func (s *metaStore) set(g *jit.Graph, id jit.ValueID, meta ValueMeta) {
	if _, found := s.metas[id]; found {
		exceptions.Panicf("shapeinference: value %%%s was already assigned a shape", g.Value(id).DebugName)
	}
	s.metas[id] = meta
}

func (s *metaStore) len() int {
	return len(s.metas)
}

// sortedIDs returns the ids in the store in increasing order.
func (s *metaStore) sortedIDs() []jit.ValueID {
	return slices.Sorted(maps.Keys(s.metas))
}
