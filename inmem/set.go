package inmem

// vertexSet is a set of vertices that remembers the order in which its
// members were inserted. Traversals walk neighbors in that order, which
// keeps their output reproducible.
type vertexSet[V comparable] struct {
	members map[V]struct{}
	order   []V
}

func newVertexSet[V comparable]() *vertexSet[V] {
	return &vertexSet[V]{members: make(map[V]struct{})}
}

// add inserts v and reports whether it was not already present.
func (s *vertexSet[V]) add(v V) bool {
	if s.contains(v) {
		return false
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *vertexSet[V]) contains(v V) bool {
	_, ok := s.members[v]
	return ok
}

// list returns a copy of the members in insertion order.
func (s *vertexSet[V]) list() []V {
	return append([]V(nil), s.order...)
}
