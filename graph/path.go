package graph

// Path is an ordered sequence of vertices. The first element is the start
// vertex and the last element is the destination.
type Path[V comparable] []V

// Len returns the number of edges along the path.
func (p Path[V]) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first vertex of the path.
func (p Path[V]) Start() V {
	return p[0]
}

// End returns the last vertex of the path.
func (p Path[V]) End() V {
	return p[len(p)-1]
}

// NeighborFunc returns the vertices directly reachable from v.
type NeighborFunc[V comparable] func(v V) ([]V, error)

// ShortestPath runs a breadth-first search over candidate paths and returns
// the first one that ends at dst. Since paths are expanded one layer at a
// time, the returned path has the minimum number of edges. A nil path is
// returned if dst cannot be reached from start.
//
// A vertex is only marked as visited once it is dequeued as the tail of a
// path, so several partial paths to the same vertex may be queued at once.
// Errors returned by neighbors are passed through to the caller.
func ShortestPath[V comparable](start, dst V, neighbors NeighborFunc[V]) (Path[V], error) {
	var (
		queue   = []Path[V]{{start}}
		visited = make(map[V]struct{})
	)

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		tail := path.End()
		if tail == dst {
			return path, nil
		}

		if _, seen := visited[tail]; seen {
			continue
		}
		visited[tail] = struct{}{}

		next, err := neighbors(tail)
		if err != nil {
			return nil, err
		}
		for _, v := range next {
			// Each candidate gets its own copy; appending to path directly
			// would share the backing array between siblings.
			candidate := make(Path[V], len(path), len(path)+1)
			copy(candidate, path)
			queue = append(queue, append(candidate, v))
		}
	}

	return nil, nil
}
