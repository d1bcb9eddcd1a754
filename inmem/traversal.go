package inmem

import (
	"fmt"
	"github.com/ejacobg/graphwalk/graph"
)

// BreadthFirstTraversal returns the vertices reachable from start in
// breadth-first order. A vertex is marked as visited when it is dequeued,
// so it may be queued several times via different predecessors but is only
// emitted once.
func (g *Graph[V]) BreadthFirstTraversal(start V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adjacency[start]; !exists {
		return nil, fmt.Errorf("breadth-first traversal from %v: %w", start, graph.ErrNotFound)
	}

	var (
		queue   = []V{start}
		visited = make(map[V]struct{})
		order   []V
	)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if _, seen := visited[v]; seen {
			continue
		}
		visited[v] = struct{}{}
		order = append(order, v)

		queue = append(queue, g.adjacency[v].order...)
	}

	return order, nil
}

// DepthFirstTraversal returns the vertices reachable from start in
// depth-first order. It follows the same contract as BreadthFirstTraversal
// but uses a stack instead of a queue.
func (g *Graph[V]) DepthFirstTraversal(start V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adjacency[start]; !exists {
		return nil, fmt.Errorf("depth-first traversal from %v: %w", start, graph.ErrNotFound)
	}

	var (
		stack   = []V{start}
		visited = make(map[V]struct{})
		order   []V
	)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[v]; seen {
			continue
		}
		visited[v] = struct{}{}
		order = append(order, v)

		stack = append(stack, g.adjacency[v].order...)
	}

	return order, nil
}

// DepthFirstTraversalRecursive returns the vertices reachable from start in
// depth-first order using recursive descent. The visited set always matches
// the one produced by DepthFirstTraversal although the order may differ.
func (g *Graph[V]) DepthFirstTraversalRecursive(start V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adjacency[start]; !exists {
		return nil, fmt.Errorf("recursive depth-first traversal from %v: %w", start, graph.ErrNotFound)
	}

	t := &traversal[V]{
		adjacency: g.adjacency,
		visited:   make(map[V]struct{}),
	}
	t.visit(start)
	return t.order, nil
}

// traversal holds the state of a single recursive walk so that nothing
// outlives the call that created it.
type traversal[V comparable] struct {
	adjacency map[V]*vertexSet[V]
	visited   map[V]struct{}
	order     []V
}

func (t *traversal[V]) visit(v V) {
	t.visited[v] = struct{}{}
	t.order = append(t.order, v)

	for _, next := range t.adjacency[v].order {
		if _, seen := t.visited[next]; !seen {
			t.visit(next)
		}
	}
}

// BreadthFirstSearch returns the shortest path (by edge count) from start to
// dst. A nil path is returned if dst is unreachable.
func (g *Graph[V]) BreadthFirstSearch(start, dst V) (graph.Path[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adjacency[start]; !exists {
		return nil, fmt.Errorf("breadth-first search from %v: %w", start, graph.ErrNotFound)
	}

	return graph.ShortestPath(start, dst, g.neighbors)
}

// DepthFirstSearch explores the graph in stack order and returns every
// vertex it visits up to and including dst. The result is not guaranteed to
// be a simple path; it may include detours that were backtracked from. A
// nil path is returned if dst is unreachable.
func (g *Graph[V]) DepthFirstSearch(start, dst V) (graph.Path[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.adjacency[start]; !exists {
		return nil, fmt.Errorf("depth-first search from %v: %w", start, graph.ErrNotFound)
	}

	var (
		stack   = []V{start}
		visited = make(map[V]struct{})
		path    graph.Path[V]
	)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[v]; seen {
			continue
		}
		visited[v] = struct{}{}
		path = append(path, v)

		if v == dst {
			return path, nil
		}
		stack = append(stack, g.adjacency[v].order...)
	}

	return nil, nil
}
