// Package graph defines the directed-graph abstraction shared by the family
// tree and social network exercises.
package graph

// Graph is implemented by objects that can mutate or query a directed graph
// whose vertices are identified by values of type V.
type Graph[V comparable] interface {
	// AddVertex inserts a vertex with an empty neighbor set. Adding an
	// existing vertex clears its outgoing edges.
	AddVertex(v V)

	// AddEdge creates a directed edge from one existing vertex to another.
	AddEdge(from, to V) error

	// HasVertex reports whether v is part of the graph.
	HasVertex(v V) bool

	// HasEdge reports whether a directed edge from -> to exists.
	HasEdge(from, to V) bool

	// Neighbors returns the vertices directly reachable from v in the
	// order their edges were added.
	Neighbors(v V) ([]V, error)

	// Vertices returns every vertex in insertion order.
	Vertices() []V

	// BreadthFirstTraversal returns the vertices reachable from start in
	// breadth-first order.
	BreadthFirstTraversal(start V) ([]V, error)

	// DepthFirstTraversal returns the vertices reachable from start in
	// depth-first order using an explicit stack.
	DepthFirstTraversal(start V) ([]V, error)

	// DepthFirstTraversalRecursive returns the vertices reachable from start
	// in depth-first order using recursive descent.
	DepthFirstTraversalRecursive(start V) ([]V, error)

	// BreadthFirstSearch returns the shortest path from start to dst, or a
	// nil path if dst cannot be reached.
	BreadthFirstSearch(start, dst V) (Path[V], error)

	// DepthFirstSearch returns the vertices visited in depth-first order up
	// to and including dst, or a nil path if dst cannot be reached.
	DepthFirstSearch(start, dst V) (Path[V], error)
}
