// Package inmem provides an in-memory graph implementation.
package inmem

import (
	"fmt"
	"github.com/ejacobg/graphwalk/graph"
	"sync"
)

// Compile-time check for ensuring Graph implements graph.Graph.
var _ graph.Graph[string] = (*Graph[string])(nil)

// Graph implements an in-memory directed graph backed by adjacency sets.
// Queries may run concurrently with each other; each traversal keeps its
// own queue, stack and visited set.
type Graph[V comparable] struct {
	mu sync.RWMutex

	// adjacency maps each vertex to the set of vertices its outgoing edges
	// point to.
	adjacency map[V]*vertexSet[V]

	// vertices preserves the order in which vertices were first added.
	vertices []V
}

// NewGraph creates a new, empty in-memory graph.
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		adjacency: make(map[V]*vertexSet[V]),
	}
}

// AddVertex inserts v with an empty neighbor set. Re-adding an existing
// vertex clears its outgoing edges.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[v]; !exists {
		g.vertices = append(g.vertices, v)
	}
	g.adjacency[v] = newVertexSet[V]()
}

// AddEdge creates a directed edge from -> to. Both vertices must already
// exist; AddEdge never creates them.
func (g *Graph[V]) AddEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, srcExists := g.adjacency[from]
	_, dstExists := g.adjacency[to]
	if !srcExists || !dstExists {
		return fmt.Errorf("add edge %v -> %v: %w", from, to, graph.ErrUnknownEdgeVertices)
	}

	src.add(to)
	return nil
}

// HasVertex reports whether v is part of the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.adjacency[v]
	return exists
}

// HasEdge reports whether a directed edge from -> to exists.
func (g *Graph[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src, exists := g.adjacency[from]
	return exists && src.contains(to)
}

// Neighbors returns a copy of the vertices directly reachable from v.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, exists := g.adjacency[v]
	if !exists {
		return nil, fmt.Errorf("neighbors of %v: %w", v, graph.ErrNotFound)
	}
	return set.list(), nil
}

// Vertices returns every vertex in the order it was first added.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]V(nil), g.vertices...)
}

// neighbors is the unlocked variant of Neighbors used by the traversal
// code. The returned slice must not be modified.
func (g *Graph[V]) neighbors(v V) ([]V, error) {
	set, exists := g.adjacency[v]
	if !exists {
		return nil, fmt.Errorf("neighbors of %v: %w", v, graph.ErrNotFound)
	}
	return set.order, nil
}
