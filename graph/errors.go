package graph

import "errors"

var (
	// ErrNotFound is returned when looking up a vertex that is not part of
	// the graph.
	ErrNotFound = errors.New("vertex not found")

	// ErrUnknownEdgeVertices is returned when attempting to create an edge
	// with an invalid source and/or destination vertex.
	ErrUnknownEdgeVertices = errors.New("unknown source and/or destination for edge")
)
