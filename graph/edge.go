package graph

// Edge describes a directed graph edge that originates from Src and
// terminates at Dst.
type Edge[V comparable] struct {
	// The origin vertex.
	Src V

	// The destination vertex.
	Dst V
}

// AddEdges inserts every edge into g, adding any missing endpoint as a new
// vertex first. Vertices are added in the order they first appear.
func AddEdges[V comparable](g Graph[V], edges []Edge[V]) error {
	for _, e := range edges {
		if !g.HasVertex(e.Src) {
			g.AddVertex(e.Src)
		}
		if !g.HasVertex(e.Dst) {
			g.AddVertex(e.Dst)
		}
		if err := g.AddEdge(e.Src, e.Dst); err != nil {
			return err
		}
	}
	return nil
}
