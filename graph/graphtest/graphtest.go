package graphtest

import (
	"errors"
	"github.com/ejacobg/graphwalk/graph"
	"github.com/google/go-cmp/cmp"
	"sort"
	"testing"
)

// Suite defines a re-usable set of graph-related tests that can
// be executed against any type that implements graph.Graph.
type Suite struct {
	G graph.Graph[string]

	// Optional helper functions.
	BeforeEach func(*testing.T)
	AfterEach  func(*testing.T)
}

func (s *Suite) TestGraph(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*testing.T, graph.Graph[string])
	}{
		{"Add vertex", TestAddVertex},
		{"Add edge", TestAddEdge},
		{"Add edges", TestAddEdges},
		{"Breadth-first traversal", TestBreadthFirstTraversal},
		{"Depth-first traversal", TestDepthFirstTraversal},
		{"Recursive depth-first traversal", TestDepthFirstTraversalRecursive},
		{"Traversals visit reachable set", TestTraversalsVisitReachableSet},
		{"Breadth-first search", TestBreadthFirstSearch},
		{"Depth-first search", TestDepthFirstSearch},
		{"Breadth-first search is shortest", TestBreadthFirstSearchIsShortest},
		{"Unknown start vertex", TestUnknownStartVertex},
	}

	if s.BeforeEach == nil {
		s.BeforeEach = func(t *testing.T) {}
	}

	if s.AfterEach == nil {
		s.AfterEach = func(t *testing.T) {}
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s.BeforeEach(t)
			test.fn(t, s.G)
			s.AfterEach(t)
		})
	}
}

// populate builds the following graph (neighbors listed in insertion order):
//
//	1 -> 2
//	2 -> 4, 3
//	3 -> 5
//	4 -> 7, 6
//	5 -> 3
//	6 -> 3
//	7 -> 1, 6
//	8 (isolated)
func populate(t *testing.T, g graph.Graph[string]) {
	t.Helper()

	for _, v := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		g.AddVertex(v)
	}

	edges := [][2]string{
		{"5", "3"}, {"6", "3"}, {"7", "1"}, {"4", "7"}, {"1", "2"},
		{"7", "6"}, {"2", "4"}, {"3", "5"}, {"2", "3"}, {"4", "6"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("failed to add edge %s -> %s: %v", e[0], e[1], err)
		}
	}
}

// TestAddVertex verifies that re-adding a vertex resets its outgoing edges.
func TestAddVertex(t *testing.T, g graph.Graph[string]) {
	g.AddVertex("a")
	g.AddVertex("b")
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Fatalf("expected vertices a and b to exist")
	}
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("failed to add edge: %v", err)
	}

	g.AddVertex("a")
	neighbors, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("failed to fetch neighbors: %v", err)
	}
	if len(neighbors) != 0 {
		t.Errorf("expected re-added vertex to have no neighbors; got %v", neighbors)
	}

	if diff := cmp.Diff([]string{"a", "b"}, g.Vertices()); diff != "" {
		t.Errorf("unexpected vertex list (-want +got):\n%s", diff)
	}
}

// TestAddEdge verifies that edges can only connect existing vertices.
func TestAddEdge(t *testing.T, g graph.Graph[string]) {
	g.AddVertex("a")
	g.AddVertex("b")

	for _, e := range [][2]string{{"a", "missing"}, {"missing", "a"}, {"x", "y"}} {
		err := g.AddEdge(e[0], e[1])
		if !errors.Is(err, graph.ErrUnknownEdgeVertices) {
			t.Errorf("edge %s -> %s: unexpected error %v, want %v", e[0], e[1], err, graph.ErrUnknownEdgeVertices)
		}
	}
	for _, v := range []string{"missing", "x", "y"} {
		if g.HasVertex(v) {
			t.Errorf("failed edge insertion created vertex %q", v)
		}
	}

	// Edges are directed and adding the same edge twice is a no-op.
	for i := 0; i < 2; i++ {
		if err := g.AddEdge("a", "b"); err != nil {
			t.Fatalf("failed to add edge: %v", err)
		}
	}
	if !g.HasEdge("a", "b") {
		t.Errorf("expected edge a -> b to exist")
	}
	if g.HasEdge("b", "a") {
		t.Errorf("expected edge b -> a not to exist")
	}
	neighbors, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("failed to fetch neighbors: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, neighbors); diff != "" {
		t.Errorf("unexpected neighbors (-want +got):\n%s", diff)
	}

	// Self-loops are allowed at this layer.
	if err = g.AddEdge("b", "b"); err != nil {
		t.Errorf("unexpected error adding self-loop: %v", err)
	}
}

// TestAddEdges verifies that AddEdges creates missing endpoints.
func TestAddEdges(t *testing.T, g graph.Graph[string]) {
	edges := []graph.Edge[string]{
		{Src: "p", Dst: "c"},
		{Src: "q", Dst: "c"},
		{Src: "c", Dst: "g"},
	}
	if err := graph.AddEdges(g, edges); err != nil {
		t.Fatalf("failed to add edges: %v", err)
	}

	if diff := cmp.Diff([]string{"p", "c", "q", "g"}, g.Vertices()); diff != "" {
		t.Errorf("unexpected vertex list (-want +got):\n%s", diff)
	}
	for _, e := range edges {
		if !g.HasEdge(e.Src, e.Dst) {
			t.Errorf("expected edge %s -> %s to exist", e.Src, e.Dst)
		}
	}
}

// TestBreadthFirstTraversal verifies the breadth-first visitation order.
func TestBreadthFirstTraversal(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	got, err := g.BreadthFirstTraversal("1")
	if err != nil {
		t.Fatalf("traversal failed: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2", "4", "3", "7", "6", "5"}, got); diff != "" {
		t.Errorf("unexpected visitation order (-want +got):\n%s", diff)
	}
}

// TestDepthFirstTraversal verifies the iterative depth-first visitation order.
func TestDepthFirstTraversal(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	got, err := g.DepthFirstTraversal("1")
	if err != nil {
		t.Fatalf("traversal failed: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "5", "4", "6", "7"}, got); diff != "" {
		t.Errorf("unexpected visitation order (-want +got):\n%s", diff)
	}
}

// TestDepthFirstTraversalRecursive verifies the recursive depth-first
// visitation order and that repeated calls do not leak visited state.
func TestDepthFirstTraversalRecursive(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	want := []string{"1", "2", "4", "7", "6", "3", "5"}
	for i := 0; i < 2; i++ {
		got, err := g.DepthFirstTraversalRecursive("1")
		if err != nil {
			t.Fatalf("traversal failed: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("run %d: unexpected visitation order (-want +got):\n%s", i, diff)
		}
	}
}

// TestTraversalsVisitReachableSet verifies that all traversal variants visit
// exactly the set of vertices reachable from the start vertex.
func TestTraversalsVisitReachableSet(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	traversals := map[string]func(string) ([]string, error){
		"bft":           g.BreadthFirstTraversal,
		"dft":           g.DepthFirstTraversal,
		"dft-recursive": g.DepthFirstTraversalRecursive,
	}

	for _, start := range g.Vertices() {
		want := []string{"1", "2", "3", "4", "5", "6", "7"}
		switch start {
		case "3", "5":
			want = []string{"3", "5"}
		case "6":
			want = []string{"3", "5", "6"}
		case "8":
			want = []string{"8"}
		}

		for name, fn := range traversals {
			got, err := fn(start)
			if err != nil {
				t.Fatalf("%s from %s failed: %v", name, start, err)
			}
			if len(got) != len(uniq(got)) {
				t.Errorf("%s from %s emitted duplicates: %v", name, start, got)
			}
			if diff := cmp.Diff(want, sorted(got)); diff != "" {
				t.Errorf("%s from %s: unexpected visited set (-want +got):\n%s", name, start, diff)
			}
		}
	}
}

// TestBreadthFirstSearch verifies shortest path lookups.
func TestBreadthFirstSearch(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	specs := []struct {
		start, dst string
		want       graph.Path[string]
	}{
		{"1", "6", graph.Path[string]{"1", "2", "4", "6"}},
		{"1", "5", graph.Path[string]{"1", "2", "3", "5"}},
		{"7", "3", graph.Path[string]{"7", "6", "3"}},
		{"4", "4", graph.Path[string]{"4"}},
		{"3", "1", nil},
		{"1", "8", nil},
		{"1", "unknown", nil},
	}

	for _, spec := range specs {
		got, err := g.BreadthFirstSearch(spec.start, spec.dst)
		if err != nil {
			t.Fatalf("search %s -> %s failed: %v", spec.start, spec.dst, err)
		}
		if diff := cmp.Diff(spec.want, got); diff != "" {
			t.Errorf("search %s -> %s: unexpected path (-want +got):\n%s", spec.start, spec.dst, diff)
		}
	}
}

// TestDepthFirstSearch verifies that depth-first search returns every vertex
// it visited on the way to the destination.
func TestDepthFirstSearch(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	got, err := g.DepthFirstSearch("1", "6")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if diff := cmp.Diff(graph.Path[string]{"1", "2", "3", "5", "4", "6"}, got); diff != "" {
		t.Errorf("unexpected path (-want +got):\n%s", diff)
	}

	if got, err = g.DepthFirstSearch("3", "1"); err != nil {
		t.Fatalf("search failed: %v", err)
	} else if got != nil {
		t.Errorf("expected unreachable destination to yield a nil path; got %v", got)
	}
}

// TestBreadthFirstSearchIsShortest verifies that, for every reachable pair,
// the breadth-first path is never longer than the depth-first result.
func TestBreadthFirstSearchIsShortest(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	for _, start := range g.Vertices() {
		for _, dst := range g.Vertices() {
			bfs, err := g.BreadthFirstSearch(start, dst)
			if err != nil {
				t.Fatalf("bfs %s -> %s failed: %v", start, dst, err)
			}
			dfs, err := g.DepthFirstSearch(start, dst)
			if err != nil {
				t.Fatalf("dfs %s -> %s failed: %v", start, dst, err)
			}

			if (bfs == nil) != (dfs == nil) {
				t.Errorf("%s -> %s: bfs and dfs disagree on reachability (%v vs %v)", start, dst, bfs, dfs)
				continue
			}
			if bfs == nil {
				continue
			}
			if bfs.Start() != start || bfs.End() != dst {
				t.Errorf("%s -> %s: bfs returned path with wrong endpoints %v", start, dst, bfs)
			}
			if bfs.Len() > dfs.Len() {
				t.Errorf("%s -> %s: bfs path %v longer than dfs path %v", start, dst, bfs, dfs)
			}
			for i := 0; i+1 < len(bfs); i++ {
				if !g.HasEdge(bfs[i], bfs[i+1]) {
					t.Errorf("%s -> %s: bfs path %v uses missing edge %s -> %s", start, dst, bfs, bfs[i], bfs[i+1])
				}
			}
		}
	}
}

// TestUnknownStartVertex verifies that queries starting from a vertex that
// does not exist fail with a lookup error.
func TestUnknownStartVertex(t *testing.T, g graph.Graph[string]) {
	populate(t, g)

	traversals := map[string]func(string) ([]string, error){
		"bft":           g.BreadthFirstTraversal,
		"dft":           g.DepthFirstTraversal,
		"dft-recursive": g.DepthFirstTraversalRecursive,
		"neighbors":     g.Neighbors,
	}
	for name, fn := range traversals {
		if _, err := fn("missing"); !errors.Is(err, graph.ErrNotFound) {
			t.Errorf("%s: unexpected error %v, want %v", name, err, graph.ErrNotFound)
		}
	}

	if _, err := g.BreadthFirstSearch("missing", "1"); !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("bfs: unexpected error %v, want %v", err, graph.ErrNotFound)
	}
	if _, err := g.DepthFirstSearch("missing", "1"); !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("dfs: unexpected error %v, want %v", err, graph.ErrNotFound)
	}
}

func sorted(list []string) []string {
	out := append([]string(nil), list...)
	sort.Strings(out)
	return out
}

func uniq(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}
