package inmem

import (
	"github.com/ejacobg/graphwalk/graph/graphtest"
	"testing"
)

func TestAcceptance(t *testing.T) {
	suite := graphtest.Suite{}

	suite.BeforeEach = func(_ *testing.T) {
		suite.G = NewGraph[string]()
	}

	suite.TestGraph(t)
}

// Writing individual tests for debugging purposes.

func TestAddEdge(t *testing.T) {
	graphtest.TestAddEdge(t, NewGraph[string]())
}

func TestBreadthFirstSearch(t *testing.T) {
	graphtest.TestBreadthFirstSearch(t, NewGraph[string]())
}

func TestDepthFirstTraversalRecursive(t *testing.T) {
	graphtest.TestDepthFirstTraversalRecursive(t, NewGraph[string]())
}

func TestTraversalsVisitReachableSet(t *testing.T) {
	graphtest.TestTraversalsVisitReachableSet(t, NewGraph[string]())
}

func TestIntegerVertices(t *testing.T) {
	g := NewGraph[int]()
	for v := 1; v <= 4; v++ {
		g.AddVertex(v)
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {1, 3}, {3, 4}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("failed to add edge: %v", err)
		}
	}

	path, err := g.BreadthFirstSearch(1, 4)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if path.Len() != 2 || path.Start() != 1 || path.End() != 4 {
		t.Errorf("expected a 2-edge path from 1 to 4; got %v", path)
	}
}
