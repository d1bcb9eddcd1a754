package graph

import (
	"errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestShortestPath(t *testing.T) {
	adjacency := map[int][]int{
		1: {2, 3},
		2: {4},
		3: {4, 5},
		4: {6},
		5: {6},
		6: {},
		7: {1},
	}
	neighbors := func(v int) ([]int, error) {
		return adjacency[v], nil
	}

	specs := []struct {
		start, dst int
		want       Path[int]
	}{
		{1, 6, Path[int]{1, 2, 4, 6}},
		{3, 6, Path[int]{3, 4, 6}},
		{7, 5, Path[int]{7, 1, 3, 5}},
		{5, 5, Path[int]{5}},
		{6, 1, nil},
	}
	for _, spec := range specs {
		got, err := ShortestPath(spec.start, spec.dst, neighbors)
		if err != nil {
			t.Fatalf("%d -> %d: unexpected error: %v", spec.start, spec.dst, err)
		}
		if diff := cmp.Diff(spec.want, got); diff != "" {
			t.Errorf("%d -> %d: unexpected path (-want +got):\n%s", spec.start, spec.dst, diff)
		}
	}
}

func TestShortestPathNeighborError(t *testing.T) {
	neighbors := func(v int) ([]int, error) {
		return nil, ErrNotFound
	}

	if _, err := ShortestPath(1, 2, neighbors); !errors.Is(err, ErrNotFound) {
		t.Errorf("unexpected error %v, want %v", err, ErrNotFound)
	}
}

func TestPathLen(t *testing.T) {
	if got := Path[string](nil).Len(); got != 0 {
		t.Errorf("expected nil path length to be 0; got %d", got)
	}
	if got := (Path[string]{"a"}).Len(); got != 0 {
		t.Errorf("expected single vertex path length to be 0; got %d", got)
	}
	if got := (Path[string]{"a", "b", "c"}).Len(); got != 2 {
		t.Errorf("expected path length to be 2; got %d", got)
	}
}
