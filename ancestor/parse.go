package ancestor

import (
	"fmt"
	"github.com/ejacobg/graphwalk/graph"
	"github.com/hashicorp/go-multierror"
	"strconv"
	"strings"
)

// ParsePairs parses a comma-separated list of "parent:child" pairs such as
// "1:3,2:3,3:6" into a list of parent -> child edges. Every malformed pair
// is reported in the returned error.
func ParsePairs(s string) ([]graph.Edge[int], error) {
	var (
		err   error
		edges []graph.Edge[int]
	)

	for i, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		edge, pErr := parsePair(token)
		if pErr != nil {
			err = multierror.Append(err, fmt.Errorf("pair %d (%q): %w", i, token, pErr))
			continue
		}
		edges = append(edges, edge)
	}

	if err != nil {
		return nil, err
	}
	return edges, nil
}

func parsePair(token string) (graph.Edge[int], error) {
	parent, child, found := strings.Cut(token, ":")
	if !found {
		return graph.Edge[int]{}, fmt.Errorf("expected parent:child")
	}

	src, err := strconv.Atoi(strings.TrimSpace(parent))
	if err != nil {
		return graph.Edge[int]{}, fmt.Errorf("invalid parent: %w", err)
	}
	dst, err := strconv.Atoi(strings.TrimSpace(child))
	if err != nil {
		return graph.Edge[int]{}, fmt.Errorf("invalid child: %w", err)
	}

	return graph.Edge[int]{Src: src, Dst: dst}, nil
}
