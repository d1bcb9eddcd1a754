// Package ancestor finds the earliest known ancestor of an individual in a
// family tree.
package ancestor

import (
	"github.com/ejacobg/graphwalk/graph"
	"github.com/ejacobg/graphwalk/inmem"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// NoAncestor is returned when the target individual has no known parents.
const NoAncestor = -1

// Resolver looks up the earliest ancestor of an individual given a list of
// parent -> child edges.
type Resolver struct {
	// Logger receives debug output about the candidate ancestors. If nil,
	// the logrus standard logger is used.
	Logger *logrus.Entry
}

// Earliest returns the individual furthest away from target along parent
// -> child edges. If several individuals are equally far away, the one with
// the lowest ID is returned. NoAncestor is returned if target has no
// parents.
func Earliest(edges []graph.Edge[int], target int) int {
	id, err := new(Resolver).Resolve(edges, target)
	if err != nil {
		return NoAncestor
	}
	return id
}

// Resolve implements Earliest but surfaces any error raised while building
// or searching the family graph.
func (r *Resolver) Resolve(edges []graph.Edge[int], target int) (int, error) {
	logger := r.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	g := inmem.NewGraph[int]()
	if err := graph.AddEdges[int](g, edges); err != nil {
		return NoAncestor, xerrors.Errorf("build family graph: %w", err)
	}

	// earliest maps a path length to the lowest individual ID whose
	// shortest path to target has that length.
	earliest := make(map[int]int)
	for _, member := range g.Vertices() {
		path, err := g.BreadthFirstSearch(member, target)
		if err != nil {
			return NoAncestor, xerrors.Errorf("search path from %d to %d: %w", member, target, err)
		}

		// Ignore unreachable members and the trivial path from target to
		// itself.
		if path.Len() == 0 {
			continue
		}

		if id, exists := earliest[path.Len()]; !exists || member < id {
			earliest[path.Len()] = member
		}
	}

	if len(earliest) == 0 {
		logger.WithField("target", target).Debug("no ancestors found")
		return NoAncestor, nil
	}

	maxDepth := 0
	for depth := range earliest {
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	logger.WithFields(logrus.Fields{
		"target":     target,
		"candidates": len(earliest),
		"depth":      maxDepth,
		"ancestor":   earliest[maxDepth],
	}).Debug("resolved earliest ancestor")

	return earliest[maxDepth], nil
}
