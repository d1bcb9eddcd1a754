package ancestor

import (
	"github.com/ejacobg/graphwalk/graph"
	"github.com/hashicorp/go-multierror"
	gc "gopkg.in/check.v1"
	"testing"
)

var _ = gc.Suite(new(AncestorTestSuite))

type AncestorTestSuite struct {
	family []graph.Edge[int]
}

func Test(t *testing.T) {
	// Run all gocheck test-suites
	gc.TestingT(t)
}

func (s *AncestorTestSuite) SetUpTest(c *gc.C) {
	s.family = edges(
		1, 3, 2, 3, 3, 6, 5, 6, 5, 7,
		4, 5, 4, 8, 8, 9, 11, 8, 10, 1,
	)
}

func (s *AncestorTestSuite) TestEarliestAncestor(c *gc.C) {
	specs := []struct {
		target int
		want   int
	}{
		{1, 10},
		{2, NoAncestor},
		{3, 10},
		{4, NoAncestor},
		{5, 4},
		{6, 10},
		{7, 4},
		{8, 4},
		{9, 4},
		{10, NoAncestor},
		{11, NoAncestor},
	}

	for _, spec := range specs {
		c.Check(Earliest(s.family, spec.target), gc.Equals, spec.want, gc.Commentf("target %d", spec.target))
	}
}

func (s *AncestorTestSuite) TestTieBreaksOnLowestID(c *gc.C) {
	// 1 and 2 are both three edges away from 8.
	family := edges(2, 3, 1, 3, 3, 5, 5, 8)
	c.Assert(Earliest(family, 8), gc.Equals, 1)
}

func (s *AncestorTestSuite) TestSingleParent(c *gc.C) {
	c.Assert(Earliest(edges(1, 2), 2), gc.Equals, 1)
	c.Assert(Earliest(edges(1, 2), 1), gc.Equals, NoAncestor)
}

func (s *AncestorTestSuite) TestUnknownTarget(c *gc.C) {
	c.Assert(Earliest(s.family, 99), gc.Equals, NoAncestor)
	c.Assert(Earliest(nil, 1), gc.Equals, NoAncestor)
}

func (s *AncestorTestSuite) TestResolve(c *gc.C) {
	id, err := new(Resolver).Resolve(s.family, 9)
	c.Assert(err, gc.IsNil)
	c.Assert(id, gc.Equals, 4)
}

func (s *AncestorTestSuite) TestParsePairs(c *gc.C) {
	got, err := ParsePairs(" 1:3, 2:3,3 : 6,")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, edges(1, 3, 2, 3, 3, 6))

	got, err = ParsePairs("")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.HasLen, 0)
}

func (s *AncestorTestSuite) TestParsePairsReportsEveryError(c *gc.C) {
	_, err := ParsePairs("1:3,foo,2:x,4:5")
	c.Assert(err, gc.NotNil)

	mErr, ok := err.(*multierror.Error)
	c.Assert(ok, gc.Equals, true)
	c.Assert(mErr.Errors, gc.HasLen, 2)
	c.Assert(mErr.Errors[0], gc.ErrorMatches, `pair 1 \("foo"\): expected parent:child`)
	c.Assert(mErr.Errors[1], gc.ErrorMatches, `pair 2 \("2:x"\): invalid child: .*`)
}

// edges converts a flat list of parent, child IDs into graph edges.
func edges(ids ...int) []graph.Edge[int] {
	list := make([]graph.Edge[int], 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		list = append(list, graph.Edge[int]{Src: ids[i], Dst: ids[i+1]})
	}
	return list
}
