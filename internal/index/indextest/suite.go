// Package indextest is a reusable set of assertions exercised against any
// Index implementation, mirroring the teacher's
// internal/textindexer/index/indextest suite: one SuiteBase embedded by
// each concrete implementation's test suite, configured with SetIndex.
package indextest

import (
	"fmt"

	gc "gopkg.in/check.v1"

	"github.com/HadyTinawi/Search-Engine/internal/index"
)

// SuiteBase is a reusable set of index-related tests that can be run
// against any index.Index implementation.
type SuiteBase struct {
	idx index.Index
}

// SetIndex configures the suite to exercise idx.
func (s *SuiteBase) SetIndex(idx index.Index) { s.idx = idx }

// TestAddAssignsWordCounts verifies scenario S2: a minimal document's word
// count equals the number of stems added for it.
func (s *SuiteBase) TestAddAssignsWordCounts(c *gc.C) {
	s.idx.AddAll([]string{"hello", "hello", "world"}, "a.txt", 1)

	c.Assert(s.idx.Locations("hello"), gc.DeepEquals, []string{"a.txt"})
	c.Assert(s.idx.Positions("hello", "a.txt"), gc.DeepEquals, []int{1, 2})
	c.Assert(s.idx.Positions("world", "a.txt"), gc.DeepEquals, []int{3})
	c.Assert(s.idx.WordCount("a.txt"), gc.Equals, 3)
}

// TestAddIsIdempotentPerPosition verifies §3 invariant 1: a position
// appears at most once per (token, location), and re-adding it does not
// inflate the word count.
func (s *SuiteBase) TestAddIsIdempotentPerPosition(c *gc.C) {
	s.idx.Add("run", "a.txt", 1)
	s.idx.Add("run", "a.txt", 1)
	c.Assert(s.idx.NumPositions("run", "a.txt"), gc.Equals, 1)
	c.Assert(s.idx.WordCount("a.txt"), gc.Equals, 1)
}

// TestIterationOrder verifies §3 invariant 4: token-ascending,
// location-ascending, position-ascending.
func (s *SuiteBase) TestIterationOrder(c *gc.C) {
	s.idx.AddAll([]string{"zebra", "apple", "mango"}, "z.txt", 1)
	s.idx.AddAll([]string{"apple"}, "a.txt", 1)

	c.Assert(s.idx.Words(), gc.DeepEquals, []string{"apple", "mango", "zebra"})
	c.Assert(s.idx.Locations("apple"), gc.DeepEquals, []string{"a.txt", "z.txt"})
}

// TestExactVsPartialSearch verifies scenario S3.
func (s *SuiteBase) TestExactVsPartialSearch(c *gc.C) {
	s.idx.AddAll([]string{"run", "run", "runner"}, "a.txt", 1)

	exact := s.idx.ExactSearch([]string{"run"})
	c.Assert(exact, gc.HasLen, 1)
	c.Assert(exact[0].Where, gc.Equals, "a.txt")
	c.Assert(exact[0].Count, gc.Equals, 2)
	c.Assert(round(exact[0].Score), gc.Equals, round(2.0/3.0))

	partial := s.idx.PartialSearch([]string{"run"})
	c.Assert(partial, gc.HasLen, 1)
	c.Assert(partial[0].Where, gc.Equals, "a.txt")
	c.Assert(partial[0].Count, gc.Equals, 3)
	c.Assert(round(partial[0].Score), gc.Equals, round(1.0))
}

// TestRanking verifies scenario S4: shorter documents with the same hit
// count outrank longer ones.
func (s *SuiteBase) TestRanking(c *gc.C) {
	s.idx.AddAll([]string{"cat"}, "short.txt", 1)
	s.idx.AddAll([]string{"dog", "dog", "dog", "dog", "dog", "dog", "dog", "dog", "dog", "cat"}, "long.txt", 1)

	results := s.idx.ExactSearch([]string{"cat"})
	c.Assert(results, gc.HasLen, 2)
	c.Assert(results[0].Where, gc.Equals, "short.txt")
	c.Assert(round(results[0].Score), gc.Equals, round(1.0))
	c.Assert(results[1].Where, gc.Equals, "long.txt")
	c.Assert(round(results[1].Score), gc.Equals, round(0.1))
}

// TestMergeOfDisjointIndexesMatchesFreshBuild verifies §8 invariant 2.
func (s *SuiteBase) TestMergeOfDisjointIndexesMatchesFreshBuild(c *gc.C) {
	a := index.NewUnlocked()
	a.AddAll([]string{"alpha", "beta"}, "a.txt", 1)
	b := index.NewUnlocked()
	b.AddAll([]string{"beta", "gamma"}, "b.txt", 1)

	s.idx.Merge(a)
	s.idx.Merge(b)

	fresh := index.NewUnlocked()
	fresh.AddAll([]string{"alpha", "beta"}, "a.txt", 1)
	fresh.AddAll([]string{"beta", "gamma"}, "b.txt", 1)

	c.Assert(s.idx.Words(), gc.DeepEquals, fresh.Words())
	for _, w := range fresh.Words() {
		c.Assert(s.idx.Locations(w), gc.DeepEquals, fresh.Locations(w))
	}
	c.Assert(s.idx.WordCount("a.txt"), gc.Equals, fresh.WordCount("a.txt"))
	c.Assert(s.idx.WordCount("b.txt"), gc.Equals, fresh.WordCount("b.txt"))
}

// TestMergeWordCountTakesMax documents the open question in spec.md §9: the
// merge rule for word counts is max(current, incoming), exercised here with
// two partial indexes that both describe the same location.
func (s *SuiteBase) TestMergeWordCountTakesMax(c *gc.C) {
	a := index.NewUnlocked()
	a.AddAll([]string{"one", "two", "three"}, "shared.txt", 1)
	b := index.NewUnlocked()
	b.AddAll([]string{"four", "five"}, "shared.txt", 1)

	s.idx.Merge(a)
	s.idx.Merge(b)

	c.Assert(s.idx.WordCount("shared.txt"), gc.Equals, 3)
}

// TestExactSearchIsSubsetOfPartialSearch verifies §8 invariant 4.
func (s *SuiteBase) TestExactSearchIsSubsetOfPartialSearch(c *gc.C) {
	s.idx.AddAll([]string{"run", "running", "runner", "jump"}, "a.txt", 1)

	exact := s.idx.ExactSearch([]string{"run"})
	partial := s.idx.PartialSearch([]string{"run"})

	exactWhere := map[string]bool{}
	for _, r := range exact {
		exactWhere[r.Where] = true
	}
	partialWhere := map[string]bool{}
	for _, r := range partial {
		partialWhere[r.Where] = true
	}
	for w := range exactWhere {
		c.Assert(partialWhere[w], gc.Equals, true)
	}
}

func round(f float64) string {
	return fmt.Sprintf("%.8f", f)
}
