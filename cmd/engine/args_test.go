package main

import (
	"testing"

	gc "gopkg.in/check.v1"
)

func Test(t *testing.T) { gc.TestingT(t) }

type ArgsSuite struct{}

var _ = gc.Suite(&ArgsSuite{})

func (s *ArgsSuite) TestBareFlagIsPresentWithNoValue(c *gc.C) {
	a := parseArgs([]string{"-index"})
	c.Assert(a.Has("index"), gc.Equals, true)
	c.Assert(a.Path("index", "index.json"), gc.Equals, "index.json")
}

func (s *ArgsSuite) TestFlagWithValue(c *gc.C) {
	a := parseArgs([]string{"-index", "out.json"})
	c.Assert(a.Has("index"), gc.Equals, true)
	c.Assert(a.Path("index", "index.json"), gc.Equals, "out.json")
}

func (s *ArgsSuite) TestAbsentFlagReportsNotPresent(c *gc.C) {
	a := parseArgs([]string{"-text", "corpus"})
	c.Assert(a.Has("index"), gc.Equals, false)
}

func (s *ArgsSuite) TestBareFlagFollowedByAnotherFlagDoesNotConsumeIt(c *gc.C) {
	a := parseArgs([]string{"-index", "-counts"})
	c.Assert(a.Has("index"), gc.Equals, true)
	c.Assert(a.Path("index", "index.json"), gc.Equals, "index.json")
	c.Assert(a.Has("counts"), gc.Equals, true)
	c.Assert(a.Path("counts", "counts.json"), gc.Equals, "counts.json")
}

func (s *ArgsSuite) TestIntFallsBackOnNonNumeric(c *gc.C) {
	a := parseArgs([]string{"-threads", "abc"})
	c.Assert(a.Int("threads", 5), gc.Equals, 5)
}

func (s *ArgsSuite) TestIntFallsBackOnNonPositive(c *gc.C) {
	a := parseArgs([]string{"-threads", "0"})
	c.Assert(a.Int("threads", 5), gc.Equals, 5)
	c.Assert(a.Has("threads"), gc.Equals, true)
}

func (s *ArgsSuite) TestIntFallsBackWhenAbsent(c *gc.C) {
	a := parseArgs([]string{})
	c.Assert(a.Int("threads", 5), gc.Equals, 5)
	c.Assert(a.Has("threads"), gc.Equals, false)
}

func (s *ArgsSuite) TestIntUsesExplicitPositiveValue(c *gc.C) {
	a := parseArgs([]string{"-threads", "8"})
	c.Assert(a.Int("threads", 5), gc.Equals, 8)
}
