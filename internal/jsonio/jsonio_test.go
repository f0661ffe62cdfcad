package jsonio

import (
	"bytes"
	"testing"

	gc "gopkg.in/check.v1"

	"github.com/HadyTinawi/Search-Engine/internal/index"
)

func Test(t *testing.T) { gc.TestingT(t) }

type JSONIOSuite struct{}

var _ = gc.Suite(&JSONIOSuite{})

// TestEmptyCorpus verifies scenario S1.
func (s *JSONIOSuite) TestEmptyCorpus(c *gc.C) {
	var buf bytes.Buffer
	c.Assert(WriteIndex(index.NewUnlocked(), &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, "{\n}\n")
}

func (s *JSONIOSuite) TestEmptyCounts(c *gc.C) {
	var buf bytes.Buffer
	c.Assert(WriteCounts(map[string]int{}, &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, "{\n}\n")
}

// TestMinimalDoc verifies scenario S2's index shape.
func (s *JSONIOSuite) TestMinimalDoc(c *gc.C) {
	idx := index.NewUnlocked()
	idx.AddAll([]string{"hello", "hello", "world"}, "a.txt", 1)

	var buf bytes.Buffer
	c.Assert(WriteIndex(idx, &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, ""+
		"{\n"+
		"  \"hello\": {\n"+
		"    \"a.txt\": [\n"+
		"      1,\n"+
		"      2\n"+
		"    ]\n"+
		"  },\n"+
		"  \"world\": {\n"+
		"    \"a.txt\": [\n"+
		"      3\n"+
		"    ]\n"+
		"  }\n"+
		"}\n")
}

func (s *JSONIOSuite) TestCounts(c *gc.C) {
	var buf bytes.Buffer
	c.Assert(WriteCounts(map[string]int{"b.txt": 2, "a.txt": 3}, &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, ""+
		"{\n"+
		"  \"a.txt\": 3,\n"+
		"  \"b.txt\": 2\n"+
		"}\n")
}

func (s *JSONIOSuite) TestResultsScoreHasEightDigits(c *gc.C) {
	results := map[string][]index.SearchResult{
		"run": {{Where: "a.txt", Count: 2, Score: 2.0 / 3.0}},
	}
	var buf bytes.Buffer
	c.Assert(WriteResults(results, &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, ""+
		"{\n"+
		"  \"run\": [\n"+
		"    {\n"+
		"      \"count\": 2,\n"+
		"      \"score\": 0.66666667,\n"+
		"      \"where\": \"a.txt\"\n"+
		"    }\n"+
		"  ]\n"+
		"}\n")
}

func (s *JSONIOSuite) TestResultsEmptyListIsEmptyArray(c *gc.C) {
	results := map[string][]index.SearchResult{"nohit": {}}
	var buf bytes.Buffer
	c.Assert(WriteResults(results, &buf), gc.IsNil)
	c.Assert(buf.String(), gc.Equals, "{\n  \"nohit\": []\n}\n")
}
