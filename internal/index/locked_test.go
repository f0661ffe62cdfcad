package index_test

import (
	"sync"

	gc "gopkg.in/check.v1"

	"github.com/HadyTinawi/Search-Engine/internal/index"
	"github.com/HadyTinawi/Search-Engine/internal/index/indextest"
)

type LockedSuite struct {
	indextest.SuiteBase
}

var _ = gc.Suite(&LockedSuite{})

func (s *LockedSuite) SetUpTest(c *gc.C) {
	s.SetIndex(index.NewLocked())
}

// TestConcurrentMergesAreOrderIndependent verifies §8 invariant 8: building
// the same corpus through many concurrent private-index merges yields the
// same observable state as a single-threaded build, because merge is a
// monoid under union-of-positions and max-of-word-counts.
func (s *LockedSuite) TestConcurrentMergesAreOrderIndependent(c *gc.C) {
	shared := index.NewLocked()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			private := index.NewUnlocked()
			loc := fileName(i)
			private.AddAll([]string{"alpha", "beta", "gamma"}, loc, 1)
			shared.Merge(private)
		}()
	}
	wg.Wait()

	c.Assert(shared.NumWords(), gc.Equals, 3)
	c.Assert(shared.NumLocations("alpha"), gc.Equals, 20)
	for i := 0; i < 20; i++ {
		c.Assert(shared.WordCount(fileName(i)), gc.Equals, 3)
	}
}

func fileName(i int) string {
	return string(rune('a'+i%26)) + ".txt"
}
