package rwlock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	gc "gopkg.in/check.v1"
)

func Test(t *testing.T) { gc.TestingT(t) }

type RWLockSuite struct{}

var _ = gc.Suite(&RWLockSuite{})

func (s *RWLockSuite) TestConcurrentReadersAllowed(c *gc.C) {
	l := New()
	rh := l.ReadHandle()

	var active int32
	var maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rh.Lock()
			defer rh.Unlock()
			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()
	c.Assert(atomic.LoadInt32(&maxActive) > 1, gc.Equals, true)
}

func (s *RWLockSuite) TestWriterExcludesReaders(c *gc.C) {
	l := New()
	wh := l.WriteHandle()
	rh := l.ReadHandle()

	wh.Lock()
	acquired := make(chan struct{})
	go func() {
		rh.Lock()
		close(acquired)
		rh.Unlock()
	}()

	select {
	case <-acquired:
		c.Fatal("reader acquired the lock while writer held it")
	case <-time.After(50 * time.Millisecond):
	}
	wh.Unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		c.Fatal("reader never acquired the lock after writer released it")
	}
}

func (s *RWLockSuite) TestWriterPreferredOverContinuousReaders(c *gc.C) {
	l := New()
	rh := l.ReadHandle()
	wh := l.WriteHandle()

	rh.Lock() // hold one reader so the writer must wait

	writerDone := make(chan struct{})
	go func() {
		wh.Lock()
		close(writerDone)
		wh.Unlock()
	}()

	time.Sleep(20 * time.Millisecond) // let the writer register as waiting

	blocked := make(chan struct{})
	go func() {
		rh.Lock()
		defer rh.Unlock()
		close(blocked)
	}()

	select {
	case <-blocked:
		c.Fatal("new reader cut in front of a waiting writer")
	case <-time.After(50 * time.Millisecond):
	}

	rh.Unlock() // release the original reader; writer should now proceed

	select {
	case <-writerDone:
	case <-time.After(time.Second):
		c.Fatal("writer starved by readers")
	}
	<-blocked
}

func (s *RWLockSuite) TestWithReleasesOnPanic(c *gc.C) {
	l := New()
	wh := l.WriteHandle()

	func() {
		defer func() { recover() }()
		With(wh, func() {
			panic("boom")
		})
	}()

	acquired := make(chan struct{})
	go func() {
		wh.Lock()
		close(acquired)
		wh.Unlock()
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		c.Fatal("write handle never released after panic")
	}
}
