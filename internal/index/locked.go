package index

import "github.com/HadyTinawi/Search-Engine/internal/rwlock"

// Locked composes an Unlocked index with an rwlock.RWLock: the capability
// set is identical to Unlocked's, but every method acquires the
// appropriate handle before delegating to the unexported, non-locking
// Unlocked it wraps. There is no inheritance and no re-entrant lock: public
// methods acquire once and call straight-line helpers shared with the
// unlocked implementation, per the redesign note in spec.md §9.
type Locked struct {
	lock *rwlock.RWLock
	idx  *Unlocked
}

// NewLocked returns a Locked index ready for concurrent use.
func NewLocked() *Locked {
	return &Locked{
		lock: rwlock.New(),
		idx:  NewUnlocked(),
	}
}

func (l *Locked) Add(token, location string, position int) {
	rwlock.With(l.lock.WriteHandle(), func() {
		l.idx.Add(token, location, position)
	})
}

func (l *Locked) AddAll(tokens []string, location string, start int) {
	rwlock.With(l.lock.WriteHandle(), func() {
		l.idx.AddAll(tokens, location, start)
	})
}

func (l *Locked) Merge(other *Unlocked) {
	rwlock.With(l.lock.WriteHandle(), func() {
		l.idx.Merge(other)
	})
}

func (l *Locked) Words() []string {
	var out []string
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.Words()
	})
	return out
}

func (l *Locked) Locations(token string) []string {
	var out []string
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.Locations(token)
	})
	return out
}

func (l *Locked) Positions(token, location string) []int {
	var out []int
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.Positions(token, location)
	})
	return out
}

func (l *Locked) WordCount(location string) int {
	var out int
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.WordCount(location)
	})
	return out
}

func (l *Locked) NumWords() int {
	var out int
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.NumWords()
	})
	return out
}

func (l *Locked) NumLocations(token string) int {
	var out int
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.NumLocations(token)
	})
	return out
}

func (l *Locked) NumPositions(token, location string) int {
	var out int
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.NumPositions(token, location)
	})
	return out
}

func (l *Locked) ExactSearch(queryTokens []string) []SearchResult {
	var out []SearchResult
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.ExactSearch(queryTokens)
	})
	return out
}

func (l *Locked) PartialSearch(queryTokens []string) []SearchResult {
	var out []SearchResult
	rwlock.With(l.lock.ReadHandle(), func() {
		out = l.idx.PartialSearch(queryTokens)
	})
	return out
}

func (l *Locked) Search(queryTokens []string, partial bool) []SearchResult {
	if partial {
		return l.PartialSearch(queryTokens)
	}
	return l.ExactSearch(queryTokens)
}

var (
	_ Index = (*Unlocked)(nil)
	_ Index = (*Locked)(nil)
)
