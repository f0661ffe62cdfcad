// Package index implements the shared inverted-index data model: the
// mapping from stemmed token to its occurrences across documents, and the
// ranked searches run against it.
//
// The capability is expressed as a single interface, Index, with two
// implementations: Unlocked (no synchronization, used for single-threaded
// builds and as the private per-document index every builder task owns) and
// Locked (an Unlocked composed with an rwlock.RWLock, used as the shared
// index under concurrent ingest and query). Builders and the query engine
// program against Index, never against a concrete type, per the capability-
// set redesign spec.md calls for in place of the source's locked-subclass
// inheritance.
package index

// SearchResult is one ranked hit: where a query matched, how many distinct
// positions contributed across all matching tokens, and the resulting
// term-frequency score.
type SearchResult struct {
	Where string  `json:"where"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

// Index is the capability set every component that touches the shared
// index programs against: mutation, merge, and read-only views.
type Index interface {
	// Add inserts the (token, location, position) triple. If position was
	// not already recorded for (token, location), WordCount(location) is
	// incremented by one.
	Add(token, location string, position int)

	// AddAll assigns positions start, start+1, ... to successive tokens and
	// adds each one for location.
	AddAll(tokens []string, location string, start int)

	// Merge folds a private per-document index into this one. other is
	// always an *Unlocked: private indexes are never themselves locked.
	Merge(other *Unlocked)

	// Words returns every indexed token in ascending order.
	Words() []string

	// Locations returns, in ascending order, every location that contains
	// token.
	Locations(token string) []string

	// Positions returns, in ascending order, every position at which token
	// occurs in location.
	Positions(token, location string) []int

	// WordCount returns the number of distinct (token, position) pairs ever
	// added for location.
	WordCount(location string) int

	// NumWords returns the number of distinct tokens in the index.
	NumWords() int

	// NumLocations returns the number of locations token occurs in.
	NumLocations(token string) int

	// NumPositions returns the number of positions token occurs at within
	// location.
	NumPositions(token, location string) int

	// ExactSearch unions the posting lists of every query token that is a
	// key in the index, returning results sorted by (score desc, count
	// desc, where asc).
	ExactSearch(queryTokens []string) []SearchResult

	// PartialSearch unions the posting lists of every index key that has
	// any query token as a prefix, same sort order as ExactSearch.
	PartialSearch(queryTokens []string) []SearchResult

	// Search dispatches to PartialSearch or ExactSearch.
	Search(queryTokens []string, partial bool) []SearchResult
}
