package index

import "sort"

// Unlocked is the inverted index with no synchronization of its own. It is
// used directly for single-threaded builds and queries, and as the private,
// single-owner index each builder or crawler task assembles before merging
// into the shared index.
type Unlocked struct {
	// postings maps token -> location -> set of positions.
	postings map[string]map[string]map[int]struct{}
	// tokens is postings' key set, kept sorted so PartialSearch can binary
	// search for the first key >= a query token instead of scanning every
	// dictionary entry.
	tokens []string
	// wordCounts maps location -> count of distinct (token, position) pairs
	// ever added for it.
	wordCounts map[string]int
}

// NewUnlocked returns an empty Unlocked index.
func NewUnlocked() *Unlocked {
	return &Unlocked{
		postings:   make(map[string]map[string]map[int]struct{}),
		wordCounts: make(map[string]int),
	}
}

// Add inserts (token, location, position). See Index.Add.
func (u *Unlocked) Add(token, location string, position int) {
	locs, ok := u.postings[token]
	if !ok {
		locs = make(map[string]map[int]struct{})
		u.postings[token] = locs
		u.insertToken(token)
	}
	positions, ok := locs[location]
	if !ok {
		positions = make(map[int]struct{})
		locs[location] = positions
	}
	if _, exists := positions[position]; exists {
		return
	}
	positions[position] = struct{}{}
	u.wordCounts[location]++
}

// AddAll assigns positions start, start+1, ... to tokens in order.
func (u *Unlocked) AddAll(tokens []string, location string, start int) {
	pos := start
	for _, t := range tokens {
		u.Add(t, location, pos)
		pos++
	}
}

// insertToken inserts token into the sorted tokens slice, which must not
// already contain it.
func (u *Unlocked) insertToken(token string) {
	i := sort.SearchStrings(u.tokens, token)
	u.tokens = append(u.tokens, "")
	copy(u.tokens[i+1:], u.tokens[i:])
	u.tokens[i] = token
}

// Merge folds other into u. Postings are unioned position-set by
// position-set; word counts are combined with max(current, incoming) per
// location, which is exact when other is a disjoint per-document private
// index (its word count already equals that document's true length) and
// conservative when other re-indexes a location u already has.
func (u *Unlocked) Merge(other *Unlocked) {
	if other == nil {
		return
	}
	for token, otherLocs := range other.postings {
		locs, ok := u.postings[token]
		if !ok {
			locs = make(map[string]map[int]struct{})
			u.postings[token] = locs
			u.insertToken(token)
		}
		for location, otherPositions := range otherLocs {
			positions, ok := locs[location]
			if !ok {
				positions = make(map[int]struct{})
				locs[location] = positions
			}
			for p := range otherPositions {
				positions[p] = struct{}{}
			}
		}
	}
	for location, count := range other.wordCounts {
		if count > u.wordCounts[location] {
			u.wordCounts[location] = count
		}
	}
}

// Words returns every indexed token, ascending.
func (u *Unlocked) Words() []string {
	out := make([]string, len(u.tokens))
	copy(out, u.tokens)
	return out
}

// Locations returns every location token occurs in, ascending.
func (u *Unlocked) Locations(token string) []string {
	locs := u.postings[token]
	out := make([]string, 0, len(locs))
	for l := range locs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Positions returns every position token occurs at within location,
// ascending.
func (u *Unlocked) Positions(token, location string) []int {
	positions := u.postings[token][location]
	out := make([]int, 0, len(positions))
	for p := range positions {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// WordCount returns the distinct (token, position) count ever added for
// location.
func (u *Unlocked) WordCount(location string) int {
	return u.wordCounts[location]
}

// NumWords returns the number of distinct tokens.
func (u *Unlocked) NumWords() int { return len(u.tokens) }

// NumLocations returns the number of locations token occurs in.
func (u *Unlocked) NumLocations(token string) int { return len(u.postings[token]) }

// NumPositions returns the number of positions token occurs at within
// location.
func (u *Unlocked) NumPositions(token, location string) int {
	return len(u.postings[token][location])
}

// ExactSearch unions the posting lists of query tokens that are keys in the
// index.
func (u *Unlocked) ExactSearch(queryTokens []string) []SearchResult {
	acc := make(map[string]*SearchResult)
	for _, qt := range queryTokens {
		locs, ok := u.postings[qt]
		if !ok {
			continue
		}
		u.fold(locs, acc)
	}
	return collect(acc)
}

// PartialSearch unions the posting lists of every dictionary key that has
// any query token as a prefix. It seeks to the first key >= the query token
// via binary search and scans forward only while the key retains the
// prefix, making each query token's cost logarithmic in the number of
// dictionary entries plus the size of its matching run.
func (u *Unlocked) PartialSearch(queryTokens []string) []SearchResult {
	acc := make(map[string]*SearchResult)
	for _, qt := range queryTokens {
		i := sort.SearchStrings(u.tokens, qt)
		for ; i < len(u.tokens) && hasPrefix(u.tokens[i], qt); i++ {
			u.fold(u.postings[u.tokens[i]], acc)
		}
	}
	return collect(acc)
}

// Search dispatches to PartialSearch or ExactSearch.
func (u *Unlocked) Search(queryTokens []string, partial bool) []SearchResult {
	if partial {
		return u.PartialSearch(queryTokens)
	}
	return u.ExactSearch(queryTokens)
}

// fold adds one token's posting list into the accumulator, creating a
// SearchResult the first time a location is seen and recomputing its score
// from the running count.
func (u *Unlocked) fold(locs map[string]map[int]struct{}, acc map[string]*SearchResult) {
	for location, positions := range locs {
		res, ok := acc[location]
		if !ok {
			res = &SearchResult{Where: location}
			acc[location] = res
		}
		res.Count += len(positions)
		res.Score = float64(res.Count) / float64(u.wordCounts[location])
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// collect flattens and sorts an accumulator per §3 invariant 5: score
// descending, then count descending, then location ascending.
func collect(acc map[string]*SearchResult) []SearchResult {
	out := make([]SearchResult, 0, len(acc))
	for _, r := range acc {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Where < out[j].Where
	})
	return out
}
