// Package query implements the query processor: it turns raw query lines
// into canonical, deduplicated search terms, runs them against an
// index.Index, and accumulates results keyed by the canonical query so a
// query whose results are already stored is not searched again. In
// Parallel, identical queries in flight at the same time may each be
// searched; the stored result is the same either way.
package query

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/HadyTinawi/Search-Engine/internal/index"
	"github.com/HadyTinawi/Search-Engine/internal/jsonio"
	"github.com/HadyTinawi/Search-Engine/internal/text"
	"github.com/HadyTinawi/Search-Engine/internal/workqueue"
)

// Processor accumulates search results across query lines, keyed by
// canonical query string.
type Processor interface {
	ProcessLine(line string)
	ProcessReader(r io.Reader) error
	Write(w io.Writer) error
	WriteFile(path string) error
	View(query string) []index.SearchResult
	Queries() []string
}

// canonicalize reduces line to its sorted, deduplicated, space-joined
// stems: the same normalization the file builder uses, so a query term
// matches the way it was indexed (spec.md §4.A/§4.H).
func canonicalize(line string, norm text.Normalizer) string {
	tokens := norm.Tokens(line)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	unique := make([]string, 0, len(set))
	for t := range set {
		unique = append(unique, t)
	}
	sort.Strings(unique)
	return strings.Join(unique, " ")
}

// Single is the single-threaded query processor: every line is searched
// on the calling goroutine as it is read.
type Single struct {
	index   index.Index
	partial bool
	norm    text.Normalizer

	results map[string][]index.SearchResult
}

// NewSingle returns a query processor that searches idx, using partial
// prefix matching if partial is true and exact matching otherwise.
func NewSingle(idx index.Index, partial bool) *Single {
	return &Single{
		index:   idx,
		partial: partial,
		norm:    text.New(),
		results: make(map[string][]index.SearchResult),
	}
}

// ProcessLine canonicalizes line and searches it, unless that canonical
// query has already been processed or reduces to nothing.
func (p *Single) ProcessLine(line string) {
	query := canonicalize(line, p.norm)
	if query == "" {
		return
	}
	if _, seen := p.results[query]; seen {
		return
	}
	p.results[query] = p.index.Search(strings.Fields(query), p.partial)
}

// ProcessReader processes every line of r as a query line.
func (p *Single) ProcessReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.ProcessLine(scanner.Text())
	}
	return scanner.Err()
}

// Write writes the accumulated results as pretty JSON, queries sorted.
func (p *Single) Write(w io.Writer) error {
	return jsonio.WriteResults(p.results, w)
}

// WriteFile writes the accumulated results to path.
func (p *Single) WriteFile(path string) error {
	return jsonio.WriteResultsFile(p.results, path)
}

// View returns the stored results for query, stemmed the same way
// ProcessLine stems it, or nil if it was never processed.
func (p *Single) View(query string) []index.SearchResult {
	return p.results[canonicalize(query, p.norm)]
}

// Queries returns every canonical query string with stored results,
// sorted ascending.
func (p *Single) Queries() []string {
	out := make([]string, 0, len(p.results))
	for q := range p.results {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

// Parallel is the concurrent query processor: each line is submitted as a
// task on a shared worker pool, and the results map is protected by a
// mutex rather than relying on the index's own locking, because the
// results map belongs to the processor, not the index.
type Parallel struct {
	index   index.Index
	partial bool
	pool    *workqueue.Pool

	mu      sync.Mutex
	results map[string][]index.SearchResult
}

// NewParallel returns a query processor that searches idx using pool for
// concurrent line processing.
func NewParallel(idx index.Index, partial bool, pool *workqueue.Pool) *Parallel {
	return &Parallel{
		index:   idx,
		partial: partial,
		pool:    pool,
		results: make(map[string][]index.SearchResult),
	}
}

// ProcessLine submits line for asynchronous processing. Callers must call
// the pool's Barrier (or use ProcessReader, which does) before reading
// results back out.
func (p *Parallel) ProcessLine(line string) {
	p.pool.Submit(func() { p.processLine(line) })
}

func (p *Parallel) processLine(line string) {
	norm := text.New()
	query := canonicalize(line, norm)
	if query == "" {
		return
	}

	p.mu.Lock()
	if _, seen := p.results[query]; seen {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	results := p.index.Search(strings.Fields(query), p.partial)

	p.mu.Lock()
	p.results[query] = results
	p.mu.Unlock()
}

// ProcessReader submits every line of r as a task, then blocks until the
// pool confirms all of them (and anything they transitively submitted)
// have completed.
func (p *Parallel) ProcessReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.ProcessLine(scanner.Text())
	}
	p.pool.Barrier()
	return scanner.Err()
}

// Write writes the accumulated results as pretty JSON, queries sorted.
func (p *Parallel) Write(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return jsonio.WriteResults(p.results, w)
}

// WriteFile writes the accumulated results to path.
func (p *Parallel) WriteFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return jsonio.WriteResultsFile(p.results, path)
}

// View returns the stored results for query, or nil if it was never
// processed or is still in flight.
func (p *Parallel) View(query string) []index.SearchResult {
	norm := text.New()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results[canonicalize(query, norm)]
}

// Queries returns every canonical query string with stored results,
// sorted ascending.
func (p *Parallel) Queries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.results))
	for q := range p.results {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

var (
	_ Processor = (*Single)(nil)
	_ Processor = (*Parallel)(nil)
)
