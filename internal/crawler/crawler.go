// Package crawler implements the bounded web crawler: a breadth-first
// traversal of links starting at a seed URI, capped at a fixed number of
// fetched pages, feeding the same shared index the file builder writes to.
//
// The fetch step itself is an external collaborator (spec.md §1 scopes out
// "the HTTPS transport that returns raw response bytes for a URI"); this
// package depends on it through the Fetcher interface the way the
// teacher's crawler depends on a URLGetter collaborator rather than
// calling net/http directly from its pipeline stages.
package crawler

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/HadyTinawi/Search-Engine/internal/html"
	"github.com/HadyTinawi/Search-Engine/internal/index"
	"github.com/HadyTinawi/Search-Engine/internal/text"
	"github.com/HadyTinawi/Search-Engine/internal/workqueue"
)

// Fetcher performs the HTTP GET for a URI and returns its status code,
// headers, and raw body.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (status int, headers http.Header, body []byte, err error)
}

// Crawler runs a bounded breadth-first crawl over a worker pool, indexing
// every HTML page it fetches into a shared index.Index.
type Crawler struct {
	fetcher Fetcher
	index   index.Index
	norm    text.Normalizer
	pool    *workqueue.Pool

	mu        sync.Mutex
	visited   map[string]struct{}
	remaining int
}

// New returns a Crawler that fetches pages with fetcher, indexes them into
// idx, and schedules crawl tasks on pool. idx may be any index.Index
// implementation: the locked one for concurrent ingest alongside other
// writers, the unlocked one for a crawl run in isolation. spec.md §9 flags
// a cast to a concrete locked type as unsound; this constructor instead
// accepts the capability interface directly.
func New(fetcher Fetcher, idx index.Index, pool *workqueue.Pool) *Crawler {
	return &Crawler{
		fetcher: fetcher,
		index:   idx,
		norm:    text.New(),
		pool:    pool,
		visited: make(map[string]struct{}),
	}
}

// Crawl starts a crawl from seed, fetching at most limit pages (clamped to
// at least 1), and blocks until the pool's barrier confirms every
// transitively-submitted crawl task has completed.
func (cr *Crawler) Crawl(ctx context.Context, seed string, limit int) error {
	if limit < 1 {
		limit = 1
	}
	cleaned, err := html.Clean(seed)
	if err != nil {
		return err
	}

	cr.mu.Lock()
	cr.visited[cleaned] = struct{}{}
	cr.remaining = limit
	cr.mu.Unlock()

	cr.pool.Submit(func() { cr.crawlOne(ctx, cleaned) })
	cr.pool.Barrier()
	return nil
}

// Visited returns the set of URIs admitted during the crawl, for tests and
// diagnostics.
func (cr *Crawler) Visited() []string {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	out := make([]string, 0, len(cr.visited))
	for u := range cr.visited {
		out = append(out, u)
	}
	return out
}

// crawlOne fetches uri, indexes it if it is a usable HTML page, and
// schedules a crawl task for each admissible link it contains. Each
// invocation gets its own correlation ID so the log lines of concurrent
// tasks can be told apart; admit ensures no uri is crawled twice.
func (cr *Crawler) crawlOne(ctx context.Context, uri string) {
	taskID := uuid.New()
	status, headers, body, err := cr.fetcher.Fetch(ctx, uri)
	if err != nil {
		log.Printf("crawler[%s]: fetch %s: %v", taskID, uri, err)
		return
	}
	if status != http.StatusOK {
		log.Printf("crawler[%s]: %s returned status %d", taskID, uri, status)
		return
	}
	if !strings.HasPrefix(strings.ToLower(headers.Get("Content-Type")), "text/html") {
		return
	}

	raw := string(body)
	tokens := cr.norm.Tokens(html.Sanitize(raw))

	private := index.NewUnlocked()
	private.AddAll(tokens, uri, 1)
	cr.index.Merge(private)
	log.Printf("crawler[%s]: indexed %s (%d tokens)", taskID, uri, len(tokens))

	base, err := url.Parse(uri)
	if err != nil {
		return
	}
	for _, link := range html.ExtractLinks(base, raw) {
		cleaned, err := html.Clean(link)
		if err != nil {
			continue
		}
		if !cr.admit(cleaned) {
			continue
		}
		cr.pool.Submit(func() { cr.crawlOne(ctx, cleaned) })
	}
}

// admit enforces the cap and dedup rules: accounting happens on enqueue,
// not completion, so the crawl terminates deterministically (spec.md
// §4.G). remaining must stay strictly greater than 1 for a new link to be
// admitted, so the page currently being processed always counts against
// the cap.
func (cr *Crawler) admit(uri string) bool {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if cr.remaining <= 1 {
		return false
	}
	if _, seen := cr.visited[uri]; seen {
		return false
	}
	cr.visited[uri] = struct{}{}
	cr.remaining--
	return true
}
