// Package builder implements the index builder: single-threaded and
// parallel flavors that walk a file-system root and populate the shared
// index, one file at a time.
package builder

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/HadyTinawi/Search-Engine/internal/index"
	"github.com/HadyTinawi/Search-Engine/internal/text"
	"github.com/HadyTinawi/Search-Engine/internal/workqueue"
)

// Builder builds an index.Index from a file-system root.
type Builder interface {
	Build(root string) error
}

// Single is the single-threaded builder: it walks root depth-first and adds
// every token of every matching file directly to the shared index, under
// whatever synchronization that index provides.
type Single struct {
	Index index.Index
	Norm  text.Normalizer
}

// NewSingle returns a single-threaded builder writing into idx.
func NewSingle(idx index.Index) *Single {
	return &Single{Index: idx, Norm: text.New()}
}

// Build walks root (or processes it directly if it is a regular file) and
// indexes every matching .txt/.text file it finds. File-level failures are
// logged and skipped; they never fail the whole build.
func (b *Single) Build(root string) error {
	return walk(root, func(path string) {
		b.processFile(path)
	})
}

func (b *Single) processFile(path string) {
	tokens, err := readTokens(path, b.Norm)
	if err != nil {
		log.Printf("builder: skipping %s: %v", path, err)
		return
	}
	b.Index.AddAll(tokens, path, 1)
}

// Parallel is the fan-out/fan-in builder: each matching file becomes one
// submitted task. A task reads the whole file, normalizes and stems it into
// an ordered token list, populates a private single-owner index for that
// file, and merges it into the shared index with one write acquisition —
// replacing O(tokens) write-lock round trips per file with one, per
// spec.md §4.F.
type Parallel struct {
	Index index.Index
	Pool  *workqueue.Pool
	Norm  text.Normalizer
}

// NewParallel returns a parallel builder writing into idx, using pool for
// its per-file tasks.
func NewParallel(idx index.Index, pool *workqueue.Pool) *Parallel {
	return &Parallel{Index: idx, Pool: pool, Norm: text.New()}
}

// Build walks root on the calling goroutine, submitting one task per
// matching file, and blocks on the pool's barrier before returning so the
// shared index reflects every file once Build returns.
func (b *Parallel) Build(root string) error {
	err := walk(root, func(path string) {
		b.Pool.Submit(func() { b.processFile(path) })
	})
	b.Pool.Barrier()
	return err
}

func (b *Parallel) processFile(path string) {
	taskID := uuid.New()
	tokens, err := readTokens(path, b.Norm)
	if err != nil {
		log.Printf("builder[%s]: skipping %s: %v", taskID, path, err)
		return
	}
	private := index.NewUnlocked()
	private.AddAll(tokens, path, 1)
	b.Index.Merge(private)
	log.Printf("builder[%s]: merged %s (%d tokens)", taskID, path, len(tokens))
}

// readTokens reads path as UTF-8 and returns its normalized, stemmed
// tokens.
func readTokens(path string, norm text.Normalizer) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return norm.Tokens(string(content)), nil
}

// walk recursively visits root depth-first in file-system order. Directory
// symlinks are followed (stat, not lstat, decides directory-ness, matching
// the original's Files.isDirectory default); cycles through symlinks are
// not guarded against, per spec.md §4.F. visit is called for every regular
// file whose lowercased name ends in .txt or .text. If root is itself such
// a file, visit is called once without walking.
func walk(root string, visit func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if isTextFile(root) {
			visit(root)
		}
		return nil
	}
	return walkDir(root, visit)
}

func walkDir(dir string, visit func(path string)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("builder: skipping %s: %v", dir, err)
		return nil
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("builder: skipping %s: %v", path, err)
			continue
		}
		if info.IsDir() {
			if err := walkDir(path, visit); err != nil {
				log.Printf("builder: skipping %s: %v", path, err)
			}
			continue
		}
		if isTextFile(path) {
			visit(path)
		}
	}
	return nil
}

func isTextFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".text")
}

var (
	_ Builder = (*Single)(nil)
	_ Builder = (*Parallel)(nil)
)
