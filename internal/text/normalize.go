// Package text implements the normalizer that turns arbitrary text into the
// stream of stemmed tokens the rest of the engine indexes and queries.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/kljensen/snowball/english"
)

// Normalizer turns a text blob into an ordered sequence of tokens: lowercase,
// stripped of everything but ASCII letters and whitespace, split on whitespace runs,
// and stemmed. It holds no state and is safe for concurrent use.
type Normalizer struct{}

// New returns a Normalizer. There is nothing to configure: the normalization
// and stemming rules are fixed by spec.
func New() Normalizer { return Normalizer{} }

// Tokens normalizes s and returns the resulting stems in reading order. Empty
// strings are never emitted.
func (Normalizer) Tokens(s string) []string {
	folded := fold(s)
	fields := strings.Fields(folded)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		out = append(out, english.Stem(f, false))
	}
	return out
}

// fold applies NFD normalization, drops every rune that is not an ASCII
// letter or whitespace, and lowercases what remains.
func fold(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// drop combining marks, digits, punctuation, non-ASCII letters
		}
	}
	return b.String()
}
