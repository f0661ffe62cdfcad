// Package html implements the two pure HTML operations the engine needs:
// stripping a page down to indexable plain text, and extracting the
// resolved links it contains.
package html

import (
	gohtml "html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	commentRegex = regexp.MustCompile(`(?is)<!--.*?-->`)
	// blockRegex strips elements whose content must never reach the index,
	// non-greedily and case-insensitively, mirroring the original
	// HtmlCleaner's list of block elements.
	blockRegex = regexp.MustCompile(`(?is)<(script|style|noscript|head|template)\b[^>]*>.*?</(?:script|style|noscript|head|template)>`)
	spaceRegex = regexp.MustCompile(`\s+`)

	policyPool = sync.Pool{
		New: func() interface{} { return bluemonday.StrictPolicy() },
	}
)

// Sanitize strips comments, block elements (script/style/etc.), and every
// remaining tag from body, decodes HTML entities, and collapses whitespace
// runs to single spaces. It is a pure function of its input.
func Sanitize(body string) string {
	stripped := commentRegex.ReplaceAllString(body, " ")
	stripped = blockRegex.ReplaceAllString(stripped, " ")

	policy := policyPool.Get().(*bluemonday.Policy)
	stripped = policy.Sanitize(stripped)
	policyPool.Put(policy)

	decoded := gohtml.UnescapeString(stripped)
	return strings.TrimSpace(spaceRegex.ReplaceAllString(decoded, " "))
}
