package html

import (
	"net/url"
	"regexp"
	"strings"
)

var hrefRegex = regexp.MustCompile(`(?i)href\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// ExtractLinks finds every href attribute in body, resolves each against
// base, drops the fragment, and returns the resulting absolute HTTP/HTTPS
// URIs in source order. Anything that fails to resolve to an absolute
// http(s) URL is discarded.
func ExtractLinks(base *url.URL, body string) []string {
	matches := hrefRegex.FindAllStringSubmatch(body, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		resolved := resolve(base, raw)
		if resolved == nil {
			continue
		}
		out = append(out, resolved.String())
	}
	return out
}

// resolve expands target into an absolute URL relative to base, drops any
// fragment, and returns nil unless the result has an absolute http(s)
// scheme.
func resolve(base *url.URL, target string) *url.URL {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}
	targetURL, err := url.Parse(target)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(targetURL)
	resolved.Fragment = ""
	scheme := strings.ToLower(resolved.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil
	}
	if resolved.Host == "" {
		return nil
	}
	return resolved
}

// Clean normalizes a URI the way locations are canonicalized: lowercased
// scheme and host, fragment removed.
func Clean(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u.String(), nil
}
