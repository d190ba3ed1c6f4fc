// Package goquery extracts search results from rendered HTML: the
// site's server-rendered search page, and generic documentation pages
// scanned by the fallback crawler.
package goquery

import (
	"net/url"
	"strings"
)

// isNonHTTPLink reports whether href uses a scheme we never follow
// (javascript:, mailto:, tel:, etc.) or is a bare fragment.
func isNonHTTPLink(href string) bool {
	if strings.HasPrefix(href, "#") {
		return true
	}
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "ftp:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves a possibly-relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
