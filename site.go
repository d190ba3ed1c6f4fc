package docsearch

import (
	"net/url"
	"strings"
)

// DefaultSiteRoot is the documentation site searched when no site is
// configured.
const DefaultSiteRoot = "https://docs.agentstack.dev"

// Site describes the documentation site being searched. The site
// structure is assumed fixed per deployment: versioned trees live
// directly under the root (e.g., /stable/...), the structured search
// index at searchindex.js, and the rendered search page at search.html.
type Site struct {
	// Root is the scheme and host of the site, without a trailing slash.
	Root string
}

// DefaultSite returns the site configuration for the default deployment.
func DefaultSite() Site {
	return Site{Root: DefaultSiteRoot}
}

// VersionURL returns the base URL of a versioned documentation tree.
// The version is substituted into the path with no validation.
func (s Site) VersionURL(version string) string {
	return strings.TrimRight(s.Root, "/") + "/" + strings.Trim(version, "/")
}

// PageURL returns the absolute URL of a document path within a version.
func (s Site) PageURL(version, path string) string {
	return s.VersionURL(version) + "/" + strings.TrimLeft(path, "/")
}

// IndexURL returns the URL of the site's structured search index for a
// version.
func (s Site) IndexURL(version string) string {
	return s.VersionURL(version) + "/searchindex.js"
}

// SearchURL returns the URL of the site's rendered search page for a
// version and query.
func (s Site) SearchURL(version, query string) string {
	return s.VersionURL(version) + "/search.html?q=" + url.QueryEscape(query)
}

// Host returns the hostname of the site root, or an empty string if the
// root cannot be parsed.
func (s Site) Host() string {
	u, err := url.Parse(s.Root)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Contains reports whether rawURL references the site's host. Results
// pointing outside the site are discarded by every strategy.
func (s Site) Contains(rawURL string) bool {
	host := s.Host()
	if host == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Hostname() == host
}
