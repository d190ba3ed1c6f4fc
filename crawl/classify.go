// Package crawl implements the last-resort resolution strategy: a
// sequential crawl over a curated, query-dependent set of documentation
// pages, scanning each for matches.
package crawl

import (
	"strings"

	"github.com/fwojciec/docsearch"
)

// PageDescriptor is a fallback-crawl target: a page URL with the
// category label its results carry.
type PageDescriptor struct {
	URL      string
	Category string
}

// Kind discriminates query classifications. Each kind carries its own
// curated page set, selected once at the start of a crawl.
type Kind int

const (
	// KindStandard crawls the version-scoped documentation tree.
	KindStandard Kind = iota

	// KindMCP crawls the Model Context Protocol pages, which live in
	// their own unversioned tree, and additionally scans for related
	// terms to surface adjacent documentation (recall over precision).
	KindMCP
)

// mcpMarkers classify a query as MCP-specific when any of them appears
// in it, case-insensitively.
var mcpMarkers = []string{"mcp", "model context protocol", "tool server"}

// mcpRelatedTerms are scanned in addition to the original query on MCP
// pages.
var mcpRelatedTerms = []string{"tool", "server", "protocol", "resource"}

// Classification is a classified query: the kind, the curated pages to
// crawl in priority order, and extra terms to scan for, if any.
type Classification struct {
	Kind         Kind
	Pages        []PageDescriptor
	RelatedTerms []string
}

// Classify selects the curated page set for a query. MCP-flavored
// queries get the MCP set with its related-terms pass; everything else
// gets the standard version-scoped set.
func Classify(query string, site docsearch.Site, version string) Classification {
	lower := strings.ToLower(query)
	for _, marker := range mcpMarkers {
		if strings.Contains(lower, marker) {
			return Classification{
				Kind:         KindMCP,
				Pages:        MCPPages(site),
				RelatedTerms: mcpRelatedTerms,
			}
		}
	}
	return Classification{
		Kind:  KindStandard,
		Pages: StandardPages(site, version),
	}
}

// StandardPages returns the version-scoped curated set, in priority
// order.
func StandardPages(site docsearch.Site, version string) []PageDescriptor {
	return []PageDescriptor{
		{URL: site.PageURL(version, "index.html"), Category: docsearch.CategoryDocumentation},
		{URL: site.PageURL(version, "user-guide/index.html"), Category: docsearch.CategoryUserGuide},
		{URL: site.PageURL(version, "tutorials/index.html"), Category: docsearch.CategoryTutorial},
		{URL: site.PageURL(version, "python/index.html"), Category: docsearch.CategoryAPIReference},
		{URL: site.PageURL(version, "components/index.html"), Category: docsearch.CategoryCoreGuide},
		{URL: site.PageURL(version, "faq.html"), Category: docsearch.CategoryDocumentation},
	}
}

// MCPPages returns the MCP curated set. These pages are unversioned and
// carry their own category labels.
func MCPPages(site docsearch.Site) []PageDescriptor {
	base := strings.TrimRight(site.Root, "/") + "/mcp"
	return []PageDescriptor{
		{URL: base + "/index.html", Category: "MCP Guide"},
		{URL: base + "/tools.html", Category: "MCP Tools"},
		{URL: base + "/servers.html", Category: "MCP Servers"},
		{URL: base + "/clients.html", Category: "MCP Guide"},
	}
}
