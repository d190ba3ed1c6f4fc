package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// resultsMarker identifies the heading that opens the results section on
// the site's rendered search page ("Search Results").
const resultsMarker = "Search"

// parentheticalRe matches the annotation the site renders next to search
// hits, e.g. "(Python module, in corelib)".
var parentheticalRe = regexp.MustCompile(`\(([^)]+)\)`)

// Ensure SearchPageStrategy implements docsearch.Strategy at compile time.
var _ docsearch.Strategy = (*SearchPageStrategy)(nil)

// SearchPageStrategy resolves queries by fetching the site's own
// server-rendered search page and extracting its result links.
type SearchPageStrategy struct {
	Fetcher docsearch.Fetcher
	Site    docsearch.Site
}

// NewSearchPageStrategy creates a SearchPageStrategy for the given site.
func NewSearchPageStrategy(fetcher docsearch.Fetcher, site docsearch.Site) *SearchPageStrategy {
	return &SearchPageStrategy{Fetcher: fetcher, Site: site}
}

// Name returns the strategy's identifier.
func (s *SearchPageStrategy) Name() string {
	return "searchpage"
}

// Search fetches the rendered search page for q and extracts results.
func (s *SearchPageStrategy) Search(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error) {
	html, err := s.Fetcher.Fetch(ctx, s.Site.SearchURL(q.Version, q.Text))
	if err != nil {
		return nil, err
	}
	return ExtractSearchResults(html, s.Site, q)
}

// ExtractSearchResults extracts result entries from the rendered search
// page HTML. It locates the results section by its marker heading, then
// collects every link after it: relative URLs are resolved against the
// version's base URL, links outside the site are discarded, and the
// category/snippet come from a parenthetical annotation in the link's
// enclosing text when present, the link's next sibling otherwise.
func ExtractSearchResults(html string, site docsearch.Site, q docsearch.Query) ([]docsearch.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(site.VersionURL(q.Version) + "/")
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid base URL: %v", err)
	}

	var heading *goquery.Selection
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), resultsMarker) {
			heading = sel
			return false
		}
		return true
	})
	if heading == nil {
		return nil, nil
	}

	var results []docsearch.Result
	heading.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		sib.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			if len(results) >= q.Limit {
				return false
			}

			href, ok := link.Attr("href")
			if !ok || href == "" || isNonHTTPLink(href) {
				return true
			}
			resolved := resolveURL(base, href)
			if resolved == "" || !site.Contains(resolved) {
				return true
			}
			title := strings.TrimSpace(link.Text())
			if title == "" {
				return true
			}

			result := docsearch.Result{Title: title, URL: resolved}
			if m := parentheticalRe.FindStringSubmatch(link.Parent().Text()); m != nil {
				result.Category = strings.TrimSpace(m[1])
				result.Snippet = docsearch.TruncateSnippet(m[1])
			} else if sibText := strings.TrimSpace(link.Next().Text()); sibText != "" {
				result.Snippet = docsearch.TruncateSnippet(sibText)
			} else {
				result.Snippet = docsearch.PlaceholderSnippet
			}

			results = append(results, result)
			return true
		})
		return len(results) < q.Limit
	})

	return results, nil
}
