package crawl

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/bloom"
	"github.com/fwojciec/docsearch/goquery"
)

// Ensure Crawler implements docsearch.Strategy at compile time.
var _ docsearch.Strategy = (*Crawler)(nil)

// Crawler is the fallback strategy: it fetches the classified query's
// curated pages one at a time, in priority order, and scans the ones
// whose readable content mentions the query. Fetch failures skip the
// page; there is no retry.
type Crawler struct {
	Fetcher docsearch.Fetcher
	Site    docsearch.Site

	// Extractor strips boilerplate before the contains-query gate.
	// When nil, or when extraction fails, the gate runs against the
	// raw HTML.
	Extractor docsearch.Extractor

	// Limiter paces fetches when set.
	Limiter *DomainLimiter
}

// NewCrawler creates a Crawler over the given site.
func NewCrawler(fetcher docsearch.Fetcher, site docsearch.Site, extractor docsearch.Extractor, limiter *DomainLimiter) *Crawler {
	return &Crawler{Fetcher: fetcher, Site: site, Extractor: extractor, Limiter: limiter}
}

// Name returns the strategy's identifier.
func (c *Crawler) Name() string {
	return "crawl"
}

// Search crawls the curated pages for q and returns accumulated matches,
// deduplicated by URL across pages and scan passes. It returns an error
// only when the context ends; per-page failures are skipped silently.
func (c *Crawler) Search(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error) {
	cls := Classify(q.Text, c.Site, q.Version)

	// Page scans surface anchor and link URLs, so the same URL can
	// recur across pages and across the related-terms passes. The
	// filter keeps the first occurrence.
	extracted := bloom.NewVisited(uint(q.Limit+len(cls.Pages))*8, 0.01)
	seenBodies := make(map[uint64]bool)
	lowerQuery := strings.ToLower(q.Text)

	var results []docsearch.Result
	for _, page := range cls.Pages {
		if len(results) >= q.Limit {
			break
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, page.URL); err != nil {
				return nil, err
			}
		}

		body, err := c.Fetcher.Fetch(ctx, page.URL)
		if err != nil {
			continue
		}

		// Some curated URLs alias the same document; one scan is enough.
		sum := xxhash.Sum64String(body)
		if seenBodies[sum] {
			continue
		}
		seenBodies[sum] = true

		text := c.readableText(body)

		if strings.Contains(text, lowerQuery) {
			results = c.scan(results, extracted, body, page, q.Text, q.Limit)
		}
		if cls.Kind == KindMCP {
			for _, term := range cls.RelatedTerms {
				if len(results) >= q.Limit {
					break
				}
				if strings.Contains(text, term) {
					results = c.scan(results, extracted, body, page, term, q.Limit)
				}
			}
		}
	}

	return results, nil
}

// scan runs the page extractor for one term against one page, appending
// matches with not-yet-extracted URLs up to the remaining headroom.
func (c *Crawler) scan(results []docsearch.Result, extracted *bloom.Visited, body string, page PageDescriptor, term string, limit int) []docsearch.Result {
	matches, err := goquery.ExtractPageMatches(body, page.URL, term, page.Category, limit-len(results))
	if err != nil {
		return results
	}
	for _, m := range matches {
		if !extracted.Visit(m.URL) {
			continue
		}
		results = append(results, m)
	}
	return results
}

// readableText returns the lowercased content used for the
// contains-query gate, boilerplate-stripped when an extractor is
// available.
func (c *Crawler) readableText(body string) string {
	if c.Extractor != nil {
		if content, err := c.Extractor.Extract(body); err == nil && content.Text != "" {
			return strings.ToLower(content.Text)
		}
	}
	return strings.ToLower(body)
}
