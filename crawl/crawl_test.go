package crawl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Crawler implements docsearch.Strategy at compile time.
var _ docsearch.Strategy = (*crawl.Crawler)(nil)

// fetcherFor serves fixed bodies by URL; everything else fails.
func fetcherFor(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if body, ok := pages[url]; ok {
				return body, nil
			}
			return "", errors.New("HTTP 404")
		},
	}
}

func contentPage(heading, text string) string {
	return `<html><head><title>` + heading + `</title></head><body><h2 id="sec">` +
		heading + `</h2><p>` + text + `</p></body></html>`
}

func TestCrawler_Search(t *testing.T) {
	t.Parallel()

	t.Run("scans pages whose content mentions the query", func(t *testing.T) {
		t.Parallel()

		guideURL := testSite.PageURL("stable", "user-guide/index.html")
		fetcher := fetcherFor(map[string]string{
			guideURL: contentPage("Memory Guide", "Configuring memory for long conversations requires a persistent store."),
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Memory Guide", results[0].Title)
		assert.Equal(t, docsearch.CategoryUserGuide, results[0].Category)
	})

	t.Run("skips pages that fail to fetch", func(t *testing.T) {
		t.Parallel()

		faqURL := testSite.PageURL("stable", "faq.html")
		fetcher := fetcherFor(map[string]string{
			faqURL: contentPage("Memory FAQ", "Common questions about memory usage and related limits explained."),
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.True(t, strings.HasPrefix(r.URL, faqURL), "URL %s", r.URL)
		}
	})

	t.Run("skips pages whose content does not mention the query", func(t *testing.T) {
		t.Parallel()

		fetcher := fetcherFor(map[string]string{
			testSite.PageURL("stable", "index.html"): contentPage("Welcome", "Nothing relevant lives on this page at all, nothing whatsoever."),
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("all curated pages failing yields empty, not an error", func(t *testing.T) {
		t.Parallel()

		c := crawl.NewCrawler(fetcherFor(nil), testSite, nil, nil)

		q := docsearch.Query{Text: "mcp", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("mcp classification adds a related-terms pass", func(t *testing.T) {
		t.Parallel()

		toolsURL := strings.TrimRight(testSite.Root, "/") + "/mcp/tools.html"
		// The page never mentions "mcp" itself, only a related term.
		fetcher := fetcherFor(map[string]string{
			toolsURL: contentPage("Registering Tools", "A tool accepts typed input and returns structured output to the caller."),
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "mcp", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "MCP Tools", results[0].Category)
	})

	t.Run("standard classification has no related-terms pass", func(t *testing.T) {
		t.Parallel()

		fetcher := fetcherFor(map[string]string{
			testSite.PageURL("stable", "index.html"): contentPage("Tools", "A tool accepts typed input and returns structured output to the caller."),
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		// Query absent from the page; "tool" alone must not trigger a scan.
		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("deduplicates identical bodies served under alias URLs", func(t *testing.T) {
		t.Parallel()

		body := contentPage("Memory", "Everything about memory management in one convenient location here.")
		fetcher := fetcherFor(map[string]string{
			testSite.PageURL("stable", "index.html"):            body,
			testSite.PageURL("stable", "user-guide/index.html"): body,
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)

		// Both aliases would produce the same matches; only one page is scanned.
		urls := make(map[string]int)
		for _, r := range results {
			urls[r.URL]++
		}
		for u, n := range urls {
			assert.Equal(t, 1, n, "URL %s surfaced %d times", u, n)
		}
		for _, r := range results {
			assert.Contains(t, r.URL, "/stable/index.html")
		}
	})

	t.Run("deduplicates the same extracted URL across pages", func(t *testing.T) {
		t.Parallel()

		// Distinct bodies on two curated pages both link to the same
		// document; the link must surface once, from the first page.
		link := `<a href="/stable/user-guide/memory.html">memory settings</a>`
		fetcher := fetcherFor(map[string]string{
			testSite.PageURL("stable", "index.html"): `<html><body><p>one</p>` + link + `</body></html>`,
			testSite.PageURL("stable", "faq.html"):   `<html><body><p>two</p>` + link + `</body></html>`,
		})
		c := crawl.NewCrawler(fetcher, testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)

		memoryURL := testSite.PageURL("stable", "user-guide/memory.html")
		count := 0
		for _, r := range results {
			if r.URL == memoryURL {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("respects limit across pages", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{}
		for _, path := range []string{"index.html", "user-guide/index.html", "tutorials/index.html"} {
			pages[testSite.PageURL("stable", path)] = contentPage("Memory "+path, "Plenty of memory discussion fills this documentation page completely.")
		}
		c := crawl.NewCrawler(fetcherFor(pages), testSite, nil, nil)

		q := docsearch.Query{Text: "memory", Limit: 2, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("uses extractor output for the content gate", func(t *testing.T) {
		t.Parallel()

		// Raw body mentions the query only in boilerplate the extractor strips.
		raw := `<html><body><nav>memory</nav><main><p>Completely unrelated content goes here instead.</p></main></body></html>`
		fetcher := fetcherFor(map[string]string{
			testSite.PageURL("stable", "index.html"): raw,
		})
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*docsearch.PageContent, error) {
				return &docsearch.PageContent{Title: "Index", Text: "Completely unrelated content goes here instead."}, nil
			},
		}
		c := crawl.NewCrawler(fetcher, testSite, extractor, nil)

		q := docsearch.Query{Text: "memory", Limit: 10, Version: "stable"}.Normalized()
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("canceled context stops the crawl", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := crawl.NewCrawler(fetcherFor(nil), testSite, nil, crawl.NewDomainLimiter(1))
		_, err := c.Search(ctx, docsearch.Query{Text: "memory", Limit: 10}.Normalized())
		require.Error(t, err)
	})
}
