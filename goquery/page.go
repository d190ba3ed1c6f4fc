package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// headingSelector covers the heading levels scanned for matches.
const headingSelector = "h1, h2, h3, h4"

// minBlockLen is the smallest text block considered contextual enough to
// surface as a result on its own.
const minBlockLen = 50

// ExtractPageMatches scans a generic documentation page for the query:
// headings whose text contains it, text blocks longer than minBlockLen
// that mention it, and links whose text or URL contains it. The three
// scans run in sequence until limit results are collected; entries are
// deduplicated within the page by (url, title).
//
// The fallback crawler runs this against each curated page; category is
// the page's curated label.
func ExtractPageMatches(html, pageURL, query, category string, limit int) ([]docsearch.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}
	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid page URL: %v", err)
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())

	var results []docsearch.Result
	seen := make(map[string]struct{})
	add := func(r docsearch.Result) bool {
		if len(results) >= limit {
			return false
		}
		key := r.URL + "\x00" + r.Title
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
		results = append(results, r)
		return len(results) < limit
	}

	// Headings containing the query anchor directly to their section.
	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" || !containsFold(text, query) {
			return true
		}

		anchorURL := pageURL
		if id, ok := sel.Attr("id"); ok && id != "" {
			anchorURL = pageURL + "#" + id
		}

		snippet := strings.TrimSpace(sel.Next().Text())
		if snippet == "" {
			snippet = category + ": " + text
		}

		return add(docsearch.Result{
			Title:    text,
			URL:      anchorURL,
			Snippet:  docsearch.TruncateSnippet(snippet),
			Category: category,
		})
	})

	// Text blocks mentioning the query, attributed to their nearest
	// preceding heading.
	doc.Find("p, li, dd").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= minBlockLen || !containsFold(text, query) {
			return true
		}

		title := nearestHeading(sel)
		if title == "" {
			title = pageTitle
		}
		if title == "" {
			title = category
		}

		return add(docsearch.Result{
			Title:    title,
			URL:      pageURL,
			Snippet:  docsearch.TruncateSnippet(text),
			Category: category,
		})
	})

	// Links whose visible text or target mentions the query.
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok || href == "" || isNonHTTPLink(href) {
			return true
		}
		text := strings.TrimSpace(link.Text())
		if !containsFold(text, query) && !containsFold(href, query) {
			return true
		}

		resolved := resolveURL(page, href)
		if resolved == "" {
			return true
		}
		resolvedURL, err := url.Parse(resolved)
		if err != nil || resolvedURL.Hostname() != page.Hostname() {
			return true
		}

		title := text
		if title == "" {
			title = resolved
		}

		snippet := strings.TrimSpace(link.Parent().Text())
		if snippet == "" || snippet == text {
			snippet = strings.TrimSpace(link.Next().Text())
		}
		if snippet == "" {
			snippet = docsearch.PlaceholderSnippet
		}

		return add(docsearch.Result{
			Title:    title,
			URL:      resolved,
			Snippet:  docsearch.TruncateSnippet(snippet),
			Category: category,
		})
	})

	return results, nil
}

// nearestHeading returns the text of the closest heading preceding sel
// in document order, climbing through ancestors when the current level
// has none.
func nearestHeading(sel *goquery.Selection) string {
	for cur := sel; cur.Length() > 0; cur = cur.Parent() {
		var found string
		cur.PrevAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Is(headingSelector) {
				found = strings.TrimSpace(sib.Text())
				return false
			}
			if h := sib.Find(headingSelector).Last(); h.Length() > 0 {
				found = strings.TrimSpace(h.Text())
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}
