// Package index implements the structured search-index strategy: the
// highest-precision, lowest-cost strategy, always tried first. It parses
// the site-published searchindex.js payload and scores indexed documents
// against the query without fetching any rendered pages.
package index

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/fwojciec/docsearch"
)

// setIndexPrefix delimits the JSON object embedded in the script-like
// index payload.
const setIndexPrefix = "Search.setIndex("

// Scoring weights for the membership filter. The filter only decides
// which documents are candidates; ordering is by title term count.
const (
	titleWeight   = 3
	docNameWeight = 2
)

// Table is the parsed structured index: parallel ordered sequences of
// document titles and document names, paired by position.
type Table struct {
	Titles   []string
	DocNames []string
}

// Parse extracts the JSON object embedded in the raw index payload and
// returns the title/docname table. Any extraction or decode failure, and
// any length mismatch between the parallel sequences, is a parse failure
// (EINVALID); the strategy then yields zero candidates.
func Parse(raw string) (*Table, error) {
	start := strings.Index(raw, setIndexPrefix)
	if start < 0 {
		return nil, docsearch.Errorf(docsearch.EINVALID, "search index payload missing %q delimiter", setIndexPrefix)
	}
	payload := raw[start+len(setIndexPrefix):]
	end := strings.LastIndex(payload, ")")
	if end < 0 {
		return nil, docsearch.Errorf(docsearch.EINVALID, "search index payload missing closing delimiter")
	}

	var decoded struct {
		DocNames []string `json:"docnames"`
		Titles   []string `json:"titles"`
	}
	if err := json.Unmarshal([]byte(payload[:end]), &decoded); err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "decoding search index: %v", err)
	}
	if len(decoded.DocNames) != len(decoded.Titles) {
		return nil, docsearch.Errorf(docsearch.EINVALID, "search index has %d docnames but %d titles", len(decoded.DocNames), len(decoded.Titles))
	}

	return &Table{Titles: decoded.Titles, DocNames: decoded.DocNames}, nil
}

// Search scores the table's documents against q and returns results for
// the matching ones, ordered by descending count of query terms found in
// the title (stable with respect to index order) and truncated to the
// limit. Document URLs are built under the site's tree for q.Version.
func (t *Table) Search(q docsearch.Query, site docsearch.Site) []docsearch.Result {
	terms := q.Terms()
	if len(terms) == 0 {
		return nil
	}

	type candidate struct {
		result     docsearch.Result
		titleTerms int
	}
	var candidates []candidate

	for i, title := range t.Titles {
		docName := t.DocNames[i]
		lowerTitle := strings.ToLower(title)
		lowerName := strings.ToLower(docName)

		score := 0
		titleTerms := 0
		for _, term := range terms {
			if strings.Contains(lowerTitle, term) {
				titleTerms++
			}
		}
		if titleTerms > 0 {
			score += titleWeight
		}
		for _, term := range terms {
			if strings.Contains(lowerName, term) {
				score += docNameWeight
				break
			}
		}
		if score == 0 {
			continue
		}

		category := docsearch.CategoryForPath(docName)
		candidates = append(candidates, candidate{
			result: docsearch.Result{
				Title:    title,
				URL:      site.PageURL(q.Version, docName+".html"),
				Snippet:  docsearch.TruncateSnippet(category + ": " + title),
				Category: category,
			},
			titleTerms: titleTerms,
		})
	}

	// Title term count is the authoritative ordering for this strategy;
	// the weighted score above is only a membership filter.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].titleTerms > candidates[j].titleTerms
	})

	results := make([]docsearch.Result, 0, len(candidates))
	for _, c := range candidates {
		if len(results) >= q.Limit {
			break
		}
		results = append(results, c.result)
	}
	return results
}

// Ensure Strategy implements docsearch.Strategy at compile time.
var _ docsearch.Strategy = (*Strategy)(nil)

// Strategy resolves queries via the site's structured search index.
type Strategy struct {
	Fetcher docsearch.Fetcher
	Site    docsearch.Site
}

// NewStrategy creates an index Strategy for the given site.
func NewStrategy(fetcher docsearch.Fetcher, site docsearch.Site) *Strategy {
	return &Strategy{Fetcher: fetcher, Site: site}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return "index"
}

// Search fetches and parses the structured index for q.Version and
// returns scored matches. Fetch and parse failures surface as errors,
// which the resolver treats as an empty result set.
func (s *Strategy) Search(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error) {
	raw, err := s.Fetcher.Fetch(ctx, s.Site.IndexURL(q.Version))
	if err != nil {
		return nil, err
	}
	table, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return table.Search(q, s.Site), nil
}
