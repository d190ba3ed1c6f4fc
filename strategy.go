package docsearch

import "context"

// Strategy produces candidate results for a query. Strategies are
// independent: each knows how to mine one source (the structured search
// index, the rendered search page, the fallback crawl) and returns
// whatever it found, possibly nothing.
//
// An error means the strategy could not run (fetch or parse failure);
// the resolver treats it exactly like an empty result set and falls
// through to the next strategy.
type Strategy interface {
	// Search returns candidate results for q, at most q.Limit of them.
	Search(ctx context.Context, q Query) ([]Result, error)

	// Name returns the strategy's identifier (e.g., "index", "crawl").
	Name() string
}

// Service is the single operation exposed to callers. It never fails:
// every internal strategy failure degrades to fallthrough, and the only
// caller-visible "failure" is an empty result list.
type Service interface {
	Resolve(ctx context.Context, q Query) []Result
}
