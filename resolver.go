package docsearch

import "context"

// Ensure Resolver implements Service at compile time.
var _ Service = (*Resolver)(nil)

// Resolver runs strategies in priority order and stops at the first
// non-empty result set. Strategy errors are swallowed: a failed
// strategy is indistinguishable from one that found nothing.
type Resolver struct {
	// Strategies are tried in order. Conventionally: structured index,
	// rendered search page, fallback crawl.
	Strategies []Strategy
}

// NewResolver creates a Resolver over the given strategies.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{Strategies: strategies}
}

// Resolve runs the strategy cascade for q. Entries missing required
// fields are dropped, then the list is deduplicated by URL (first
// occurrence wins, preserving the chosen strategy's internal ordering)
// and truncated to the limit. It is empty when every strategy yields
// nothing; Resolve never returns an error.
func (r *Resolver) Resolve(ctx context.Context, q Query) []Result {
	q = q.Normalized()
	if q.Limit == 0 {
		return nil
	}

	for _, s := range r.Strategies {
		results, err := s.Search(ctx, q)
		if err != nil {
			continue
		}
		results = valid(results)
		if len(results) == 0 {
			continue
		}
		return truncate(dedupByURL(results), q.Limit)
	}
	return nil
}

// valid drops entries that fail validation. A strategy yielding only
// invalid entries is indistinguishable from one that found nothing.
func valid(results []Result) []Result {
	kept := results[:0:0]
	for _, r := range results {
		if r.Validate() != nil {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// dedupByURL removes later results that share a URL with an earlier one.
func dedupByURL(results []Result) []Result {
	seen := make(map[string]struct{}, len(results))
	deduped := results[:0:0]
	for _, r := range results {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		deduped = append(deduped, r)
	}
	return deduped
}

func truncate(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
