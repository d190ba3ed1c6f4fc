package docsearch

import "strings"

// Defaults applied by Query.Normalized.
const (
	DefaultLimit   = 10
	DefaultVersion = "stable"
)

// Query is a resolution request. A zero Version means "use the
// default"; Limit is taken literally, so a zero limit yields an empty
// result. Surfaces with a notion of "unset" (CLI flag defaults,
// optional protocol fields) substitute DefaultLimit before building
// the query. Callers normally pass queries through Normalized before
// use.
type Query struct {
	// Text is the free-text query.
	Text string

	// Limit caps the number of returned results. Zero means none.
	Limit int

	// Version selects the documentation tree to search. It is
	// substituted into the site's base URL path with no existence
	// validation; an unknown version yields empty results from every
	// strategy rather than an error.
	Version string
}

// Normalized returns a copy of q with the version default applied and
// negative limits clamped to 0. A zero limit stays zero: the resolved
// sequence length must never exceed the requested limit, including at
// the boundary.
func (q Query) Normalized() Query {
	if q.Limit < 0 {
		q.Limit = 0
	}
	if q.Version == "" {
		q.Version = DefaultVersion
	}
	return q
}

// Terms splits the query text into lowercase whitespace-separated terms.
// Empty terms are discarded.
func (q Query) Terms() []string {
	return strings.Fields(strings.ToLower(q.Text))
}
