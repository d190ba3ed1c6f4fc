package docsearch

import "strings"

// SnippetMaxLen bounds the display length of a result snippet.
const SnippetMaxLen = 200

// PlaceholderSnippet is used when no contextual text can be extracted
// for a result.
const PlaceholderSnippet = "Documentation page"

// Result is a single search result entry. Results are created by a
// strategy, merged by the resolver, and never mutated after creation.
type Result struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet"`
	Category string `json:"category,omitempty"`
}

// Validate returns an error if the result is missing required fields.
func (r *Result) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "result title required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	return nil
}

// TruncateSnippet collapses surrounding whitespace and bounds s to
// SnippetMaxLen runes, appending an ellipsis when content was cut.
func TruncateSnippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= SnippetMaxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:SnippetMaxLen-3])) + "..."
}
