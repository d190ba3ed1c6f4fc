package docsearch

// PageContent holds the readable content of a documentation page after
// boilerplate (nav, footer, sidebar) has been stripped.
type PageContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text.
	Text string
}

// Extractor extracts readable content from HTML pages, removing
// boilerplate. The fallback crawler uses it to decide whether a page is
// worth scanning for matches.
type Extractor interface {
	Extract(html string) (*PageContent, error)
}
