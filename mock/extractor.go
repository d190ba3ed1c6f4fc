package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docsearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docsearch.PageContent, error)
}

func (e *Extractor) Extract(html string) (*docsearch.PageContent, error) {
	return e.ExtractFn(html)
}
