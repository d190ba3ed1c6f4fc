// Package trafilatura strips boilerplate from documentation pages so the
// fallback crawler can test their readable content for query matches.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract readable content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content
// as plain text, with nav, sidebar, and footer boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*docsearch.PageContent, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &docsearch.PageContent{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
