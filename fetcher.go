package docsearch

import "context"

// Fetcher retrieves raw content from URLs.
// Callers supply fully-qualified absolute URLs. A non-success HTTP
// status or a transport failure surfaces as an ordinary error; callers
// treat either as "no content" for that target and move on.
type Fetcher interface {
	// Fetch retrieves the body of the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
