package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Service = (*Service)(nil)

// Service is a mock implementation of docsearch.Service.
type Service struct {
	ResolveFn func(ctx context.Context, q docsearch.Query) []docsearch.Result
}

func (s *Service) Resolve(ctx context.Context, q docsearch.Query) []docsearch.Result {
	return s.ResolveFn(ctx, q)
}
