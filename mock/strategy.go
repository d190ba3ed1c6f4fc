package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of docsearch.Strategy.
type Strategy struct {
	SearchFn func(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error)
	NameFn   func() string
}

func (s *Strategy) Search(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error) {
	return s.SearchFn(ctx, q)
}

func (s *Strategy) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
