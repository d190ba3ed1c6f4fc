// Package slog provides logging decorators for docsearch interfaces
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingStrategy implements docsearch.Strategy.
var _ docsearch.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a Strategy with per-search logging. Errors are
// logged here because the resolver swallows them.
type LoggingStrategy struct {
	next   docsearch.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next docsearch.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Search delegates to the wrapped strategy and logs the outcome.
func (s *LoggingStrategy) Search(ctx context.Context, q docsearch.Query) ([]docsearch.Result, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, q)
	if err != nil {
		s.logger.Warn("strategy failed",
			"strategy", s.next.Name(),
			"query", q.Text,
			"duration", time.Since(begin),
			"error", err,
		)
		return results, err
	}
	s.logger.Info("strategy finished",
		"strategy", s.next.Name(),
		"query", q.Text,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}
