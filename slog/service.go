package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
)

// Ensure LoggingService implements docsearch.Service.
var _ docsearch.Service = (*LoggingService)(nil)

// LoggingService wraps a Service, tagging every resolution with a
// correlation id so strategy and fetch logs can be grouped per query.
type LoggingService struct {
	next   docsearch.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next docsearch.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Resolve delegates to the wrapped service and logs the resolution.
func (s *LoggingService) Resolve(ctx context.Context, q docsearch.Query) []docsearch.Result {
	id := uuid.NewString()
	begin := time.Now()
	s.logger.Info("resolve started",
		"resolution", id,
		"query", q.Text,
		"limit", q.Limit,
		"version", q.Version,
	)
	results := s.next.Resolve(ctx, q)
	s.logger.Info("resolve finished",
		"resolution", id,
		"query", q.Text,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results
}
