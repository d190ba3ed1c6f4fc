package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStrategy_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs result count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			SearchFn: func(_ context.Context, _ docsearch.Query) ([]docsearch.Result, error) {
				return []docsearch.Result{{Title: "T", URL: "https://docs.agentstack.dev/stable/t.html"}}, nil
			},
			NameFn: func() string { return "index" },
		}

		s := dsslog.NewLoggingStrategy(inner, logger)
		results, err := s.Search(context.Background(), docsearch.Query{Text: "agent"}.Normalized())

		require.NoError(t, err)
		assert.Len(t, results, 1)
		output := buf.String()
		assert.Contains(t, output, "strategy finished")
		assert.Contains(t, output, "strategy=index")
		assert.Contains(t, output, "results=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures as warnings and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			SearchFn: func(_ context.Context, _ docsearch.Query) ([]docsearch.Result, error) {
				return nil, errors.New("connection refused")
			},
			NameFn: func() string { return "searchpage" },
		}

		s := dsslog.NewLoggingStrategy(inner, logger)
		_, err := s.Search(context.Background(), docsearch.Query{Text: "agent"}.Normalized())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "strategy failed")
		assert.Contains(t, output, "strategy=searchpage")
		assert.Contains(t, output, "connection refused")
	})
}

func TestLoggingStrategy_Name(t *testing.T) {
	t.Parallel()

	inner := &mock.Strategy{NameFn: func() string { return "crawl" }}
	s := dsslog.NewLoggingStrategy(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.Equal(t, "crawl", s.Name())
}
