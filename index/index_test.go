package index_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/index"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Strategy implements docsearch.Strategy at compile time.
var _ docsearch.Strategy = (*index.Strategy)(nil)

const indexFixture = `Search.setIndex({
  "docnames": ["index", "python/agent-intro", "user-guide/memory", "tutorials/first-agent"],
  "titles": ["Welcome", "Agent Introduction", "Memory and State", "Your First Agent Tutorial"],
  "terms": {"agent": [1, 3]}
})`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("extracts parallel title and docname sequences", func(t *testing.T) {
		t.Parallel()

		table, err := index.Parse(indexFixture)
		require.NoError(t, err)
		assert.Equal(t, []string{"index", "python/agent-intro", "user-guide/memory", "tutorials/first-agent"}, table.DocNames)
		assert.Equal(t, []string{"Welcome", "Agent Introduction", "Memory and State", "Your First Agent Tutorial"}, table.Titles)
	})

	t.Run("missing delimiter is a parse failure", func(t *testing.T) {
		t.Parallel()

		_, err := index.Parse(`{"docnames": [], "titles": []}`)
		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})

	t.Run("truncated JSON is a parse failure", func(t *testing.T) {
		t.Parallel()

		truncated := indexFixture[:len(indexFixture)/2] + ")"
		_, err := index.Parse(truncated)
		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})

	t.Run("unequal sequence lengths are a parse failure", func(t *testing.T) {
		t.Parallel()

		_, err := index.Parse(`Search.setIndex({"docnames": ["a", "b"], "titles": ["A"]})`)
		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})
}

func TestTable_Search(t *testing.T) {
	t.Parallel()

	site := docsearch.Site{Root: "https://docs.agentstack.dev"}

	t.Run("matches title and docname with category inference", func(t *testing.T) {
		t.Parallel()

		table, err := index.Parse(indexFixture)
		require.NoError(t, err)

		q := docsearch.Query{Text: "agent", Limit: 5, Version: "stable"}.Normalized()
		results := table.Search(q, site)
		require.NotEmpty(t, results)

		var intro *docsearch.Result
		for i := range results {
			if results[i].Title == "Agent Introduction" {
				intro = &results[i]
			}
		}
		require.NotNil(t, intro)
		assert.True(t, strings.HasSuffix(intro.URL, "/python/agent-intro.html"), "got %s", intro.URL)
		assert.Equal(t, docsearch.CategoryAPIReference, intro.Category)
		assert.NotEmpty(t, intro.Snippet)
	})

	t.Run("excludes documents with zero score", func(t *testing.T) {
		t.Parallel()

		table, err := index.Parse(indexFixture)
		require.NoError(t, err)

		q := docsearch.Query{Text: "agent", Limit: 10, Version: "stable"}.Normalized()
		for _, r := range table.Search(q, site) {
			assert.NotEqual(t, "Welcome", r.Title)
		}
	})

	t.Run("orders by count of query terms in the title", func(t *testing.T) {
		t.Parallel()

		table := &index.Table{
			Titles:   []string{"Agent Basics", "Agent Tool Calling", "Tooling"},
			DocNames: []string{"python/agent-basics", "python/agent-tools", "user-guide/tooling"},
		}

		q := docsearch.Query{Text: "agent tool", Limit: 10, Version: "stable"}.Normalized()
		results := table.Search(q, site)
		require.Len(t, results, 3)
		// "Agent Tool Calling" contains both terms; the others one each,
		// kept stable in index order.
		assert.Equal(t, "Agent Tool Calling", results[0].Title)
		assert.Equal(t, "Agent Basics", results[1].Title)
		assert.Equal(t, "Tooling", results[2].Title)
	})

	t.Run("docname-only match is included", func(t *testing.T) {
		t.Parallel()

		table := &index.Table{
			Titles:   []string{"Getting Started"},
			DocNames: []string{"tutorials/agent-quickstart"},
		}

		q := docsearch.Query{Text: "agent", Limit: 10, Version: "stable"}.Normalized()
		results := table.Search(q, site)
		require.Len(t, results, 1)
		assert.Equal(t, docsearch.CategoryTutorial, results[0].Category)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		t.Parallel()

		table := &index.Table{
			Titles:   []string{"Agent A", "Agent B", "Agent C"},
			DocNames: []string{"a", "b", "c"},
		}

		q := docsearch.Query{Text: "agent", Limit: 2, Version: "stable"}.Normalized()
		assert.Len(t, table.Search(q, site), 2)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		t.Parallel()

		table := &index.Table{Titles: []string{"Agent"}, DocNames: []string{"a"}}
		q := docsearch.Query{Text: "  ", Limit: 10, Version: "stable"}.Normalized()
		assert.Empty(t, table.Search(q, site))
	})
}

func TestStrategy_Search(t *testing.T) {
	t.Parallel()

	site := docsearch.Site{Root: "https://docs.agentstack.dev"}

	t.Run("fetches the version-scoped index URL", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				gotURL = url
				return indexFixture, nil
			},
		}
		s := index.NewStrategy(fetcher, site)

		q := docsearch.Query{Text: "agent", Limit: 5, Version: "latest"}.Normalized()
		results, err := s.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, "https://docs.agentstack.dev/latest/searchindex.js", gotURL)
		assert.NotEmpty(t, results)
	})

	t.Run("fetch failure surfaces as error for fallthrough", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		s := index.NewStrategy(fetcher, site)

		_, err := s.Search(context.Background(), docsearch.Query{Text: "agent"}.Normalized())
		require.Error(t, err)
	})

	t.Run("malformed payload surfaces as error for fallthrough", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return `Search.setIndex({"docnames": ["a"], "titles": ["A"`, nil
			},
		}
		s := index.NewStrategy(fetcher, site)

		_, err := s.Search(context.Background(), docsearch.Query{Text: "agent"}.Normalized())
		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})
}
