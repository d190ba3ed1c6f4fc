// Command docsearch-mcp exposes documentation search as an MCP tool
// over stdio. The protocol runs on stdout, so all logging goes to
// stderr.
package main

import (
	"context"
	"fmt"
	stdslog "log/slog"
	"os"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
	"github.com/fwojciec/docsearch/goquery"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/index"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/trafilatura"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "docsearch-mcp"
	serverVersion = "1.0.0"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("%s version %s\n", serverName, serverVersion)
		os.Exit(0)
	}

	logger := stdslog.New(stdslog.NewTextHandler(os.Stderr, nil))
	if err := run(context.Background(), logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// run wires the resolution cascade and serves it until the transport
// closes. Returning the error (instead of exiting) lets deferred
// cleanup run.
func run(ctx context.Context, logger *stdslog.Logger) error {
	siteRoot := os.Getenv("DOCSEARCH_SITE")
	if siteRoot == "" {
		siteRoot = docsearch.DefaultSiteRoot
	}
	site := docsearch.Site{Root: siteRoot}
	if site.Host() == "" {
		return docsearch.Errorf(docsearch.EINVALID, "invalid site root %q", siteRoot)
	}

	fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(), logger)
	defer fetcher.Close()

	crawler := crawl.NewCrawler(fetcher, site, trafilatura.NewExtractor(), crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond))

	resolver := docsearch.NewResolver(
		dsslog.NewLoggingStrategy(index.NewStrategy(fetcher, site), logger),
		dsslog.NewLoggingStrategy(goquery.NewSearchPageStrategy(fetcher, site), logger),
		dsslog.NewLoggingStrategy(crawler, logger),
	)
	service := dsslog.NewLoggingService(resolver, logger)

	server := NewServer(service)
	logger.Info("server ready", "name", serverName, "version", serverVersion, "site", siteRoot)

	return server.Run(ctx, &mcp.StdioTransport{})
}

// SearchDocsInput defines input for the search_docs tool. Limit is a
// pointer so an omitted limit is distinguishable from an explicit zero.
type SearchDocsInput struct {
	Query   string `json:"query" jsonschema:"Free-text query to search the documentation for"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10; 0 returns nothing)"`
	Version string `json:"version,omitempty" jsonschema:"Documentation version to search (optional, defaults to stable)"`
}

// SearchDocsOutput defines output for the search_docs tool.
type SearchDocsOutput struct {
	Results []docsearch.Result `json:"results"`
	Query   string             `json:"query"`
	Total   int                `json:"total"`
}

// Tool holds the dependencies of the search_docs tool.
type Tool struct {
	Service docsearch.Service
}

// SearchDocs resolves a query against the documentation site. It never
// fails: an unresolvable query yields an empty result list.
func (t *Tool) SearchDocs(ctx context.Context, _ *mcp.CallToolRequest, input SearchDocsInput) (*mcp.CallToolResult, SearchDocsOutput, error) {
	limit := docsearch.DefaultLimit
	if input.Limit != nil {
		limit = *input.Limit
	}
	results := t.Service.Resolve(ctx, docsearch.Query{
		Text:    input.Query,
		Limit:   limit,
		Version: input.Version,
	})
	if results == nil {
		results = []docsearch.Result{}
	}
	return nil, SearchDocsOutput{
		Results: results,
		Query:   input.Query,
		Total:   len(results),
	}, nil
}

// NewServer creates the MCP server with the search_docs tool registered.
func NewServer(service docsearch.Service) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		nil,
	)

	tool := &Tool{Service: service}
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_docs",
			Description: "Search the documentation site. Tries the structured search index first, then the rendered search page, then a fallback crawl of key pages. Returns titles, URLs, snippets, and categories.",
		},
		tool.SearchDocs,
	)

	return server
}
