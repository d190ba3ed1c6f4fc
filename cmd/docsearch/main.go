package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
	"github.com/fwojciec/docsearch/goquery"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/index"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Documentation site root. Set before calling Run().
	SiteRoot string

	// Fetcher shared by all strategies, closed when Run returns.
	Fetcher docsearch.Fetcher

	// Service for end-to-end testing.
	Service docsearch.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		SiteRoot: defaultSiteRoot(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Site != "" {
		m.SiteRoot = cli.Site
	}
	site := docsearch.Site{Root: m.SiteRoot}
	if site.Host() == "" {
		fmt.Fprintln(stderr, "Hint: Set DOCSEARCH_SITE or pass --site with a full URL like https://docs.agentstack.dev")
		return docsearch.Errorf(docsearch.EINVALID, "invalid site root %q", m.SiteRoot)
	}

	level := stdslog.LevelWarn
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(), logger)
	m.Fetcher = fetcher
	defer m.Close()

	crawler := crawl.NewCrawler(fetcher, site, trafilatura.NewExtractor(), crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond))

	resolver := docsearch.NewResolver(
		dsslog.NewLoggingStrategy(index.NewStrategy(fetcher, site), logger),
		dsslog.NewLoggingStrategy(goquery.NewSearchPageStrategy(fetcher, site), logger),
		dsslog.NewLoggingStrategy(crawler, logger),
	)
	m.Service = dsslog.NewLoggingService(resolver, logger)

	deps.Site = site
	deps.Service = m.Service
	deps.Sitemaps = dshttp.NewSitemapService(nil)

	return kongCtx.Run(deps)
}

func defaultSiteRoot() string {
	if root := os.Getenv("DOCSEARCH_SITE"); root != "" {
		return root
	}
	return docsearch.DefaultSiteRoot
}
