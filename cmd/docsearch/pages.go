package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	if !c.Discover {
		pages := crawl.StandardPages(deps.Site, c.Version)
		for _, p := range pages {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", p.URL, p.Category)
		}
		return nil
	}

	var filter *docsearch.URLFilter
	if len(c.Filter) > 0 {
		filter = &docsearch.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q\n", pattern)
				return docsearch.Errorf(docsearch.EINVALID, "invalid filter pattern %q: %s", pattern, err)
			}
			filter.Include = append(filter.Include, re)
		}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, deps.Site.Root, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found in the sitemap. The curated set is still used for searching.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
