package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	q := docsearch.Query{
		Text:    c.Query,
		Limit:   c.Limit,
		Version: c.Version,
	}

	results := deps.Service.Resolve(deps.Ctx, q)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s [%s]\n   %s\n   %s\n", i+1, r.Title, r.Category, r.URL, r.Snippet)
	}

	return nil
}
