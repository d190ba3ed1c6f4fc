package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	for _, s := range docsearch.Sections() {
		fmt.Fprintf(deps.Stdout, "%-14s %s\n", s.PathPrefix, s.Category)
	}
	fmt.Fprintf(deps.Stdout, "%-14s %s\n", "(other)", docsearch.CategoryDocumentation)
	return nil
}
