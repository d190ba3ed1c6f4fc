package main

import (
	"context"
	"io"

	"github.com/fwojciec/docsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Site     docsearch.Site
	Service  docsearch.Service
	Sitemaps docsearch.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site    string `help:"Documentation site root (overrides DOCSEARCH_SITE)" env:"DOCSEARCH_SITE"`
	Verbose bool   `short:"v" help:"Log strategy and fetch activity to stderr"`

	Search   SearchCmd   `cmd:"" help:"Search the documentation"`
	Pages    PagesCmd    `cmd:"" help:"List documentation pages"`
	Sections SectionsCmd `cmd:"" help:"Show the documentation sections and their categories"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search query"`
	Limit   int    `short:"l" default:"10" help:"Maximum number of results"`
	Version string `short:"V" default:"stable" help:"Documentation version to search"`
	JSON    bool   `help:"Print results as JSON"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Discover bool     `short:"d" help:"Discover pages from the site's sitemap instead of the curated set"`
	Filter   []string `short:"F" name:"filter" help:"Filter discovered URLs by regex (repeatable)"`
	Version  string   `short:"V" default:"stable" help:"Documentation version"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}
