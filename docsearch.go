// Package docsearch resolves free-text queries against a remote
// documentation site into ranked result entries. Resolution cascades
// through independent strategies (the site's structured search index,
// its rendered search page, and a crawl over curated fallback pages),
// stopping at the first strategy that yields results.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, trafilatura/) or their function (index/, crawl/).
package docsearch
