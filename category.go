package docsearch

import "strings"

// Category labels inferred from documentation paths.
const (
	CategoryAPIReference  = "API Reference"
	CategoryUserGuide     = "User Guide"
	CategoryTutorial      = "Tutorial"
	CategoryCoreGuide     = "Core Guide"
	CategoryDocumentation = "Documentation"
)

// categoryBySegment maps a path segment to its category label, checked
// in order so that more specific segments win over later ones.
var categoryBySegment = []struct {
	segment  string
	category string
}{
	{"python/", CategoryAPIReference},
	{"user-guide/", CategoryUserGuide},
	{"tutorials/", CategoryTutorial},
	{"components/", CategoryCoreGuide},
}

// CategoryForPath infers a coarse category from a document path or
// identifier. Unrecognized paths map to CategoryDocumentation.
func CategoryForPath(path string) string {
	for _, m := range categoryBySegment {
		if strings.Contains(path, m.segment) {
			return m.category
		}
	}
	return CategoryDocumentation
}

// Section is a documentation site section: the path prefix its pages
// live under and the category label they carry.
type Section struct {
	PathPrefix string
	Category   string
}

// Sections returns the recognized site sections in match order.
func Sections() []Section {
	sections := make([]Section, 0, len(categoryBySegment))
	for _, m := range categoryBySegment {
		sections = append(sections, Section{PathPrefix: m.segment, Category: m.category})
	}
	return sections
}
