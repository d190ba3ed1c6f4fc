// Package bloom provides seen-URL tracking for the fallback crawler.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Visited tracks which result URLs a crawl has already surfaced.
// False positives are possible (a never-seen URL may be reported as
// visited), which costs at most a dropped duplicate-looking result;
// false negatives are not.
type Visited struct {
	f *bloom.BloomFilter
}

// NewVisited creates a tracker sized for n expected URLs with the given
// false positive rate.
func NewVisited(n uint, fpRate float64) *Visited {
	return &Visited{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Visit marks url as visited and reports whether this was the first
// visit.
func (v *Visited) Visit(url string) bool {
	return !v.f.TestAndAddString(url)
}
