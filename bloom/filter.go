// Package bloom provides a probabilistic term pre-filter for search.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docshelf"
)

// Ensure TermFilter implements docshelf.TermFilter at compile time.
var _ docshelf.TermFilter = (*TermFilter)(nil)

// TermFilter holds one Bloom filter of terms per key, typically one key per
// collection.
type TermFilter struct {
	mu      sync.RWMutex
	n       uint
	fpRate  float64
	filters map[string]*bloom.BloomFilter
}

// NewTermFilter creates a TermFilter whose per-key filters are sized for n
// expected terms with the given false positive rate.
func NewTermFilter(n uint, fpRate float64) *TermFilter {
	return &TermFilter{
		n:       n,
		fpRate:  fpRate,
		filters: make(map[string]*bloom.BloomFilter),
	}
}

// Add records terms under the key.
func (t *TermFilter) Add(key string, terms []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, ok := t.filters[key]
	if !ok {
		f = bloom.NewWithEstimates(t.n, t.fpRate)
		t.filters[key] = f
	}
	for _, term := range terms {
		f.AddString(term)
	}
}

// MayContain reports whether every term might be present under the key.
// False positives are possible; false negatives are not. Unknown keys report
// true so they are never skipped unverified.
func (t *TermFilter) MayContain(key string, terms []string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.filters[key]
	if !ok {
		return true
	}
	for _, term := range terms {
		if !f.TestString(term) {
			return false
		}
	}
	return true
}

// EstimatedCount returns the approximate number of terms recorded under the
// key.
func (t *TermFilter) EstimatedCount(key string) uint {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.filters[key]
	if !ok {
		return 0
	}
	return uint(f.ApproximatedSize())
}
