// Package bloom provides entry identifier deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for identifier deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identifiers
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd records id and reports whether it might have been recorded
// before.
func (f *Filter) TestAndAdd(id string) bool {
	return f.f.TestAndAddString(id)
}
