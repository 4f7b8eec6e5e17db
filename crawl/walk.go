package crawl

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/bloom"
)

// Walk defaults.
const (
	DefaultMaxPages      = 50
	DefaultMaxStalePages = 2

	// walkEntriesPerPage sizes the Bloom filter per page walked.
	walkEntriesPerPage = 40
	// walkFalsePositiveRate is the acceptable chance of dropping a new entry.
	walkFalsePositiveRate = 0.001
)

// Reasons a walk stopped.
const (
	StopEnd      = "end"
	StopMaxPages = "max_pages"
	StopStale    = "stale"
	StopRepeat   = "repeat"
)

// ListFunc fetches one page of a listing.
type ListFunc func(ctx context.Context, page int) (*catalog.Listing, error)

// WalkOptions bounds a pagination walk.
type WalkOptions struct {
	// MaxPages caps the number of pages fetched. Defaults to DefaultMaxPages.
	MaxPages int

	// MaxStalePages stops the walk after this many consecutive pages that
	// contribute no unseen entry. Defaults to DefaultMaxStalePages.
	MaxStalePages int

	// OnPage, if set, is called after each page is fetched.
	OnPage func(page int, listing *catalog.Listing)
}

// WalkResult is the outcome of a pagination walk.
type WalkResult struct {
	// Entries are deduplicated by identifier, in first-seen order.
	Entries []*catalog.EntryStub

	// Pages is the number of pages fetched.
	Pages int

	// Skipped totals the cards dropped across all pages.
	Skipped int

	// StopReason is one of StopEnd, StopMaxPages, StopStale or StopRepeat.
	StopReason string
}

// Walk fetches listing pages from page 1 while the site reports more pages.
// Sites that keep advertising a next page past the end of their catalog are
// cut off by MaxPages, by MaxStalePages, or as soon as a page repeats the
// previous one exactly.
//
// On a fetch error the entries collected so far are returned with the error.
func Walk(ctx context.Context, list ListFunc, opts WalkOptions) (*WalkResult, error) {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxStale := opts.MaxStalePages
	if maxStale <= 0 {
		maxStale = DefaultMaxStalePages
	}

	seen := bloom.NewFilter(uint(maxPages*walkEntriesPerPage), walkFalsePositiveRate)
	result := &WalkResult{Entries: []*catalog.EntryStub{}, StopReason: StopMaxPages}

	var prev uint64
	stale := 0
	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		listing, err := list(ctx, page)
		if err != nil {
			return result, err
		}
		result.Pages++
		result.Skipped += listing.Skipped
		if opts.OnPage != nil {
			opts.OnPage(page, listing)
		}

		fp := fingerprint(listing.Entries)
		if page > 1 && fp == prev {
			result.StopReason = StopRepeat
			break
		}
		prev = fp

		fresh := 0
		for _, e := range listing.Entries {
			if seen.TestAndAdd(e.Identifier) {
				continue
			}
			result.Entries = append(result.Entries, e)
			fresh++
		}

		if !listing.HasMore {
			result.StopReason = StopEnd
			break
		}

		if fresh == 0 {
			stale++
		} else {
			stale = 0
		}
		if stale >= maxStale {
			result.StopReason = StopStale
			break
		}
	}

	return result, nil
}

// fingerprint hashes the identifiers of a page in order.
func fingerprint(entries []*catalog.EntryStub) uint64 {
	h := xxhash.New()
	for _, e := range entries {
		_, _ = h.WriteString(e.Identifier)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
