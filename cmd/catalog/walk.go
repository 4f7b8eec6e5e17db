package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
)

// walkOutput is the JSON form of a walk.
type walkOutput struct {
	Entries    []*catalog.EntryStub `json:"entries"`
	Details    []*catalog.Detail    `json:"details,omitempty"`
	Pages      int                  `json:"pages"`
	Skipped    int                  `json:"skipped"`
	StopReason string               `json:"stopReason"`
}

// Run executes the walk command.
func (c *WalkCmd) Run(deps *Dependencies) error {
	mode, err := catalog.ParseMode(c.Mode)
	if err != nil {
		return fail(deps, err)
	}
	list := c.listFunc(deps.Source, mode)

	result, walkErr := crawl.Walk(deps.Ctx, list, crawl.WalkOptions{
		MaxPages:      c.MaxPages,
		MaxStalePages: c.MaxStale,
		OnPage: func(page int, listing *catalog.Listing) {
			deps.Logger.Info("walked page", "mode", mode, "page", page, "count", len(listing.Entries))
		},
	})
	if walkErr != nil && result == nil {
		return fail(deps, walkErr)
	}

	var details []*catalog.Detail
	var hydrateErr error
	if c.Details && walkErr == nil {
		details, hydrateErr = crawl.Hydrate(deps.Ctx, deps.Source, result.Entries, c.Concurrency)
		if errors.Is(hydrateErr, context.Canceled) || errors.Is(hydrateErr, context.DeadlineExceeded) {
			return fail(deps, hydrateErr)
		}
		details = compactDetails(details)
	}

	if deps.JSON {
		if err := writeJSON(deps.Stdout, walkOutput{
			Entries:    result.Entries,
			Details:    details,
			Pages:      result.Pages,
			Skipped:    result.Skipped,
			StopReason: result.StopReason,
		}); err != nil {
			return err
		}
	} else {
		if c.Details {
			for i, d := range details {
				if i > 0 {
					fmt.Fprintln(deps.Stdout)
				}
				writeDetail(deps.Stdout, d)
			}
		} else {
			writeEntries(deps.Stdout, result.Entries)
		}
		fmt.Fprintf(deps.Stdout, "\n%d entries from %d page(s), stopped: %s\n",
			len(result.Entries), result.Pages, result.StopReason)
	}

	if walkErr != nil {
		return fail(deps, fmt.Errorf("walk stopped after %d page(s): %w", result.Pages, walkErr))
	}
	if hydrateErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: %d of %d details could not be fetched\n",
			len(result.Entries)-len(details), len(result.Entries))
		return fail(deps, hydrateErr)
	}
	return nil
}

func (c *WalkCmd) listFunc(src catalog.Source, mode catalog.Mode) crawl.ListFunc {
	switch mode {
	case catalog.ModeLatest:
		return src.ListLatest
	case catalog.ModeSearch:
		return func(ctx context.Context, page int) (*catalog.Listing, error) {
			return src.Search(ctx, page, c.Query)
		}
	default:
		return src.ListPopular
	}
}

// compactDetails drops the entries whose fetch failed.
func compactDetails(details []*catalog.Detail) []*catalog.Detail {
	out := details[:0]
	for _, d := range details {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}
