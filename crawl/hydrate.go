package crawl

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/catalog"
	"golang.org/x/sync/errgroup"
)

// DefaultHydrateConcurrency is the number of detail fetches in flight when
// none is configured. The transport's rate limiter still spaces requests
// to the same host.
const DefaultHydrateConcurrency = 4

// Hydrate fetches the detail record of every stub. The returned slice is
// parallel to stubs; entries whose fetch failed are nil and their errors are
// joined into the returned error. Cancelling ctx stops outstanding fetches.
func Hydrate(ctx context.Context, src catalog.Source, stubs []*catalog.EntryStub, concurrency int) ([]*catalog.Detail, error) {
	if concurrency <= 0 {
		concurrency = DefaultHydrateConcurrency
	}

	details := make([]*catalog.Detail, len(stubs))
	errs := make([]error, len(stubs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, stub := range stubs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := src.FetchDetail(gctx, stub.Identifier)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				errs[i] = fmt.Errorf("%s: %w", stub.Identifier, err)
				return nil
			}
			details[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return details, err
	}
	return details, errors.Join(errs...)
}
