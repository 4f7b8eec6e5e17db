package crawl

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/catalog"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch until it succeeds, waiting delays[i]
// before retry i+1. The logger, if provided, is called for each retry. Errors that cannot succeed on retry (invalid URL, missing page, canceled
// context) are returned immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch catalog.ErrorCode(err) {
	case catalog.EINVALID, catalog.ENOTFOUND, catalog.ENOTSUPPORTED:
		return false
	}
	return true
}

var _ catalog.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches of the wrapped Fetcher with backoff.
type RetryFetcher struct {
	fetcher catalog.Fetcher
	delays  []time.Duration
	logger  LogFunc
}

// NewRetryFetcher wraps fetcher. With no delays, DefaultRetryDelays is used.
func NewRetryFetcher(fetcher catalog.Fetcher, logger LogFunc, delays ...time.Duration) *RetryFetcher {
	if len(delays) == 0 {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{fetcher: fetcher, delays: delays, logger: logger}
}

// Fetch fetches url, retrying transient failures.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, f.fetcher.Fetch, f.logger, f.delays)
}

// Close closes the wrapped Fetcher.
func (f *RetryFetcher) Close() error {
	return f.fetcher.Close()
}
