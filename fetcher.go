package catalog

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the decoded response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
