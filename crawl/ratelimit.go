package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/catalog"
	"golang.org/x/time/rate"
)

// DefaultRequestInterval is the minimum spacing between requests to one host.
const DefaultRequestInterval = 2 * time.Second

var _ catalog.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests per host with token buckets of burst 1.
// Page images on a CDN host do not wait behind listing pages on the site.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewIntervalLimiter creates a DomainLimiter allowing one request per
// interval per domain. A non-positive interval disables limiting.
func NewIntervalLimiter(interval time.Duration) *DomainLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
