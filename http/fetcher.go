// Package http provides an HTTP-based implementation of catalog.Fetcher for
// listing sites that serve server-rendered HTML.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/fwojciec/catalog"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/publicsuffix"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Ensure Fetcher implements catalog.Fetcher at compile time.
var _ catalog.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests. It does not
// execute JavaScript.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	referer    string
	limiter    catalog.DomainLimiter
	transport  http.RoundTripper
	cloudflare bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithReferer sets the Referer header sent with every request. Listing sites
// typically expect the site's own base URL.
func WithReferer(referer string) Option {
	return func(f *Fetcher) {
		f.referer = referer
	}
}

// WithLimiter makes every request wait on the limiter for the request host.
func WithLimiter(l catalog.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithTransport sets the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithCloudflareBypass wraps the transport with browser-like TLS settings and
// headers. It does not solve JavaScript challenges.
func WithCloudflareBypass() Option {
	return func(f *Fetcher) {
		f.cloudflare = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	if f.cloudflare {
		transport = cloudflarebp.AddCloudFlareByPass(transport)
	}

	// cookiejar.New never returns an error.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
		Jar:       jar,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL and decodes it to UTF-8
// using the response's declared or sniffed charset.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", catalog.Errorf(catalog.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", catalog.Errorf(catalog.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	if len(body) == 0 {
		return "", nil
	}

	enc, _, _ := charset.DetermineEncoding(body, resp.Header.Get("Content-Type"))
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", rawURL, err)
	}

	return string(decoded), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
