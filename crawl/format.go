package crawl

import (
	"time"

	"github.com/fwojciec/catalog"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatReleaseDate formats an epoch-millisecond release timestamp as a UTC
// date. Zero is rendered as "-".
func FormatReleaseDate(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.DateOnly)
}

// FormatGenres renders a detail's genres for display.
func FormatGenres(d *catalog.Detail) string {
	if g := d.Genre(); g != "" {
		return g
	}
	return "-"
}
