package catalog

import (
	"net/url"
	"strings"
	"time"
)

// ReleaseDateLayout is the date pattern chapter rows use: full English month
// name, day, comma, four-digit year. The day may be zero-padded.
const ReleaseDateLayout = "January 2, 2006"

// ClassifyStatus maps free-form status text to a Status using a
// case-insensitive substring match. "completed" is checked before "ongoing",
// so text containing both classifies as completed. Anything else, including
// empty text, is StatusUnknown.
func ClassifyStatus(text string) Status {
	s := strings.ToLower(text)
	switch {
	case strings.Contains(s, "completed"):
		return StatusCompleted
	case strings.Contains(s, "ongoing"):
		return StatusOngoing
	default:
		return StatusUnknown
	}
}

// ParseReleaseDate parses a date in ReleaseDateLayout at the start of text
// and returns epoch milliseconds. Trailing words such as a "NEW" badge are
// ignored. The site posts no timezone, so the date is read as UTC midnight.
// Text that does not start with a date returns 0.
func ParseReleaseDate(text string) int64 {
	fields := strings.Fields(text)
	if len(fields) < releaseDateFields {
		return 0
	}
	date := strings.Join(fields[:releaseDateFields], " ")
	t, err := time.ParseInLocation(ReleaseDateLayout, date, time.UTC)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// releaseDateFields is the number of words in ReleaseDateLayout.
const releaseDateFields = 3

// ResolveURL resolves ref against base and returns an absolute URL.
// Absolute refs are returned unchanged. Root-relative, path-relative and
// protocol-relative refs are resolved against base. Blank, non-HTTP
// (javascript:, data:, mailto:, tel:) and malformed refs return "".
func ResolveURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || isNonHTTPLink(ref) {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return ref
	}

	b, err := url.Parse(strings.TrimSpace(base))
	if err != nil || !b.IsAbs() {
		return ""
	}
	return b.ResolveReference(u).String()
}

// StripDomain returns rawURL without its scheme and host: the escaped path
// followed by the query and fragment when present. A URL with an empty path
// yields "/". Blank or malformed input yields "".
func StripDomain(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	var b strings.Builder
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	b.WriteString(path)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.EscapedFragment())
	}
	return b.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
