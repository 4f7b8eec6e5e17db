package catalog

import (
	"net/url"
	"strings"
)

// SlugPrefix marks a search query that names an entry directly.
const SlugPrefix = "slug:"

// DeepLinkQuery converts a shared entry URL into a search query that
// resolves to that entry. The slug is the last non-empty path segment.
func DeepLinkQuery(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid deep link %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "deep link must be an http(s) URL: %q", rawURL)
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return SlugPrefix + segments[i], nil
		}
	}
	return "", Errorf(EINVALID, "deep link has no path: %q", rawURL)
}

// ParseSlugQuery returns the slug named by a deep-link query.
func ParseSlugQuery(query string) (slug string, ok bool) {
	query = strings.TrimSpace(query)
	if !strings.HasPrefix(query, SlugPrefix) {
		return "", false
	}
	slug = strings.TrimSpace(strings.TrimPrefix(query, SlugPrefix))
	return slug, slug != ""
}
