package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/catalog"
)

var _ catalog.Source = (*Source)(nil)

// Source answers catalog queries for one site profile. It builds request URLs
// from the profile's templates, fetches them through the Fetcher and hands the
// HTML to the Extractor.
type Source struct {
	profile   catalog.Profile
	fetcher   catalog.Fetcher
	extractor catalog.Extractor
}

// NewSource creates a Source for profile.
func NewSource(profile catalog.Profile, fetcher catalog.Fetcher, extractor catalog.Extractor) *Source {
	return &Source{
		profile:   profile,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Profile returns the site profile the source was built with.
func (s *Source) Profile() catalog.Profile {
	return s.profile
}

// ListPopular returns one page of the most-viewed listing.
func (s *Source) ListPopular(ctx context.Context, page int) (*catalog.Listing, error) {
	return s.list(ctx, catalog.ListingRequest{Mode: catalog.ModePopular, Page: page})
}

// ListLatest returns one page of the recently-updated listing.
func (s *Source) ListLatest(ctx context.Context, page int) (*catalog.Listing, error) {
	return s.list(ctx, catalog.ListingRequest{Mode: catalog.ModeLatest, Page: page})
}

// Search returns one page of search results. A "slug:" query fetches the
// named entry's detail page and returns it as the only result.
func (s *Source) Search(ctx context.Context, page int, query string) (*catalog.Listing, error) {
	if slug, ok := catalog.ParseSlugQuery(query); ok {
		return s.lookup(ctx, page, slug)
	}
	return s.list(ctx, catalog.ListingRequest{Mode: catalog.ModeSearch, Page: page, Query: query})
}

func (s *Source) list(ctx context.Context, r catalog.ListingRequest) (*catalog.Listing, error) {
	req, err := catalog.BuildRequest(s.profile.BaseURL, s.profile.Templates, r)
	if err != nil {
		return nil, err
	}
	pageURL := req.String()

	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s listing page %d: %w", r.Mode, r.Page, err)
	}
	return s.extractor.ExtractListing(html, pageURL)
}

func (s *Source) lookup(ctx context.Context, page int, slug string) (*catalog.Listing, error) {
	if page < 1 {
		return nil, catalog.Errorf(catalog.EINVALID, "page must be at least 1, got %d", page)
	}
	id, err := catalog.DetailIdentifier(s.profile.Templates, slug)
	if err != nil {
		return nil, err
	}
	detail, err := s.FetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return &catalog.Listing{Entries: []*catalog.EntryStub{detail.Stub()}}, nil
}

// FetchDetail returns the metadata of the entry with the given identifier.
// An absolute URL is accepted and reduced to its path.
func (s *Source) FetchDetail(ctx context.Context, id string) (*catalog.Detail, error) {
	pageURL, html, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := s.extractor.ExtractDetail(html, pageURL)
	if err != nil {
		return nil, err
	}
	detail.Identifier = catalog.StripDomain(pageURL)
	return detail, nil
}

// ListChapters returns the chapters listed on the entry's detail page.
func (s *Source) ListChapters(ctx context.Context, id string) ([]*catalog.Chapter, error) {
	pageURL, html, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractChapters(html, pageURL)
}

// ListPages returns the pages of a chapter.
func (s *Source) ListPages(ctx context.Context, chapterID string) ([]*catalog.Page, error) {
	pageURL, html, err := s.fetch(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractPages(html, pageURL)
}

// ImageURL resolves a page's image URL. Extractors that do not support the
// lookup get ENOTSUPPORTED without a request being made.
func (s *Source) ImageURL(ctx context.Context, pageURL string) (string, error) {
	if !s.extractor.SupportsImageURL() {
		return "", catalog.Errorf(catalog.ENOTSUPPORTED, "image URL lookup is not supported: page lists carry image URLs")
	}
	pageURL, html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return s.extractor.ExtractImageURL(html, pageURL)
}

// fetch resolves an identifier against the profile's base URL and fetches it.
func (s *Source) fetch(ctx context.Context, id string) (pageURL, html string, err error) {
	if strings.TrimSpace(id) == "" {
		return "", "", catalog.Errorf(catalog.EINVALID, "identifier required")
	}
	pageURL = catalog.AbsoluteURL(s.profile.BaseURL, strings.TrimSpace(id))
	html, err = s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", id, err)
	}
	return pageURL, html, nil
}
