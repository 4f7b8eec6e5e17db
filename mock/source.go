package mock

import (
	"context"

	"github.com/fwojciec/catalog"
)

var _ catalog.Source = (*Source)(nil)

// Source is a mock implementation of catalog.Source.
type Source struct {
	ListPopularFn  func(ctx context.Context, page int) (*catalog.Listing, error)
	ListLatestFn   func(ctx context.Context, page int) (*catalog.Listing, error)
	SearchFn       func(ctx context.Context, page int, query string) (*catalog.Listing, error)
	FetchDetailFn  func(ctx context.Context, id string) (*catalog.Detail, error)
	ListChaptersFn func(ctx context.Context, id string) ([]*catalog.Chapter, error)
	ListPagesFn    func(ctx context.Context, chapterID string) ([]*catalog.Page, error)
	ImageURLFn     func(ctx context.Context, pageURL string) (string, error)
}

func (s *Source) ListPopular(ctx context.Context, page int) (*catalog.Listing, error) {
	return s.ListPopularFn(ctx, page)
}

func (s *Source) ListLatest(ctx context.Context, page int) (*catalog.Listing, error) {
	return s.ListLatestFn(ctx, page)
}

func (s *Source) Search(ctx context.Context, page int, query string) (*catalog.Listing, error) {
	return s.SearchFn(ctx, page, query)
}

func (s *Source) FetchDetail(ctx context.Context, id string) (*catalog.Detail, error) {
	return s.FetchDetailFn(ctx, id)
}

func (s *Source) ListChapters(ctx context.Context, id string) ([]*catalog.Chapter, error) {
	return s.ListChaptersFn(ctx, id)
}

func (s *Source) ListPages(ctx context.Context, chapterID string) ([]*catalog.Page, error) {
	return s.ListPagesFn(ctx, chapterID)
}

func (s *Source) ImageURL(ctx context.Context, pageURL string) (string, error) {
	return s.ImageURLFn(ctx, pageURL)
}
