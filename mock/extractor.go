package mock

import "github.com/fwojciec/catalog"

var _ catalog.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of catalog.Extractor.
type Extractor struct {
	ExtractListingFn   func(html, pageURL string) (*catalog.Listing, error)
	ExtractDetailFn    func(html, pageURL string) (*catalog.Detail, error)
	ExtractChaptersFn  func(html, pageURL string) ([]*catalog.Chapter, error)
	ExtractPagesFn     func(html, pageURL string) ([]*catalog.Page, error)
	SupportsImageURLFn func() bool
	ExtractImageURLFn  func(html, pageURL string) (string, error)
}

func (e *Extractor) ExtractListing(html, pageURL string) (*catalog.Listing, error) {
	return e.ExtractListingFn(html, pageURL)
}

func (e *Extractor) ExtractDetail(html, pageURL string) (*catalog.Detail, error) {
	return e.ExtractDetailFn(html, pageURL)
}

func (e *Extractor) ExtractChapters(html, pageURL string) ([]*catalog.Chapter, error) {
	return e.ExtractChaptersFn(html, pageURL)
}

func (e *Extractor) ExtractPages(html, pageURL string) ([]*catalog.Page, error) {
	return e.ExtractPagesFn(html, pageURL)
}

func (e *Extractor) SupportsImageURL() bool {
	return e.SupportsImageURLFn()
}

func (e *Extractor) ExtractImageURL(html, pageURL string) (string, error) {
	return e.ExtractImageURLFn(html, pageURL)
}
