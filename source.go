package catalog

import "context"

// Source is the query interface a host application uses to browse a site.
// Identifiers are the relative paths carried by EntryStub, Detail and
// Chapter.
type Source interface {
	// ListPopular returns one page of the most-viewed listing.
	ListPopular(ctx context.Context, page int) (*Listing, error)

	// ListLatest returns one page of the recently-updated listing.
	ListLatest(ctx context.Context, page int) (*Listing, error)

	// Search returns one page of search results. A query produced by
	// DeepLinkQuery resolves directly to a single entry.
	Search(ctx context.Context, page int, query string) (*Listing, error)

	// FetchDetail returns the metadata of the entry.
	FetchDetail(ctx context.Context, id string) (*Detail, error)

	// ListChapters returns the chapters of the entry in site order.
	ListChapters(ctx context.Context, id string) ([]*Chapter, error)

	// ListPages returns the pages of a chapter.
	ListPages(ctx context.Context, chapterID string) ([]*Page, error)

	// ImageURL resolves a page's image URL. Returns ENOTSUPPORTED for sites
	// whose page lists already carry image URLs.
	ImageURL(ctx context.Context, pageURL string) (string, error)
}
