package catalog

// Extractor turns fetched HTML into catalog records. pageURL is the URL the
// document was fetched from and is used to resolve relative links.
//
// Implementations hold no per-call state and are safe for concurrent use.
// Records missing a required anchor are skipped; only an unparseable
// document or page URL is returned as an error.
type Extractor interface {
	// ExtractListing returns the entry stubs of a listing page and whether
	// a further page exists.
	ExtractListing(html, pageURL string) (*Listing, error)

	// ExtractDetail returns the metadata of a detail page. The identifier is
	// left for the caller to set.
	ExtractDetail(html, pageURL string) (*Detail, error)

	// ExtractChapters returns chapters in document order.
	ExtractChapters(html, pageURL string) ([]*Chapter, error)

	// ExtractPages returns one page per image in document order.
	ExtractPages(html, pageURL string) ([]*Page, error)

	// SupportsImageURL reports whether ExtractImageURL applies to the site.
	// It is false for sites whose page lists already carry image URLs.
	SupportsImageURL() bool

	// ExtractImageURL resolves an image URL from a page document. Sites
	// whose page lists already carry image URLs return ENOTSUPPORTED.
	ExtractImageURL(html, pageURL string) (string, error)
}
