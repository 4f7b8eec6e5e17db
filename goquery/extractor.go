package goquery

import (
	"strings"

	"github.com/fwojciec/catalog"
)

var _ catalog.Extractor = (*Extractor)(nil)

// Extractor extracts catalog records using a selector configuration.
type Extractor struct {
	selectors catalog.Selectors
}

// NewExtractor creates an Extractor for the given selectors.
func NewExtractor(selectors catalog.Selectors) *Extractor {
	return &Extractor{selectors: selectors}
}

// Selectors returns the extractor's selector configuration.
func (e *Extractor) Selectors() catalog.Selectors {
	return e.selectors
}

// ExtractListing returns the entry stubs of a listing page. Cards without a
// usable link are skipped and counted in Listing.Skipped.
func (e *Extractor) ExtractListing(html, pageURL string) (*catalog.Listing, error) {
	doc, err := Parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	listing := &catalog.Listing{Entries: []*catalog.EntryStub{}}
	for _, card := range doc.SelectAll(e.selectors.ListingCard) {
		entry, ok := e.entry(card)
		if !ok {
			listing.Skipped++
			continue
		}
		listing.Entries = append(listing.Entries, entry)
	}

	_, listing.HasMore = doc.SelectFirst(e.selectors.ListingNextPage)
	return listing, nil
}

func (e *Extractor) entry(card *Node) (*catalog.EntryStub, bool) {
	link, ok := card.SelectFirst(e.selectors.ListingCardLink)
	if !ok {
		return nil, false
	}
	href := link.AbsoluteURL("href")
	if href == "" {
		return nil, false
	}

	entry := &catalog.EntryStub{
		Identifier: catalog.StripDomain(href),
		Title:      e.title(link),
	}
	if thumb, ok := card.SelectFirst(e.selectors.ListingCardThumb); ok {
		entry.CoverURL = thumb.FirstURL(e.selectors.SourceAttrs())
	}
	return entry, true
}

func (e *Extractor) title(link *Node) string {
	rule := e.selectors.ListingCardTitle
	if rule.Mode == catalog.TitleModeText {
		return link.Text()
	}
	v, _ := link.Attr(rule.Attr)
	return strings.Join(strings.Fields(v), " ")
}

// ExtractDetail returns the metadata of a detail page. Every field is
// optional; missing nodes leave the zero value.
func (e *Extractor) ExtractDetail(html, pageURL string) (*catalog.Detail, error) {
	doc, err := Parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	s := e.selectors
	detail := &catalog.Detail{
		Title:       firstText(doc, s.DetailTitle),
		Description: firstText(doc, s.DetailDescription),
		Author:      firstText(doc, s.DetailAuthor),
		Genres:      []string{},
	}
	if thumb, ok := doc.SelectFirst(s.DetailThumb); ok {
		detail.CoverURL = thumb.FirstURL(s.SourceAttrs())
	}
	for _, g := range doc.SelectAll(s.DetailGenres) {
		detail.Genres = append(detail.Genres, g.Text())
	}
	if status, ok := doc.SelectFirst(s.DetailStatus); ok {
		detail.Status = catalog.ClassifyStatus(status.Text())
	}
	return detail, nil
}

// ExtractChapters returns chapters in document order. Rows without a usable
// link are dropped.
func (e *Extractor) ExtractChapters(html, pageURL string) ([]*catalog.Chapter, error) {
	doc, err := Parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	chapters := []*catalog.Chapter{}
	for _, row := range doc.SelectAll(e.selectors.ChapterRow) {
		link, ok := row.SelectFirst(e.selectors.ChapterLink)
		if !ok {
			continue
		}
		href := link.AbsoluteURL("href")
		if href == "" {
			continue
		}

		ch := &catalog.Chapter{
			Identifier: catalog.StripDomain(href),
			Name:       link.Text(),
		}
		if date, ok := row.SelectFirst(e.selectors.ChapterDate); ok {
			ch.ReleaseTimestamp = catalog.ParseReleaseDate(date.Text())
		}
		chapters = append(chapters, ch)
	}
	return chapters, nil
}

// ExtractPages returns one page per matched image. An image without a usable
// source keeps its index with an empty URL.
func (e *Extractor) ExtractPages(html, pageURL string) ([]*catalog.Page, error) {
	doc, err := Parse(html, pageURL)
	if err != nil {
		return nil, err
	}

	images := doc.SelectAll(e.selectors.PageImages)
	pages := make([]*catalog.Page, 0, len(images))
	for i, img := range images {
		pages = append(pages, &catalog.Page{
			Index: i,
			URL:   img.FirstURL(e.selectors.SourceAttrs()),
		})
	}
	return pages, nil
}

// SupportsImageURL returns false: page lists already carry image URLs.
func (e *Extractor) SupportsImageURL() bool {
	return false
}

// ExtractImageURL is not supported: page lists already carry image URLs.
func (e *Extractor) ExtractImageURL(html, pageURL string) (string, error) {
	return "", catalog.Errorf(catalog.ENOTSUPPORTED, "image URL lookup is not supported: page lists carry image URLs")
}

func firstText(doc *Document, selector string) string {
	if n, ok := doc.SelectFirst(selector); ok {
		return n.Text()
	}
	return ""
}
