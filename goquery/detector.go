package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catalog"
)

// Ensure Detector implements catalog.LayoutDetector at compile time.
var _ catalog.LayoutDetector = (*Detector)(nil)

// Detector identifies which built-in likemanga layout a listing page uses.
// It checks the card markup for where titles live and the pagination link for
// the page parameter style.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes a listing page and returns the matching built-in profile
// name. Returns "" if the page has no listing cards.
func (d *Detector) Detect(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	cards := doc.Find("div.page-item-detail")
	if cards.Length() == 0 {
		return ""
	}

	// Cards whose links carry no title attribute keep the title in the
	// link text under .post-title.
	if cards.Find("a[title]").Length() == 0 && cards.Find(".post-title a").Length() > 0 {
		return ProfileLikeMangaText
	}

	if d.usesPagedParam(doc) {
		return ProfileLikeMangaPaged
	}

	return ProfileLikeManga
}

// usesPagedParam reports whether the pagination links use the "paged" query
// parameter or a /page/N/ path segment.
func (d *Detector) usesPagedParam(doc *goquery.Document) bool {
	paged := false
	doc.Find("div.pagination a, .wp-pagenavi a, a.next").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.Contains(href, "paged=") || strings.Contains(href, "/page/") {
			paged = true
			return false
		}
		return true
	})
	return paged
}
