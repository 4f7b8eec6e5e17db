package goquery_test

import (
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<!DOCTYPE html>
<html>
<body>
<div class="page-listing-item">
	<div class="page-item-detail">
		<div class="item-thumb">
			<a href="https://likemanga.org/manga/solo-leveling/" title="Solo Leveling">
				<img src="/wp-content/uploads/solo.jpg">
			</a>
		</div>
		<div class="post-title"><h3><a href="https://likemanga.org/manga/solo-leveling/">Solo  Leveling</a></h3></div>
	</div>
	<div class="page-item-detail">
		<div class="item-thumb">
			<a href="/manga/tower-of-god/" title="Tower of God">
				<img src="//cdn.likemanga.org/tog.jpg">
			</a>
		</div>
		<div class="post-title"><h3><a href="/manga/tower-of-god/">Tower of God</a></h3></div>
	</div>
	<div class="page-item-detail">
		<span>Advertisement</span>
	</div>
</div>
<div class="pagination"><a class="next" href="/manga/?page=2">Next</a></div>
</body>
</html>`

const pageURL = "https://likemanga.org/manga/?m_orderby=views&page=1"

func likeMangaExtractor() *goquery.Extractor {
	return goquery.NewExtractor(goquery.LikeMangaProfile().Selectors)
}

func TestExtractor_ExtractListing(t *testing.T) {
	t.Parallel()

	t.Run("extracts cards and next page", func(t *testing.T) {
		t.Parallel()

		listing, err := likeMangaExtractor().ExtractListing(listingHTML, pageURL)

		require.NoError(t, err)
		require.Len(t, listing.Entries, 2)
		assert.True(t, listing.HasMore)
		assert.Equal(t, 1, listing.Skipped)

		assert.Equal(t, &catalog.EntryStub{
			Identifier: "/manga/solo-leveling/",
			Title:      "Solo Leveling",
			CoverURL:   "https://likemanga.org/wp-content/uploads/solo.jpg",
		}, listing.Entries[0])
		assert.Equal(t, &catalog.EntryStub{
			Identifier: "/manga/tower-of-god/",
			Title:      "Tower of God",
			CoverURL:   "https://cdn.likemanga.org/tog.jpg",
		}, listing.Entries[1])
	})

	t.Run("no next page link means no more pages", func(t *testing.T) {
		t.Parallel()

		html := `<div class="page-item-detail"><a href="/manga/x/" title="X"></a></div>`

		listing, err := likeMangaExtractor().ExtractListing(html, pageURL)

		require.NoError(t, err)
		assert.Len(t, listing.Entries, 1)
		assert.False(t, listing.HasMore)
	})

	t.Run("page without cards is empty", func(t *testing.T) {
		t.Parallel()

		listing, err := likeMangaExtractor().ExtractListing("<html><body><p>No results</p></body></html>", pageURL)

		require.NoError(t, err)
		assert.Empty(t, listing.Entries)
		assert.NotNil(t, listing.Entries)
		assert.False(t, listing.HasMore)
		assert.Zero(t, listing.Skipped)
	})

	t.Run("text title mode reads link text", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.LikeMangaTextProfile().Selectors)

		listing, err := e.ExtractListing(listingHTML, pageURL)

		require.NoError(t, err)
		require.Len(t, listing.Entries, 2)
		assert.Equal(t, "Solo Leveling", listing.Entries[0].Title)
		assert.Equal(t, "/manga/solo-leveling/", listing.Entries[0].Identifier)
	})

	t.Run("attribute and text modes read different sources", func(t *testing.T) {
		t.Parallel()

		html := `<div class="page-item-detail"><a href="/manga/x/" title="Attribute Title">Visible Text</a></div>`
		attr := likeMangaExtractor()
		text := goquery.NewExtractor(func() catalog.Selectors {
			s := goquery.LikeMangaProfile().Selectors
			s.ListingCardTitle = catalog.TitleText()
			return s
		}())

		a, err := attr.ExtractListing(html, pageURL)
		require.NoError(t, err)
		b, err := text.ExtractListing(html, pageURL)
		require.NoError(t, err)

		assert.Equal(t, "Attribute Title", a.Entries[0].Title)
		assert.Equal(t, "Visible Text", b.Entries[0].Title)
	})

	t.Run("card that is itself a link", func(t *testing.T) {
		t.Parallel()

		s := goquery.LikeMangaProfile().Selectors
		s.ListingCard = "a.card"
		s.ListingCardLink = "a"

		html := `<a class="card" href="/manga/x/?ref=home#top" title="X"><img src="/x.jpg"></a>`

		listing, err := goquery.NewExtractor(s).ExtractListing(html, pageURL)

		require.NoError(t, err)
		require.Len(t, listing.Entries, 1)
		assert.Equal(t, "/manga/x/?ref=home#top", listing.Entries[0].Identifier)
		assert.Equal(t, "https://likemanga.org/x.jpg", listing.Entries[0].CoverURL)
	})

	t.Run("card with unusable link is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<div class="page-item-detail"><a href="javascript:void(0)" title="X"></a></div>
<div class="page-item-detail"><a title="Y"></a></div>`

		listing, err := likeMangaExtractor().ExtractListing(html, pageURL)

		require.NoError(t, err)
		assert.Empty(t, listing.Entries)
		assert.Equal(t, 2, listing.Skipped)
	})

	t.Run("missing thumbnail leaves cover empty", func(t *testing.T) {
		t.Parallel()

		html := `<div class="page-item-detail"><a href="/manga/x/" title="X"></a></div>`

		listing, err := likeMangaExtractor().ExtractListing(html, pageURL)

		require.NoError(t, err)
		assert.Empty(t, listing.Entries[0].CoverURL)
	})

	t.Run("invalid page URL is an error", func(t *testing.T) {
		t.Parallel()

		_, err := likeMangaExtractor().ExtractListing(listingHTML, "not a url")

		assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(err))
	})

	t.Run("identifiers are relative and covers absolute", func(t *testing.T) {
		t.Parallel()

		listing, err := likeMangaExtractor().ExtractListing(listingHTML, pageURL)
		require.NoError(t, err)

		for _, e := range listing.Entries {
			assert.True(t, len(e.Identifier) > 0 && e.Identifier[0] == '/', e.Identifier)
			assert.NotEmpty(t, catalog.ResolveURL("", e.CoverURL))
		}
	})
}

const detailHTML = `<!DOCTYPE html>
<html>
<body>
<div class="post-title"><h1> Solo   Leveling </h1></div>
<div class="summary_image"><a href="#"><img src="/wp-content/uploads/solo.jpg"></a></div>
<div class="summary__content"><p>E-class hunter Jinwoo Sung
is the weakest of them all.</p></div>
<div class="author-content"><a href="/author/chugong/">Chugong</a><a href="/author/other/">Other</a></div>
<div class="genres-content"><a href="/g/action/">Action</a>, <a href="/g/fantasy/">Fantasy</a></div>
<div class="post-status">
	<div class="post-content_item"><div class="summary-content"> OnGoing </div></div>
</div>
</body>
</html>`

func TestExtractor_ExtractDetail(t *testing.T) {
	t.Parallel()

	t.Run("extracts every field", func(t *testing.T) {
		t.Parallel()

		detail, err := likeMangaExtractor().ExtractDetail(detailHTML, "https://likemanga.org/manga/solo-leveling/")

		require.NoError(t, err)
		assert.Empty(t, detail.Identifier)
		assert.Equal(t, "Solo Leveling", detail.Title)
		assert.Equal(t, "https://likemanga.org/wp-content/uploads/solo.jpg", detail.CoverURL)
		assert.Equal(t, "E-class hunter Jinwoo Sung is the weakest of them all.", detail.Description)
		assert.Equal(t, "Chugong", detail.Author)
		assert.Equal(t, []string{"Action", "Fantasy"}, detail.Genres)
		assert.Equal(t, "Action, Fantasy", detail.Genre())
		assert.Equal(t, catalog.StatusOngoing, detail.Status)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		t.Parallel()

		detail, err := likeMangaExtractor().ExtractDetail("<html><body></body></html>", "https://likemanga.org/manga/x/")

		require.NoError(t, err)
		assert.Empty(t, detail.Title)
		assert.Empty(t, detail.CoverURL)
		assert.Empty(t, detail.Description)
		assert.Empty(t, detail.Author)
		assert.Empty(t, detail.Genres)
		assert.Empty(t, detail.Genre())
		assert.Equal(t, catalog.StatusUnknown, detail.Status)
	})

	t.Run("keeps genre links with blank text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="genres-content"><a href="/g/action/">Action</a><a href="/g/empty/"> </a></div>`

		detail, err := likeMangaExtractor().ExtractDetail(html, "https://likemanga.org/manga/x/")

		require.NoError(t, err)
		assert.Equal(t, []string{"Action", ""}, detail.Genres)
		assert.Equal(t, "Action, ", detail.Genre())
	})

	t.Run("completed wins over ongoing", func(t *testing.T) {
		t.Parallel()

		html := `<div class="post-status"><div class="summary-content">Completed (was OnGoing)</div></div>`

		detail, err := likeMangaExtractor().ExtractDetail(html, "https://likemanga.org/manga/x/")

		require.NoError(t, err)
		assert.Equal(t, catalog.StatusCompleted, detail.Status)
	})
}

const chaptersHTML = `<!DOCTYPE html>
<html>
<body>
<ul class="main version-chap">
	<li class="wp-manga-chapter">
		<a href="https://likemanga.org/manga/solo-leveling/chapter-10/"> Chapter 10 </a>
		<span class="chapter-release-date"><i>March 05, 2023</i></span>
	</li>
	<li class="wp-manga-chapter">
		<a href="/manga/solo-leveling/chapter-9/">Chapter 9</a>
		<span class="chapter-release-date">  February 28, 2023 </span>
	</li>
	<li class="wp-manga-chapter">
		<span>Chapter 8.5 (locked)</span>
	</li>
	<li class="wp-manga-chapter">
		<a href="/manga/solo-leveling/chapter-8/">Chapter 8</a>
		<span class="chapter-release-date"><i>2 days ago</i></span>
	</li>
</ul>
</body>
</html>`

func TestExtractor_ExtractChapters(t *testing.T) {
	t.Parallel()

	t.Run("keeps document order and drops rows without link", func(t *testing.T) {
		t.Parallel()

		chapters, err := likeMangaExtractor().ExtractChapters(chaptersHTML, "https://likemanga.org/manga/solo-leveling/")

		require.NoError(t, err)
		require.Len(t, chapters, 3)
		assert.Equal(t, []*catalog.Chapter{
			{Identifier: "/manga/solo-leveling/chapter-10/", Name: "Chapter 10", ReleaseTimestamp: 1677974400000},
			{Identifier: "/manga/solo-leveling/chapter-9/", Name: "Chapter 9", ReleaseTimestamp: 1677542400000},
			{Identifier: "/manga/solo-leveling/chapter-8/", Name: "Chapter 8", ReleaseTimestamp: 0},
		}, chapters)
	})

	t.Run("row without date has zero timestamp", func(t *testing.T) {
		t.Parallel()

		html := `<li class="wp-manga-chapter"><a href="/c/1/">Chapter 1</a></li>`

		chapters, err := likeMangaExtractor().ExtractChapters(html, "https://likemanga.org/")

		require.NoError(t, err)
		require.Len(t, chapters, 1)
		assert.Zero(t, chapters[0].ReleaseTimestamp)
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		t.Parallel()

		html := `<li class="wp-manga-chapter"><a href="/c/1/">Chapter 1</a></li>
<li class="wp-manga-chapter"><a href="/c/1/">Chapter 1</a></li>`

		chapters, err := likeMangaExtractor().ExtractChapters(html, "https://likemanga.org/")

		require.NoError(t, err)
		assert.Len(t, chapters, 2)
	})

	t.Run("no rows yields empty list", func(t *testing.T) {
		t.Parallel()

		chapters, err := likeMangaExtractor().ExtractChapters("<p>none</p>", "https://likemanga.org/")

		require.NoError(t, err)
		assert.NotNil(t, chapters)
		assert.Empty(t, chapters)
	})
}

const pagesHTML = `<!DOCTYPE html>
<html>
<body>
<div class="reading-content">
	<div class="page-break"><img src="https://cdn.likemanga.org/1.jpg"></div>
	<div class="page-break"><img alt="missing"></div>
	<div class="page-break"><img src="/uploads/3.jpg"></div>
</div>
<img src="/ads/banner.jpg">
</body>
</html>`

func TestExtractor_ExtractPages(t *testing.T) {
	t.Parallel()

	t.Run("indexes pages contiguously", func(t *testing.T) {
		t.Parallel()

		pages, err := likeMangaExtractor().ExtractPages(pagesHTML, "https://likemanga.org/manga/x/chapter-1/")

		require.NoError(t, err)
		assert.Equal(t, []*catalog.Page{
			{Index: 0, URL: "https://cdn.likemanga.org/1.jpg"},
			{Index: 1, URL: ""},
			{Index: 2, URL: "https://likemanga.org/uploads/3.jpg"},
		}, pages)
	})

	t.Run("lazy-loaded sources take precedence", func(t *testing.T) {
		t.Parallel()

		html := `<div class="reading-content"><img src="/placeholder.gif" data-src=" https://cdn.likemanga.org/1.jpg "></div>`

		pages, err := goquery.NewExtractor(goquery.LikeMangaPagedProfile().Selectors).ExtractPages(html, "https://likemanga.org/c/")

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://cdn.likemanga.org/1.jpg", pages[0].URL)
	})

	t.Run("no images yields empty list", func(t *testing.T) {
		t.Parallel()

		pages, err := likeMangaExtractor().ExtractPages("<p>none</p>", "https://likemanga.org/c/")

		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}

func TestExtractor_ExtractImageURL(t *testing.T) {
	t.Parallel()

	extractor := likeMangaExtractor()

	_, err := extractor.ExtractImageURL(pagesHTML, "https://likemanga.org/c/")

	assert.False(t, extractor.SupportsImageURL())
	assert.True(t, catalog.IsNotSupported(err))
}
