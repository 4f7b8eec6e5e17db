package catalog_test

import (
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/stretchr/testify/assert"
)

func testSelectors() catalog.Selectors {
	return catalog.Selectors{
		ListingCard:      "div.page-item-detail",
		ListingCardLink:  "h3 a",
		ListingCardTitle: catalog.TitleAttribute("title"),
		ListingCardThumb: "img",
		ListingNextPage:  "div.pagination a.next",
		ChapterRow:       "li.wp-manga-chapter",
		ChapterLink:      "a",
		ChapterDate:      ".chapter-release-date",
		PageImages:       "div.reading-content img",
	}
}

func TestSelectors_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete selectors", func(t *testing.T) {
		t.Parallel()

		s := testSelectors()
		assert.NoError(t, s.Validate())
	})

	t.Run("accepts text title mode", func(t *testing.T) {
		t.Parallel()

		s := testSelectors()
		s.ListingCardTitle = catalog.TitleText()
		assert.NoError(t, s.Validate())
	})

	t.Run("rejects missing anchors", func(t *testing.T) {
		t.Parallel()

		clears := []func(*catalog.Selectors){
			func(s *catalog.Selectors) { s.ListingCard = "" },
			func(s *catalog.Selectors) { s.ListingCardLink = " " },
			func(s *catalog.Selectors) { s.ChapterRow = "" },
			func(s *catalog.Selectors) { s.ChapterLink = "" },
			func(s *catalog.Selectors) { s.PageImages = "" },
		}
		for _, fn := range clears {
			s := testSelectors()
			fn(&s)
			assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(s.Validate()))
		}
	})

	t.Run("rejects attribute mode without attribute", func(t *testing.T) {
		t.Parallel()

		s := testSelectors()
		s.ListingCardTitle = catalog.TitleAttribute("")
		assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(s.Validate()))
	})

	t.Run("rejects unknown title mode", func(t *testing.T) {
		t.Parallel()

		s := testSelectors()
		s.ListingCardTitle = catalog.TitleRule{Mode: "alt"}
		assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(s.Validate()))
	})
}

func TestSelectors_SourceAttrs(t *testing.T) {
	t.Parallel()

	s := testSelectors()
	assert.Equal(t, []string{"src"}, s.SourceAttrs())

	s.ImageAttrs = []string{"data-src", "src"}
	assert.Equal(t, []string{"data-src", "src"}, s.SourceAttrs())
}

func TestSelectors_Each(t *testing.T) {
	t.Parallel()

	s := testSelectors()
	got := map[string]string{}
	s.Each(func(name, selector string) { got[name] = selector })

	assert.Len(t, got, 14)
	assert.Equal(t, "div.page-item-detail", got["listing_card"])
	assert.Equal(t, "", got["detail_title"])
}

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	valid := func() catalog.Profile {
		return catalog.Profile{
			Name:      "test",
			BaseURL:   testBaseURL,
			Selectors: testSelectors(),
			Templates: testTemplates(),
		}
	}

	p := valid()
	assert.NoError(t, p.Validate())

	p = valid()
	p.Name = ""
	assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(p.Validate()))

	p = valid()
	p.BaseURL = "/relative"
	assert.Equal(t, catalog.EINVALID, catalog.ErrorCode(p.Validate()))

	p = valid()
	p.Selectors.PageImages = ""
	assert.Contains(t, catalog.ErrorMessage(p.Validate()), "page_images")

	p = valid()
	p.Templates.Search.Path = ""
	assert.Contains(t, catalog.ErrorMessage(p.Validate()), "search")
}
