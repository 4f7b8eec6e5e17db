package goquery

import "github.com/fwojciec/catalog"

// LikeMangaBaseURL is the canonical LikeManga host.
const LikeMangaBaseURL = "https://likemanga.org"

// Built-in profile names.
const (
	ProfileLikeManga      = "likemanga"
	ProfileLikeMangaPaged = "likemanga-paged"
	ProfileLikeMangaText  = "likemanga-text"
)

// DefaultProfile is used when no profile is named.
const DefaultProfile = ProfileLikeManga

// likeMangaSelectors is the Madara theme markup LikeManga serves.
func likeMangaSelectors() catalog.Selectors {
	return catalog.Selectors{
		ListingCard:      "div.page-item-detail",
		ListingCardLink:  "a",
		ListingCardTitle: catalog.TitleAttribute("title"),
		ListingCardThumb: "img",
		ListingNextPage:  "div.pagination a.next",

		DetailTitle:       ".post-title h1",
		DetailThumb:       ".summary_image img",
		DetailDescription: ".summary__content",
		DetailGenres:      ".genres-content a",
		DetailAuthor:      ".author-content a",
		DetailStatus:      ".post-status .summary-content",

		ChapterRow:  "li.wp-manga-chapter",
		ChapterLink: "a",
		ChapterDate: ".chapter-release-date",

		PageImages: "div.reading-content img",
	}
}

func orderedTemplate(path, order, pageParam string) catalog.Template {
	return catalog.Template{Path: path, Params: []catalog.Param{
		{Name: "m_orderby", Value: order},
		{Name: pageParam, Value: catalog.PagePlaceholder},
	}}
}

func likeMangaTemplates(pageParam string) catalog.Templates {
	return catalog.Templates{
		Browse: catalog.Template{Path: "/manga/", Params: []catalog.Param{
			{Name: pageParam, Value: catalog.PagePlaceholder},
		}},
		Popular: orderedTemplate("/manga/", "views", pageParam),
		Latest:  orderedTemplate("/manga/", "latest", pageParam),
		Search: catalog.Template{Path: "/", Params: []catalog.Param{
			{Name: "s", Value: catalog.QueryPlaceholder},
			{Name: "post_type", Value: "wp-manga"},
		}},
		Detail: "/manga/{slug}/",
	}
}

// LikeMangaProfile returns the current LikeManga layout: titles from the
// card link's title attribute and a "page" query parameter. Search results
// are not paginated.
func LikeMangaProfile() catalog.Profile {
	return catalog.Profile{
		Name:      ProfileLikeManga,
		BaseURL:   LikeMangaBaseURL,
		Selectors: likeMangaSelectors(),
		Templates: likeMangaTemplates("page"),
	}
}

// LikeMangaPagedProfile returns the layout using WordPress "paged"
// pagination, where search results carry a /page/N/ path segment.
func LikeMangaPagedProfile() catalog.Profile {
	p := catalog.Profile{
		Name:      ProfileLikeMangaPaged,
		BaseURL:   LikeMangaBaseURL,
		Selectors: likeMangaSelectors(),
		Templates: likeMangaTemplates("paged"),
	}
	p.Templates.Search.Path = "/page/{page}/"
	p.Selectors.ImageAttrs = []string{"data-src", "src"}
	return p
}

// LikeMangaTextProfile returns the layout where the card link carries no
// title attribute and the title is the link text.
func LikeMangaTextProfile() catalog.Profile {
	p := LikeMangaProfile()
	p.Name = ProfileLikeMangaText
	p.Selectors.ListingCardLink = ".post-title a"
	p.Selectors.ListingCardTitle = catalog.TitleText()
	p.Selectors.ImageAttrs = []string{"data-src", "data-lazy-src", "src"}
	return p
}

// BuiltinProfiles returns every built-in profile.
func BuiltinProfiles() []catalog.Profile {
	return []catalog.Profile{
		LikeMangaProfile(),
		LikeMangaPagedProfile(),
		LikeMangaTextProfile(),
	}
}
