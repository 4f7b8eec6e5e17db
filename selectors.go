package catalog

import "strings"

// TitleMode selects where a listing card's title is read from.
type TitleMode string

// Title extraction modes.
const (
	TitleModeAttribute TitleMode = "attribute"
	TitleModeText      TitleMode = "text"
)

// TitleRule describes how a listing card's title is extracted from its link.
type TitleRule struct {
	Mode TitleMode `yaml:"mode" json:"mode"`

	// Attr names the link attribute holding the title in attribute mode.
	Attr string `yaml:"attr,omitempty" json:"attr,omitempty"`
}

// TitleAttribute returns a rule reading the title from the named attribute.
func TitleAttribute(name string) TitleRule {
	return TitleRule{Mode: TitleModeAttribute, Attr: name}
}

// TitleText returns a rule reading the title from the link's visible text.
func TitleText() TitleRule {
	return TitleRule{Mode: TitleModeText}
}

// Selectors is the declarative selector configuration of a site. Every value
// is a CSS selector; an empty selector matches nothing.
type Selectors struct {
	ListingCard      string    `yaml:"listing_card"`
	ListingCardLink  string    `yaml:"listing_card_link"`
	ListingCardTitle TitleRule `yaml:"listing_card_title"`
	ListingCardThumb string    `yaml:"listing_card_thumb"`
	ListingNextPage  string    `yaml:"listing_next_page"`

	DetailTitle       string `yaml:"detail_title"`
	DetailThumb       string `yaml:"detail_thumb"`
	DetailDescription string `yaml:"detail_description"`
	DetailGenres      string `yaml:"detail_genres"`
	DetailAuthor      string `yaml:"detail_author"`
	DetailStatus      string `yaml:"detail_status"`

	ChapterRow  string `yaml:"chapter_row"`
	ChapterLink string `yaml:"chapter_link"`
	ChapterDate string `yaml:"chapter_date"`

	PageImages string `yaml:"page_images"`

	// ImageAttrs lists the attributes tried, in order, for an image's
	// source. Lazy-loading themes keep the real URL in data-src.
	ImageAttrs []string `yaml:"image_attrs,omitempty"`
}

// DefaultImageAttrs is used when Selectors.ImageAttrs is empty.
var DefaultImageAttrs = []string{"src"}

// SourceAttrs returns the image source attributes to try, in order.
func (s *Selectors) SourceAttrs() []string {
	if len(s.ImageAttrs) == 0 {
		return DefaultImageAttrs
	}
	return s.ImageAttrs
}

// Validate returns an error if a record anchor selector is missing or the
// title rule is incomplete.
func (s *Selectors) Validate() error {
	required := []struct {
		name, value string
	}{
		{"listing_card", s.ListingCard},
		{"listing_card_link", s.ListingCardLink},
		{"chapter_row", s.ChapterRow},
		{"chapter_link", s.ChapterLink},
		{"page_images", s.PageImages},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Errorf(EINVALID, "selector %s required", r.name)
		}
	}

	switch s.ListingCardTitle.Mode {
	case TitleModeAttribute:
		if strings.TrimSpace(s.ListingCardTitle.Attr) == "" {
			return Errorf(EINVALID, "title attribute name required in attribute mode")
		}
	case TitleModeText:
	default:
		return Errorf(EINVALID, "unknown title mode %q", s.ListingCardTitle.Mode)
	}
	return nil
}

// Each calls fn with the configuration name and value of every selector.
func (s *Selectors) Each(fn func(name, selector string)) {
	fn("listing_card", s.ListingCard)
	fn("listing_card_link", s.ListingCardLink)
	fn("listing_card_thumb", s.ListingCardThumb)
	fn("listing_next_page", s.ListingNextPage)
	fn("detail_title", s.DetailTitle)
	fn("detail_thumb", s.DetailThumb)
	fn("detail_description", s.DetailDescription)
	fn("detail_genres", s.DetailGenres)
	fn("detail_author", s.DetailAuthor)
	fn("detail_status", s.DetailStatus)
	fn("chapter_row", s.ChapterRow)
	fn("chapter_link", s.ChapterLink)
	fn("chapter_date", s.ChapterDate)
	fn("page_images", s.PageImages)
}

// Profile is a versioned site configuration: where the site lives, how its
// markup is queried and how its listing URLs are built.
type Profile struct {
	Name      string    `yaml:"name"`
	BaseURL   string    `yaml:"base_url"`
	Selectors Selectors `yaml:"selectors"`
	Templates Templates `yaml:"templates"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if ResolveURL(p.BaseURL, "/") == "" {
		return Errorf(EINVALID, "profile %s: absolute base URL required", p.Name)
	}
	if err := p.Selectors.Validate(); err != nil {
		return Errorf(EINVALID, "profile %s: %s", p.Name, ErrorMessage(err))
	}
	if err := p.Templates.Validate(); err != nil {
		return Errorf(EINVALID, "profile %s: %s", p.Name, ErrorMessage(err))
	}
	return nil
}

// ProfileRegistry resolves site profiles by name.
type ProfileRegistry interface {
	// Get returns the named profile.
	// Returns ENOTFOUND if no profile is registered under the name.
	Get(name string) (*Profile, error)

	// List returns the registered profile names.
	List() []string
}

// LayoutDetector identifies the profile whose layout matches a listing page.
type LayoutDetector interface {
	// Detect returns the matching profile name, or "" when no known layout
	// matches.
	Detect(html string) string
}
