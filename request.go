package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Mode is a listing mode.
type Mode int

// Listing modes.
const (
	ModePopular Mode = iota
	ModeLatest
	ModeSearch
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePopular:
		return "popular"
	case ModeLatest:
		return "latest"
	case ModeSearch:
		return "search"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "popular":
		return ModePopular, nil
	case "latest":
		return ModeLatest, nil
	case "search":
		return ModeSearch, nil
	}
	return 0, Errorf(EINVALID, "unknown listing mode %q", name)
}

// ListingRequest asks for one page of a listing. Page numbers start at 1.
type ListingRequest struct {
	Mode  Mode
	Page  int
	Query string
}

// Placeholders recognised in template paths and parameter values.
const (
	PagePlaceholder  = "{page}"
	QueryPlaceholder = "{query}"
	SlugPlaceholder  = "{slug}"
)

// Param is a query parameter template.
type Param struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Template is the URL template of one listing mode. Path and parameter
// values may contain {page} and {query}.
type Template struct {
	Path   string  `yaml:"path"`
	Params []Param `yaml:"params,omitempty"`
}

// Templates holds the URL template of every listing mode. Browse is the
// plain unfiltered listing and serves searches with blank query text.
type Templates struct {
	Browse  Template `yaml:"browse"`
	Popular Template `yaml:"popular"`
	Latest  Template `yaml:"latest"`
	Search  Template `yaml:"search"`

	// Detail maps a slug to an entry identifier, e.g. "/manga/{slug}/".
	Detail string `yaml:"detail,omitempty"`
}

// Validate returns an error if a template is missing.
func (t *Templates) Validate() error {
	rows := []struct {
		name string
		tpl  Template
	}{
		{"browse", t.Browse},
		{"popular", t.Popular},
		{"latest", t.Latest},
		{"search", t.Search},
	}
	for _, r := range rows {
		if strings.TrimSpace(r.tpl.Path) == "" {
			return Errorf(EINVALID, "%s template path required", r.name)
		}
	}
	if !t.Search.uses(QueryPlaceholder) {
		return Errorf(EINVALID, "search template must reference %s", QueryPlaceholder)
	}
	if t.Detail != "" && !strings.Contains(t.Detail, SlugPlaceholder) {
		return Errorf(EINVALID, "detail template must reference %s", SlugPlaceholder)
	}
	return nil
}

// uses reports whether the placeholder appears anywhere in the template.
func (t Template) uses(placeholder string) bool {
	if strings.Contains(t.Path, placeholder) {
		return true
	}
	for _, p := range t.Params {
		if strings.Contains(p.Value, placeholder) {
			return true
		}
	}
	return false
}

// Request describes an outbound listing request.
type Request struct {
	// URL is the absolute URL without query string.
	URL string

	// Params are the rendered query parameters in template order.
	Params []Param
}

// Query returns the parameters as url.Values.
func (r *Request) Query() url.Values {
	v := make(url.Values, len(r.Params))
	for _, p := range r.Params {
		v.Add(p.Name, p.Value)
	}
	return v
}

// String returns the full URL, keeping parameters in template order.
func (r *Request) String() string {
	if len(r.Params) == 0 {
		return r.URL
	}
	parts := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value))
	}
	return r.URL + "?" + strings.Join(parts, "&")
}

// BuildRequest renders the template selected by req.Mode against baseURL.
// Search query text is trimmed; blank query text falls back to the Browse
// template for the requested page. Parameters that render empty are omitted.
func BuildRequest(baseURL string, t Templates, req ListingRequest) (*Request, error) {
	if req.Page < 1 {
		return nil, Errorf(EINVALID, "page must be at least 1, got %d", req.Page)
	}
	if ResolveURL(baseURL, "/") == "" {
		return nil, Errorf(EINVALID, "absolute base URL required, got %q", baseURL)
	}

	query := ""
	var tpl Template
	switch req.Mode {
	case ModePopular:
		tpl = t.Popular
	case ModeLatest:
		tpl = t.Latest
	case ModeSearch:
		query = strings.TrimSpace(req.Query)
		tpl = t.Search
		if query == "" {
			tpl = t.Browse
		}
	default:
		return nil, Errorf(EINVALID, "unknown listing mode %s", req.Mode)
	}

	page := strconv.Itoa(req.Page)
	path := strings.NewReplacer(
		PagePlaceholder, page,
		QueryPlaceholder, url.PathEscape(query),
	).Replace(tpl.Path)
	values := strings.NewReplacer(
		PagePlaceholder, page,
		QueryPlaceholder, query,
	)

	r := &Request{URL: joinPath(baseURL, path)}
	for _, p := range tpl.Params {
		v := values.Replace(p.Value)
		if v == "" {
			continue
		}
		r.Params = append(r.Params, Param{Name: p.Name, Value: v})
	}
	return r, nil
}

// DetailIdentifier renders the Detail template for slug.
func DetailIdentifier(t Templates, slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", Errorf(EINVALID, "slug required")
	}
	if t.Detail == "" {
		return "", Errorf(ENOTSUPPORTED, "no detail template configured")
	}
	return strings.ReplaceAll(t.Detail, SlugPlaceholder, url.PathEscape(slug)), nil
}

// AbsoluteURL attaches an identifier to baseURL.
func AbsoluteURL(baseURL, identifier string) string {
	if u := ResolveURL(baseURL, identifier); u != "" {
		return u
	}
	return joinPath(baseURL, identifier)
}

func joinPath(baseURL, path string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/" + strings.TrimLeft(path, "/")
}
