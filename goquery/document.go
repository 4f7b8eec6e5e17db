package goquery

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catalog"
)

// Document is a parsed HTML page together with the URL it was fetched from.
// Selector queries on a Document and its nodes fail soft: an empty or
// invalid selector matches nothing.
type Document struct {
	doc  *goquery.Document
	base *url.URL
}

// Parse parses html fetched from pageURL.
func Parse(html, pageURL string) (*Document, error) {
	return ParseReader(strings.NewReader(html), pageURL)
}

// ParseReader parses HTML read from r. The reader must already yield UTF-8.
func ParseReader(r io.Reader, pageURL string) (*Document, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, catalog.Errorf(catalog.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, base: base}, nil
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document, pageURL string) (*Document, error) {
	if doc == nil {
		return nil, catalog.Errorf(catalog.EINVALID, "nil document")
	}
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc, base: base}, nil
}

func parsePageURL(pageURL string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return nil, catalog.Errorf(catalog.EINVALID, "invalid page URL: %v", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, catalog.Errorf(catalog.EINVALID, "page URL must be absolute: %q", pageURL)
	}
	return base, nil
}

// URL returns the URL the document was fetched from.
func (d *Document) URL() string {
	return d.base.String()
}

// SelectAll returns every node matching selector in document order.
func (d *Document) SelectAll(selector string) []*Node {
	if strings.TrimSpace(selector) == "" {
		return nil
	}
	return d.nodes(d.doc.Find(selector))
}

// SelectFirst returns the first node matching selector.
func (d *Document) SelectFirst(selector string) (*Node, bool) {
	return first(d.SelectAll(selector))
}

func (d *Document) nodes(sel *goquery.Selection) []*Node {
	nodes := make([]*Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s, doc: d})
	})
	return nodes
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
	doc *Document
}

// SelectAll returns the nodes matching selector within n, in document order.
// The node itself is a candidate, so a card that is itself a link matches "a".
func (n *Node) SelectAll(selector string) []*Node {
	if strings.TrimSpace(selector) == "" {
		return nil
	}
	matches := n.sel.Filter(selector).AddSelection(n.sel.Find(selector))
	return n.doc.nodes(matches)
}

// SelectFirst returns the first node matching selector within n.
func (n *Node) SelectFirst(selector string) (*Node, bool) {
	return first(n.SelectAll(selector))
}

// Text returns the node's text content with runs of whitespace collapsed to a
// single space and the ends trimmed.
func (n *Node) Text() string {
	return strings.Join(strings.Fields(n.sel.Text()), " ")
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// AbsoluteURL resolves the named attribute against the document URL.
// A missing, blank, non-HTTP or malformed value yields "".
func (n *Node) AbsoluteURL(attr string) string {
	v, ok := n.sel.Attr(attr)
	if !ok {
		return ""
	}
	return catalog.ResolveURL(n.doc.base.String(), v)
}

// FirstURL returns the first attribute in attrs that resolves to an
// absolute URL, or "".
func (n *Node) FirstURL(attrs []string) string {
	for _, attr := range attrs {
		if u := n.AbsoluteURL(attr); u != "" {
			return u
		}
	}
	return ""
}

func first(nodes []*Node) (*Node, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}
