package catalog

import (
	"strings"
)

// EntryStub is a catalog entry as it appears on a listing page, pending a
// separate detail fetch.
type EntryStub struct {
	// Identifier is the entry's path on the site with the domain stripped.
	// It is the key used to fetch details later.
	Identifier string `json:"identifier"`
	Title      string `json:"title"`

	// CoverURL is absolute, or empty when the card has no usable image.
	CoverURL string `json:"coverUrl"`
}

// Detail is the full metadata record of a single catalog entry.
// Missing fields hold their zero value; Status is never absent.
type Detail struct {
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	CoverURL    string   `json:"coverUrl"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Author      string   `json:"author"`
	Status      Status   `json:"status"`
}

// Genre returns the genres joined with ", ", or "" when there are none.
func (d *Detail) Genre() string {
	return strings.Join(d.Genres, ", ")
}

// Stub returns the minimal listing form of the detail.
func (d *Detail) Stub() *EntryStub {
	return &EntryStub{
		Identifier: d.Identifier,
		Title:      d.Title,
		CoverURL:   d.CoverURL,
	}
}

// Status is the publication status of a catalog entry.
type Status int

// Publication statuses. The zero value is StatusUnknown.
const (
	StatusUnknown Status = iota
	StatusOngoing
	StatusCompleted
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name. Unrecognised names decode to
// StatusUnknown rather than failing.
func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "ongoing":
		*s = StatusOngoing
	case "completed":
		*s = StatusCompleted
	default:
		*s = StatusUnknown
	}
	return nil
}

// Listing is one page of catalog entries.
type Listing struct {
	// Entries holds the stubs in document order.
	Entries []*EntryStub `json:"entries"`

	// HasMore reports whether a "next page" link was present.
	HasMore bool `json:"hasMore"`

	// Skipped counts cards dropped for lacking a usable link.
	Skipped int `json:"-"`
}
