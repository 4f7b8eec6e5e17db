package catalog

// Chapter is one sub-unit (chapter or episode) of a catalog entry.
// A chapter's order is its position in the sequence it was extracted into.
type Chapter struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`

	// ReleaseTimestamp is in epoch milliseconds. Zero means the release date
	// is unknown, not 1970-01-01.
	ReleaseTimestamp int64 `json:"releaseTimestamp"`
}

// Page is one image in a chapter's reading flow.
type Page struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}
