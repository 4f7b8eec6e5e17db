package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
)

// maxURLDisplayLen is the width URLs are truncated to in text output.
const maxURLDisplayLen = 80

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeEntries(w io.Writer, entries []*catalog.EntryStub) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s\n", e.Identifier, e.Title)
	}
}

func writeListing(w io.Writer, listing *catalog.Listing, page int) {
	if len(listing.Entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	writeEntries(w, listing.Entries)
	if listing.Skipped > 0 {
		fmt.Fprintf(w, "\n%d card(s) skipped\n", listing.Skipped)
	}
	if listing.HasMore {
		fmt.Fprintf(w, "\nMore results on page %d\n", page+1)
	}
}

func writeDetail(w io.Writer, d *catalog.Detail) {
	fmt.Fprintf(w, "%s\n", d.Title)
	fmt.Fprintf(w, "  ID:      %s\n", d.Identifier)
	if d.Author != "" {
		fmt.Fprintf(w, "  Author:  %s\n", d.Author)
	}
	fmt.Fprintf(w, "  Status:  %s\n", d.Status)
	if len(d.Genres) > 0 {
		fmt.Fprintf(w, "  Genres:  %s\n", crawl.FormatGenres(d))
	}
	if d.CoverURL != "" {
		fmt.Fprintf(w, "  Cover:   %s\n", crawl.TruncateURL(d.CoverURL, maxURLDisplayLen))
	}
	if d.Description != "" {
		fmt.Fprintf(w, "\n%s\n", d.Description)
	}
}

// fail prints err for the user and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
	return err
}

// errorMessage returns the message of an application error, or the full
// text of any other error.
func errorMessage(err error) string {
	if catalog.ErrorCode(err) == catalog.EINTERNAL {
		return err.Error()
	}
	return catalog.ErrorMessage(err)
}
