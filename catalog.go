// Package catalog extracts structured catalog records from the HTML pages of
// content-listing sites. Listing pages become entry stubs, detail pages become
// metadata records, chapter lists and reading pages become ordered sequences.
// Extraction is driven by a declarative selector configuration so a site's
// evolving markup is handled by swapping data, not code.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package catalog
