package main

import (
	"github.com/fwojciec/catalog"
)

// Run executes the popular command.
func (c *PopularCmd) Run(deps *Dependencies) error {
	listing, err := deps.Source.ListPopular(deps.Ctx, c.Page)
	return printListing(deps, listing, c.Page, err)
}

// Run executes the latest command.
func (c *LatestCmd) Run(deps *Dependencies) error {
	listing, err := deps.Source.ListLatest(deps.Ctx, c.Page)
	return printListing(deps, listing, c.Page, err)
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	listing, err := deps.Source.Search(deps.Ctx, c.Page, c.Query)
	return printListing(deps, listing, c.Page, err)
}

func printListing(deps *Dependencies, listing *catalog.Listing, page int, err error) error {
	if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, listing)
	}
	writeListing(deps.Stdout, listing, page)
	return nil
}
