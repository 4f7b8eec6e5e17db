package main

import (
	"fmt"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
)

// Run executes the detail command.
func (c *DetailCmd) Run(deps *Dependencies) error {
	detail, err := deps.Source.FetchDetail(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, detail)
	}
	writeDetail(deps.Stdout, detail)
	return nil
}

// Run executes the chapters command.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Source.ListChapters(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, chapters)
	}

	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters found.")
		return nil
	}
	for _, ch := range chapters {
		fmt.Fprintf(deps.Stdout, "%-10s  %s  %s\n",
			crawl.FormatReleaseDate(ch.ReleaseTimestamp), ch.Name, ch.Identifier)
	}
	return nil
}

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Source.ListPages(deps.Ctx, c.ChapterID)
	if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, pages)
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found.")
		return nil
	}
	for _, p := range pages {
		url := p.URL
		if url == "" {
			url = "(missing)"
		}
		fmt.Fprintf(deps.Stdout, "%3d  %s\n", p.Index, url)
	}
	return nil
}

// Run executes the image command.
func (c *ImageCmd) Run(deps *Dependencies) error {
	imageURL, err := deps.Source.ImageURL(deps.Ctx, c.PageURL)
	if catalog.IsNotSupported(err) {
		fmt.Fprintln(deps.Stderr, "Hint: this site lists image URLs directly; use the pages command")
		return fail(deps, err)
	} else if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, map[string]string{"imageUrl": imageURL})
	}
	fmt.Fprintln(deps.Stdout, imageURL)
	return nil
}
