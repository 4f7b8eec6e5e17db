package main

import (
	"fmt"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/yaml"
)

// Run executes the profiles command.
func (c *ProfilesCmd) Run(deps *Dependencies) error {
	names := deps.Profiles.List()
	if deps.JSON {
		return writeJSON(deps.Stdout, names)
	}

	for _, name := range names {
		p, err := deps.Profiles.Get(name)
		if err != nil {
			return fail(deps, err)
		}
		marker := " "
		if name == deps.ProfileName {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, p.Name, p.BaseURL)
	}
	return nil
}

// Run executes the profile dump command. Profiles are always written as
// YAML so the output can be edited and passed back with --profile-file.
func (c *ProfileDumpCmd) Run(deps *Dependencies) error {
	name := c.Name
	if name == "" {
		name = deps.ProfileName
	}
	p, err := deps.Profiles.Get(name)
	if err != nil {
		return fail(deps, err)
	}
	return yaml.WriteProfile(deps.Stdout, p)
}

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	query, err := catalog.DeepLinkQuery(c.URL)
	if err != nil {
		return fail(deps, err)
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, map[string]string{"query": query})
	}
	fmt.Fprintln(deps.Stdout, query)
	return nil
}

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fail(deps, err)
	}

	name := deps.Detector.Detect(html)
	if name == "" {
		fmt.Fprintln(deps.Stderr, "Hint: write a profile file and load it with --profile-file")
		return fail(deps, catalog.Errorf(catalog.ENOTFOUND, "no built-in layout matches %s", c.URL))
	}
	if deps.JSON {
		return writeJSON(deps.Stdout, map[string]string{"profile": name})
	}
	fmt.Fprintln(deps.Stdout, name)
	return nil
}
