package goquery

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/catalog"
)

// ValidateSelectors checks the required selectors are present and that every
// non-empty selector compiles.
func ValidateSelectors(s catalog.Selectors) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var err error
	s.Each(func(name, selector string) {
		if err != nil || strings.TrimSpace(selector) == "" {
			return
		}
		if _, cerr := cascadia.Compile(selector); cerr != nil {
			err = catalog.Errorf(catalog.EINVALID, "selector %s: %v", name, cerr)
		}
	})
	return err
}

// ValidateProfile validates a profile including selector syntax.
func ValidateProfile(p *catalog.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ValidateSelectors(p.Selectors); err != nil {
		return catalog.Errorf(catalog.EINVALID, "profile %s: %s", p.Name, catalog.ErrorMessage(err))
	}
	return nil
}
