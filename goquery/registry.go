package goquery

import (
	"sort"

	"github.com/fwojciec/catalog"
)

var _ catalog.ProfileRegistry = (*Registry)(nil)

// Registry resolves site profiles by name.
type Registry struct {
	profiles map[string]catalog.Profile
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]catalog.Profile)}
}

// NewDefaultRegistry creates a Registry holding the built-in profiles.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range BuiltinProfiles() {
		r.profiles[p.Name] = p
	}
	return r
}

// Get returns a copy of the named profile.
// Returns ENOTFOUND if no profile is registered under the name.
func (r *Registry) Get(name string) (*catalog.Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, catalog.Errorf(catalog.ENOTFOUND, "unknown profile %q", name)
	}
	return cloneProfile(p), nil
}

// Register validates a profile and adds it.
// If a profile is already registered under the name, it is replaced.
func (r *Registry) Register(p catalog.Profile) error {
	if err := ValidateProfile(&p); err != nil {
		return err
	}
	r.profiles[p.Name] = *cloneProfile(p)
	return nil
}

// List returns the registered profile names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneProfile(p catalog.Profile) *catalog.Profile {
	p.Selectors.ImageAttrs = append([]string(nil), p.Selectors.ImageAttrs...)
	for _, t := range []*catalog.Template{&p.Templates.Browse, &p.Templates.Popular, &p.Templates.Latest, &p.Templates.Search} {
		t.Params = append([]catalog.Param(nil), t.Params...)
	}
	return &p
}
