package mock

import "github.com/fwojciec/catalog"

var _ catalog.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of catalog.ProfileRegistry.
type ProfileRegistry struct {
	GetFn  func(name string) (*catalog.Profile, error)
	ListFn func() []string
}

func (r *ProfileRegistry) Get(name string) (*catalog.Profile, error) {
	return r.GetFn(name)
}

func (r *ProfileRegistry) List() []string {
	return r.ListFn()
}
