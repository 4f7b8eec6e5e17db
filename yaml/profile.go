// Package yaml reads and writes site profiles as YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/catalog"
	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk form of a profile. A file naming a base starts
// from that profile and overrides only the fields it sets.
type profileFile struct {
	Base            string `yaml:"base,omitempty"`
	catalog.Profile `yaml:",inline"`
}

// LoadProfile reads a profile from the file at path. Base profiles are
// resolved through registry, which may be nil when the file names no base.
func LoadProfile(path string, registry catalog.ProfileRegistry) (*catalog.Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, catalog.Errorf(catalog.ENOTFOUND, "profile file %s not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	p, err := parse(data, registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile reads a profile from r.
func ParseProfile(r io.Reader, registry catalog.ProfileRegistry) (*catalog.Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return parse(data, registry)
}

func parse(data []byte, registry catalog.ProfileRegistry) (*catalog.Profile, error) {
	var header struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, catalog.Errorf(catalog.EINVALID, "failed to parse profile: %v", err)
	}

	var pf profileFile
	if header.Base != "" {
		if registry == nil {
			return nil, catalog.Errorf(catalog.EINVALID, "base profile %q cannot be resolved", header.Base)
		}
		base, err := registry.Get(header.Base)
		if err != nil {
			return nil, err
		}
		pf.Profile = *base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return nil, catalog.Errorf(catalog.EINVALID, "failed to parse profile: %v", err)
	}

	if err := pf.Profile.Validate(); err != nil {
		return nil, err
	}
	return &pf.Profile, nil
}

// WriteProfile writes p as YAML.
func WriteProfile(w io.Writer, p *catalog.Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(profileFile{Profile: *p}); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}
