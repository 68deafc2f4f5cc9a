package netio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest lists the Pajek network files and sibling attribute files one
// batch simulate/estimate invocation should load, one entry per chain.
// Grounded on chaos-utils' config.Config: a plain yaml-tagged struct
// unmarshalled wholesale, rather than a hand-rolled line parser, since
// the shape here (a flat list of named file paths) has no ordering or
// option-duplication rules worth a bespoke grammar the way ergmconf's
// effect specification does.
type Manifest struct {
	Networks []NetworkEntry `yaml:"networks"`
}

// NetworkEntry names one network's Pajek file plus its optional attribute
// and overlay sidecar files, keyed by the attribute name ergmconf's effect
// specs reference via AttrIdx.
type NetworkEntry struct {
	Name        string            `yaml:"name"`
	NetworkPath string            `yaml:"network"`
	Binary      map[string]string `yaml:"binary,omitempty"`
	Categorical map[string]string `yaml:"categorical,omitempty"`
	Continuous  map[string]string `yaml:"continuous,omitempty"`
	Sets        map[string]string `yaml:"sets,omitempty"`
	ZonesPath   string            `yaml:"zones,omitempty"`
	TermsPath   string            `yaml:"terms,omitempty"`
}

// ReadManifest parses a YAML batch manifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrIO(err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, ErrMalformed(fmt.Sprintf("manifest: %v", err))
	}
	for _, entry := range m.Networks {
		if entry.NetworkPath == "" {
			return nil, ErrMalformed(fmt.Sprintf("manifest entry %q: network path required", entry.Name))
		}
	}
	return &m, nil
}
