// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package stdlib

import (
	"bytes"
	_ "embed"
	"io"
	"slices"

	"github.com/google/pypi-namecheck/internal/pyver"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Catalog lists the standard library modules of each tracked runtime version.
type Catalog interface {
	// Versions returns the tracked runtime versions, oldest first.
	Versions() []string
	// Modules returns the dotted module names shipped by version.
	Modules(version string) ([]string, error)
}

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogDoc struct {
	Versions []string      `yaml:"versions"`
	Groups   []catalogSpan `yaml:"groups"`
}

type catalogSpan struct {
	Since   string   `yaml:"since"`
	Until   string   `yaml:"until"`
	Modules []string `yaml:"modules"`
}

type span struct {
	since, until pyver.Version
	modules      []string
}

// YAMLCatalog is a Catalog described by a YAML document of version spans.
type YAMLCatalog struct {
	versions []string
	tracked  map[pyver.Version]bool
	spans    []span
}

var _ Catalog = &YAMLCatalog{}

// LoadCatalog decodes a YAML catalog document.
func LoadCatalog(r io.Reader) (*YAMLCatalog, error) {
	var doc catalogDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding catalog")
	}
	if len(doc.Versions) == 0 {
		return nil, errors.New("catalog tracks no versions")
	}
	c := &YAMLCatalog{tracked: make(map[pyver.Version]bool)}
	for _, v := range doc.Versions {
		pv, err := pyver.New(v)
		if err != nil {
			return nil, errors.Wrap(err, "parsing tracked version")
		}
		c.tracked[pv] = true
		c.versions = append(c.versions, pv.String())
	}
	pyver.Sort(c.versions)
	c.versions = slices.Compact(c.versions)
	for i, g := range doc.Groups {
		var s span
		var err error
		if g.Since != "" {
			if s.since, err = pyver.New(g.Since); err != nil {
				return nil, errors.Wrapf(err, "group %d", i)
			}
		}
		if g.Until != "" {
			if s.until, err = pyver.New(g.Until); err != nil {
				return nil, errors.Wrapf(err, "group %d", i)
			}
		}
		s.modules = g.Modules
		c.spans = append(c.spans, s)
	}
	return c, nil
}

// EmbeddedCatalog returns the catalog compiled into the binary.
func EmbeddedCatalog() (*YAMLCatalog, error) {
	return LoadCatalog(bytes.NewReader(embeddedCatalog))
}

// Versions returns the tracked runtime versions, oldest first.
func (c *YAMLCatalog) Versions() []string {
	return slices.Clone(c.versions)
}

// Modules returns the modules shipped by the given tracked version.
func (c *YAMLCatalog) Modules(version string) ([]string, error) {
	v, err := pyver.New(version)
	if err != nil {
		return nil, err
	}
	if !c.tracked[v] {
		return nil, errors.Errorf("untracked python version %s", version)
	}
	var modules []string
	for _, s := range c.spans {
		if v.Within(s.since, s.until) {
			modules = append(modules, s.modules...)
		}
	}
	return modules, nil
}
