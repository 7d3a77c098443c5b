// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package stdlib computes the set of project names reserved because they
// shadow a standard library module or one of its parent namespaces.
package stdlib

import (
	"iter"
	"strings"

	"github.com/google/pypi-namecheck/internal/cache"
	"github.com/google/pypi-namecheck/pkg/name"
	"github.com/pkg/errors"
)

// Namespaces yields every dotted prefix of every module, so "email.mime.text"
// yields "email", "email.mime" and "email.mime.text". The sequence may be
// iterated any number of times.
func Namespaces(modules []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, module := range modules {
			for i := 0; i < len(module); i++ {
				if module[i] == '.' && !yield(module[:i]) {
					return
				}
			}
			if !yield(module) {
				return
			}
		}
	}
}

// Reserved is an immutable set of canonical names.
type Reserved struct {
	names map[string]struct{}
}

// Contains reports whether the canonical name is reserved.
func (r *Reserved) Contains(canonical string) bool {
	_, ok := r.names[canonical]
	return ok
}

// Len returns the number of reserved names.
func (r *Reserved) Len() int {
	return len(r.names)
}

// Build computes the reserved names across the given versions of the catalog.
// With no versions, every version tracked by the catalog is used.
func Build(c Catalog, versions ...string) (*Reserved, error) {
	if len(versions) == 0 {
		versions = c.Versions()
	}
	r := &Reserved{names: make(map[string]struct{})}
	for _, v := range versions {
		modules, err := c.Modules(v)
		if err != nil {
			return nil, errors.Wrapf(err, "listing modules for python %s", v)
		}
		for ns := range Namespaces(modules) {
			trimmed := strings.Trim(ns, name.Separators)
			if trimmed == "" {
				continue
			}
			r.names[name.Canonicalize(trimmed)] = struct{}{}
		}
	}
	return r, nil
}

var defaults cache.OnceCache[string, *Reserved]

// Default returns the reserved names of the embedded catalog across all of
// its versions. The set is built once per process and shared.
func Default() (*Reserved, error) {
	return defaults.GetOrBuild("embedded", func() (*Reserved, error) {
		c, err := EmbeddedCatalog()
		if err != nil {
			return nil, err
		}
		return Build(c)
	})
}
