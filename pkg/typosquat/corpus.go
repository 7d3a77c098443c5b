// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package typosquat

import (
	"bufio"
	_ "embed"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/google/pypi-namecheck/pkg/name"
	"github.com/pkg/errors"
)

// Corpus is a set of canonical names of popular projects.
type Corpus struct {
	names map[string]struct{}
}

// NewCorpus canonicalizes names into a Corpus.
func NewCorpus(names iter.Seq[string]) *Corpus {
	c := &Corpus{names: make(map[string]struct{})}
	for n := range names {
		c.names[name.Canonicalize(n)] = struct{}{}
	}
	return c
}

// Contains reports whether the canonical name is in the corpus.
func (c *Corpus) Contains(canonical string) bool {
	_, ok := c.names[canonical]
	return ok
}

// Len returns the number of names in the corpus.
func (c *Corpus) Len() int {
	return len(c.names)
}

// Names returns the corpus in sorted order.
func (c *Corpus) Names() []string {
	return slices.Sorted(maps.Keys(c.names))
}

//go:embed top_projects.txt
var topProjects string

// DefaultCorpus returns the built-in list of popular projects.
func DefaultCorpus() *Corpus {
	c, err := ReadCorpus(strings.NewReader(topProjects))
	if err != nil {
		panic(errors.Wrap(err, "reading embedded corpus"))
	}
	return c
}

// ReadCorpus reads one project name per line. Blank lines and lines starting
// with '#' are skipped.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	var names []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning corpus")
	}
	return NewCorpus(slices.Values(names)), nil
}

// LoadCorpus reads a corpus file from fs.
func LoadCorpus(fs billy.Filesystem, path string) (*Corpus, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening corpus")
	}
	defer f.Close()
	return ReadCorpus(f)
}
