// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package pyver parses and orders Python runtime versions of the form MAJOR.MINOR.
package pyver

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"

	"github.com/pkg/errors"
)

type Version struct {
	Major int
	Minor int
}

var versionRE = regexp.MustCompile(`^(?P<Major>0|[1-9]\d*)\.(?P<Minor>0|[1-9]\d*)$`)

func New(s string) (Version, error) {
	matches := versionRE.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, errors.Errorf("invalid python version %q", s)
	}
	major, _ := strconv.Atoi(matches[versionRE.SubexpIndex("Major")])
	minor, _ := strconv.Atoi(matches[versionRE.SubexpIndex("Minor")])
	return Version{major, minor}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(s string) Version {
	v, err := New(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare orders versions numerically, so 3.10 sorts after 3.9.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return cmp.Compare(v.Major, o.Major)
	}
	return cmp.Compare(v.Minor, o.Minor)
}

// Cmp compares two version strings. Invalid versions sort first.
func Cmp(a, b string) int {
	av, err := New(a)
	if err != nil {
		return -1
	}
	bv, err := New(b)
	if err != nil {
		return 1
	}
	return av.Compare(bv)
}

// Sort orders version strings in place.
func Sort(versions []string) {
	slices.SortFunc(versions, Cmp)
}

// Within reports whether v falls in the inclusive range [since, until].
// A zero bound is open.
func (v Version) Within(since, until Version) bool {
	if since != (Version{}) && v.Compare(since) < 0 {
		return false
	}
	if until != (Version{}) && v.Compare(until) > 0 {
		return false
	}
	return true
}
