// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package namecheck decides whether a proposed project name may be registered.
//
// A name is checked in four stages that run strictly in order, and the first
// failing stage rejects the name:
//  1. the project name grammar,
//  2. the standard library reserved names,
//  3. collisions with every registered project under PEP 426 and
//     ultranormalized equivalence,
//  4. typo-squatting of a popular project.
package namecheck

import (
	"context"
	"fmt"
	"io"

	"github.com/google/pypi-namecheck/pkg/name"
	"github.com/google/pypi-namecheck/pkg/typosquat"
)

// ProjectLister lists every registered project.
type ProjectLister interface {
	ProjectNames(context.Context) ([]string, error)
}

// ReservedSet reports whether a canonical name is reserved.
type ReservedSet interface {
	Contains(canonical string) bool
}

// TypoMatcher flags canonical names that look like a typo of a corpus entry.
type TypoMatcher interface {
	Match(canonical string, corpus *typosquat.Corpus) (typosquat.Match, bool)
}

// Stage is a point in the check pipeline.
type Stage int

const (
	Start Stage = iota
	SyntaxChecked
	StdlibChecked
	CollisionChecked
	TypoChecked
	Accepted
)

func (s Stage) String() string {
	switch s {
	case Start:
		return "start"
	case SyntaxChecked:
		return "syntax-checked"
	case StdlibChecked:
		return "stdlib-checked"
	case CollisionChecked:
		return "collision-checked"
	case TypoChecked:
		return "typo-checked"
	case Accepted:
		return "accepted"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Result summarizes a check.
type Result struct {
	// Stage is the last stage the name passed.
	Stage Stage
	// Canonical is the canonical form of the name, once computed.
	Canonical string
	// Listed is the number of registered projects compared against.
	Listed int
}

// Checker runs the pipeline. Lister and Matcher are required, as is either
// Reserved or LoadReserved and either Corpus or LoadCorpus.
type Checker struct {
	Lister   ProjectLister
	Reserved ReservedSet
	Matcher  TypoMatcher
	Corpus   *typosquat.Corpus
	// LoadReserved and LoadCorpus are called only once their stage is
	// reached, so a name failing an earlier stage never triggers them.
	LoadReserved func() (ReservedSet, error)
	LoadCorpus   func() (*typosquat.Corpus, error)
	// Out receives progress messages. Nil discards them.
	Out io.Writer
}

func (c *Checker) reserved() (ReservedSet, error) {
	if c.Reserved != nil || c.LoadReserved == nil {
		return c.Reserved, nil
	}
	r, err := c.LoadReserved()
	if err != nil {
		return nil, &FetchError{Source: "standard library catalog", Err: err}
	}
	return r, nil
}

func (c *Checker) corpus() (*typosquat.Corpus, error) {
	if c.Corpus != nil || c.LoadCorpus == nil {
		return c.Corpus, nil
	}
	corpus, err := c.LoadCorpus()
	if err != nil {
		return nil, &FetchError{Source: "popular project corpus", Err: err}
	}
	return corpus, nil
}

func (c *Checker) printf(format string, args ...any) {
	if c.Out != nil {
		fmt.Fprintf(c.Out, format, args...)
	}
}

// Check runs every stage against name. The returned error is nil when the
// name is accepted, one of the rejection errors of this package when it is
// not, or a *FetchError when the project listing or a lazily loaded input
// could not be retrieved.
func (c *Checker) Check(ctx context.Context, proposed string) (Result, error) {
	var res Result

	c.printf("Checking %s against the project name grammar...\n", proposed)
	if !name.ValidSyntax(proposed) {
		return res, &SyntaxError{Name: proposed}
	}
	c.printf("Ok.\n")
	res.Stage = SyntaxChecked

	res.Canonical = name.Canonicalize(proposed)
	c.printf("Checking %s against the standard library...\n", res.Canonical)
	reserved, err := c.reserved()
	if err != nil {
		return res, err
	}
	if reserved.Contains(res.Canonical) {
		return res, &ReservedNameError{Name: proposed, Canonical: res.Canonical}
	}
	c.printf("Ok.\n")
	res.Stage = StdlibChecked

	c.printf("Checking for similar project names...\n")
	projects, err := c.Lister.ProjectNames(ctx)
	if err != nil {
		return res, &FetchError{Source: "project listing", Err: err}
	}
	res.Listed = len(projects)
	if err := checkCollisions(proposed, projects); err != nil {
		return res, err
	}
	c.printf("Ok.\n")
	res.Stage = CollisionChecked

	c.printf("Checking for typos against popular projects...\n")
	corpus, err := c.corpus()
	if err != nil {
		return res, err
	}
	if m, ok := c.Matcher.Match(res.Canonical, corpus); ok {
		return res, &TypoSquatError{Check: m.Check, Candidate: m.Candidate, Target: m.Target}
	}
	c.printf("Ok.\n")
	res.Stage = TypoChecked

	c.printf("Congratulations! Your project name %s survived.\n", proposed)
	res.Stage = Accepted
	return res, nil
}

// checkCollisions compares proposed against every listed project in order and
// reports the first project equal to it under either normalization.
func checkCollisions(proposed string, projects []string) error {
	pep426 := name.PEP426(proposed)
	ultra := name.Ultranormalize(proposed)
	for _, existing := range projects {
		if name.PEP426(existing) == pep426 {
			return &CollisionError{Kind: PEP426, Name: proposed, Existing: existing, Form: pep426}
		}
		if name.Ultranormalize(existing) == ultra {
			return &CollisionError{Kind: Ultranormalized, Name: proposed, Existing: existing, Form: ultra}
		}
	}
	return nil
}
