// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package namecheck

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError is returned for names outside the project name grammar.
type SyntaxError struct {
	Name string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%q is not a valid project name", e.Name)
}

// ReservedNameError is returned for names shadowing a standard library module.
type ReservedNameError struct {
	Name      string
	Canonical string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("%q is reserved by the standard library (canonical name %q)", e.Name, e.Canonical)
}

// CollisionKind identifies the normalization under which two names collide.
type CollisionKind int

const (
	PEP426 CollisionKind = iota + 1
	Ultranormalized
)

func (k CollisionKind) String() string {
	switch k {
	case PEP426:
		return "PEP426"
	case Ultranormalized:
		return "ultranormalized"
	default:
		return fmt.Sprintf("CollisionKind(%d)", int(k))
	}
}

// CollisionError is returned for names colliding with a registered project.
type CollisionError struct {
	Kind CollisionKind
	Name string
	// Existing is the registered project name, as listed.
	Existing string
	// Form is the normalized form both names share.
	Form string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s name check failed, collision with %q (normalized to %q)", e.Kind, e.Existing, e.Form)
}

// TypoSquatError is returned for names that look like a typo of a popular project.
type TypoSquatError struct {
	Check     string
	Candidate string
	Target    string
}

func (e *TypoSquatError) Error() string {
	return fmt.Sprintf("typo check failed, %q matches %q (%s)", e.Candidate, e.Target, e.Check)
}

// FetchError is returned when an input required by the check could not be
// retrieved. The name was neither accepted nor rejected.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsRejection reports whether err means the name was proven unacceptable, as
// opposed to the check failing to complete.
func IsRejection(err error) bool {
	var (
		se *SyntaxError
		re *ReservedNameError
		ce *CollisionError
		te *TypoSquatError
	)
	return errors.As(err, &se) || errors.As(err, &re) || errors.As(err, &ce) || errors.As(err, &te)
}
