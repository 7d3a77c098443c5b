// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package name implements the PyPI project name grammar and the normalized
// forms the registry uses to detect conflicting project names.
//
// Three forms are provided, each an independent equivalence relation:
//   - Canonicalize: the PEP 503 canonical name used for lookups.
//     Reference: https://packaging.python.org/en/latest/specifications/name-normalization/
//   - PEP426: runs of separators collapsed to "-" and lowercased.
//   - Ultranormalize: separators removed and digit/letter homoglyphs folded.
package name

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matches warehouse.utils.project.PROJECT_NAME_RE over ASCII only; (?i)
// would also fold U+017F and U+212A into the letter classes.
var projectNameRE = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidSyntax reports whether name matches the registry's project name grammar.
func ValidSyntax(name string) bool {
	return projectNameRE.MatchString(name)
}

var separatorRunRE = regexp.MustCompile(`[._-]+`)

// lower applies full Unicode lowercasing, including special casing and the
// final sigma rule. A Caser is stateful so one is created per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func collapse(s string) string {
	return separatorRunRE.ReplaceAllString(s, "-")
}

// Canonicalize returns the PEP 503 canonical form of a project name.
func Canonicalize(name string) string {
	return lower(collapse(name))
}

// PEP426 returns the PEP 426 normalized form of a project name.
func PEP426(name string) string {
	return lower(collapse(name))
}

// Separators are removed entirely by Ultranormalize.
const Separators = "._-"

var homoglyphs = map[rune]rune{
	'l': '1',
	'L': '1',
	'i': '1',
	'I': '1',
	'İ': '1', // Lowercases to "i̇" otherwise.
	'o': '0',
	'O': '0',
}

// Ultranormalize returns the ultranormalized form of a project name.
//
// The transform runs three passes in order: separators are deleted, then
// homoglyphs are substituted, then the result is lowercased.
func Ultranormalize(name string) string {
	deleted := strings.Map(func(r rune) rune {
		if strings.ContainsRune(Separators, r) {
			return -1
		}
		return r
	}, name)
	folded := strings.Map(func(r rune) rune {
		if sub, ok := homoglyphs[r]; ok {
			return sub
		}
		return r
	}, deleted)
	return lower(folded)
}

// Optional applies fn to an optional name. A nil name yields nil.
func Optional(fn func(string) string, name *string) *string {
	if name == nil {
		return nil
	}
	out := fn(*name)
	return &out
}
