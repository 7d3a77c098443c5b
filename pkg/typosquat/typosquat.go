// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package typosquat flags project names that are likely typos of a popular
// project, mirroring the checks the registry runs on new project names.
package typosquat

import (
	"strings"
)

// Match describes a flagged name.
type Match struct {
	// Check is the name of the check that fired.
	Check string
	// Candidate is the name that was checked.
	Candidate string
	// Target is the corpus entry the candidate is a likely typo of.
	Target string
}

// Names of the checks, in the order they run.
const (
	RepeatedCharacters = "repeated_characters"
	OmittedCharacters  = "omitted_characters"
	SwappedCharacters  = "swapped_characters"
	SwappedWords       = "swapped_words"
	CommonTypos        = "common_typos"
)

// MinLength is the shortest name that is checked. Shorter names are too
// close to too many projects for the checks to be meaningful.
const MinLength = 4

// maxWords bounds the word permutations tried by the swapped_words check.
const maxWords = 5

// omittable characters may be re-inserted by the omitted_characters check.
const omittable = "abcdefghijklmnopqrstuvwxyz0123456789-"

// Keyboard neighbours and look-alikes for each character.
var typos = map[byte]string{
	'1': "2qil",
	'2': "13qw",
	'3': "24we",
	'4': "35er",
	'5': "46rt",
	'6': "57ty",
	'7': "68yu",
	'8': "79ui",
	'9': "80io",
	'0': "9op",
	'q': "12wa",
	'w': "23qeas",
	'e': "34wrsd",
	'r': "45etdf",
	't': "56ryfg",
	'y': "67tugh",
	'u': "78yihj",
	'i': "89uojkl1",
	'o': "90ipkl0",
	'p': "0ol",
	'a': "qwsz",
	's': "weadzx",
	'd': "erfcxs",
	'f': "rtgvcd",
	'g': "tyhbvf",
	'h': "yujnbg",
	'j': "uikmnh",
	'k': "iolmj",
	'l': "opk1i",
	'z': "asx",
	'x': "zsdc",
	'c': "xdfv",
	'v': "cfgb",
	'b': "vghn",
	'n': "bhjm",
	'm': "njk",
}

// Snyper runs the typo-squatting checks against a corpus.
type Snyper struct{}

type check struct {
	name string
	fn   func(string, *Corpus) (string, bool)
}

var checks = []check{
	{RepeatedCharacters, repeatedCharacters},
	{OmittedCharacters, omittedCharacters},
	{SwappedCharacters, swappedCharacters},
	{SwappedWords, swappedWords},
	{CommonTypos, commonTypos},
}

// Match returns the first check that maps the canonical name onto a corpus
// entry. Names that are themselves in the corpus are never flagged.
func (Snyper) Match(canonical string, corpus *Corpus) (Match, bool) {
	if len(canonical) < MinLength || corpus.Contains(canonical) {
		return Match{}, false
	}
	for _, c := range checks {
		if target, ok := c.fn(canonical, corpus); ok {
			return Match{Check: c.name, Candidate: canonical, Target: target}, true
		}
	}
	return Match{}, false
}

// "reqquests" -> "requests"
func repeatedCharacters(s string, corpus *Corpus) (string, bool) {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != s[i+1] {
			continue
		}
		if v := s[:i] + s[i+1:]; corpus.Contains(v) {
			return v, true
		}
	}
	return "", false
}

// "reqests" -> "requests"
func omittedCharacters(s string, corpus *Corpus) (string, bool) {
	for i := 0; i <= len(s); i++ {
		for j := 0; j < len(omittable); j++ {
			if v := s[:i] + omittable[j:j+1] + s[i:]; corpus.Contains(v) {
				return v, true
			}
		}
	}
	return "", false
}

// "reuqests" -> "requests"
func swappedCharacters(s string, corpus *Corpus) (string, bool) {
	b := []byte(s)
	for i := 0; i+1 < len(b); i++ {
		if b[i] == b[i+1] {
			continue
		}
		b[i], b[i+1] = b[i+1], b[i]
		v := string(b)
		b[i], b[i+1] = b[i+1], b[i]
		if corpus.Contains(v) {
			return v, true
		}
	}
	return "", false
}

// "dateutil-python" -> "python-dateutil"
func swappedWords(s string, corpus *Corpus) (string, bool) {
	words := strings.Split(s, "-")
	if len(words) < 2 || len(words) > maxWords {
		return "", false
	}
	var found string
	permute(words, 0, func(p []string) bool {
		v := strings.Join(p, "-")
		if v != s && corpus.Contains(v) {
			found = v
			return false
		}
		return true
	})
	return found, found != ""
}

// permute visits the permutations of words[k:] in place. It stops once
// visit returns false.
func permute(words []string, k int, visit func([]string) bool) bool {
	if k == len(words) {
		return visit(words)
	}
	for i := k; i < len(words); i++ {
		words[k], words[i] = words[i], words[k]
		ok := permute(words, k+1, visit)
		words[k], words[i] = words[i], words[k]
		if !ok {
			return false
		}
	}
	return true
}

// "requesys" -> "requests"
func commonTypos(s string, corpus *Corpus) (string, bool) {
	for i := 0; i < len(s); i++ {
		for _, r := range []byte(typos[s[i]]) {
			if v := s[:i] + string(r) + s[i+1:]; corpus.Contains(v) {
				return v, true
			}
		}
	}
	return "", false
}
