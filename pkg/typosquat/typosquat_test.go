// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package typosquat

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnyperMatch(t *testing.T) {
	corpus := NewCorpus(slices.Values([]string{"requests", "python-dateutil", "Django", "numpy", "six", "typing_extensions"}))
	for _, tc := range []struct {
		name      string
		candidate string
		want      Match
		wantOK    bool
	}{
		{
			name:      "repeated characters",
			candidate: "reqquests",
			want:      Match{RepeatedCharacters, "reqquests", "requests"},
			wantOK:    true,
		},
		{
			name:      "omitted characters",
			candidate: "reqests",
			want:      Match{OmittedCharacters, "reqests", "requests"},
			wantOK:    true,
		},
		{
			name:      "omitted separator",
			candidate: "typingextensions",
			want:      Match{OmittedCharacters, "typingextensions", "typing-extensions"},
			wantOK:    true,
		},
		{
			name:      "swapped characters",
			candidate: "reuqests",
			want:      Match{SwappedCharacters, "reuqests", "requests"},
			wantOK:    true,
		},
		{
			name:      "swapped words",
			candidate: "dateutil-python",
			want:      Match{SwappedWords, "dateutil-python", "python-dateutil"},
			wantOK:    true,
		},
		{
			name:      "common typos",
			candidate: "requesys",
			want:      Match{CommonTypos, "requesys", "requests"},
			wantOK:    true,
		},
		{
			name:      "digit look-alike",
			candidate: "djang0",
			want:      Match{CommonTypos, "djang0", "django"},
			wantOK:    true,
		},
		{
			name:      "exact corpus entry",
			candidate: "requests",
		},
		{
			name:      "too short",
			candidate: "sx",
		},
		{
			name:      "unrelated",
			candidate: "brand-new-unique-name-42",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Snyper{}.Match(tc.candidate, corpus)
			if ok != tc.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v (got %+v)", tc.candidate, ok, tc.wantOK, got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Match(%q) mismatch (-want +got):\n%s", tc.candidate, diff)
			}
		})
	}
}

func TestSnyperEmptyCorpus(t *testing.T) {
	if got, ok := (Snyper{}).Match("reqquests", NewCorpus(slices.Values([]string(nil)))); ok {
		t.Errorf("Match() against empty corpus = %+v, want no match", got)
	}
}

func TestSwappedWordsBoundsPermutations(t *testing.T) {
	corpus := NewCorpus(slices.Values([]string{"f-e-d-c-b-a"}))
	if _, ok := swappedWords("a-b-c-d-e-f", corpus); ok {
		t.Errorf("swappedWords() permuted more than %d words", maxWords)
	}
	corpus = NewCorpus(slices.Values([]string{"e-d-c-b-a"}))
	if got, ok := swappedWords("a-b-c-d-e", corpus); !ok || got != "e-d-c-b-a" {
		t.Errorf("swappedWords() = (%q, %v), want (e-d-c-b-a, true)", got, ok)
	}
}

func TestPermuteVisitsAll(t *testing.T) {
	seen := map[string]bool{}
	permute([]string{"a", "b", "c"}, 0, func(p []string) bool {
		seen[p[0]+p[1]+p[2]] = true
		return true
	})
	if len(seen) != 6 {
		t.Errorf("permute() visited %d permutations, want 6", len(seen))
	}
}
