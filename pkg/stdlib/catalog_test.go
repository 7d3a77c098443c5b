// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package stdlib

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := EmbeddedCatalog()
	if err != nil {
		t.Fatalf("EmbeddedCatalog() error = %v", err)
	}
	versions := c.Versions()
	if versions[0] != "2.6" || versions[len(versions)-1] != "3.13" {
		t.Errorf("Versions() = %v, want 2.6 through 3.13", versions)
	}
	for _, tc := range []struct {
		version string
		present []string
		absent  []string
	}{
		{"2.6", []string{"os", "ConfigParser", "urllib2", "email.MIMEText"}, []string{"argparse", "asyncio"}},
		{"2.7", []string{"argparse", "importlib", "Tkinter"}, []string{"configparser", "asyncio"}},
		{"3.4", []string{"asyncio", "enum", "imp", "configparser"}, []string{"urllib2", "typing"}},
		{"3.10", []string{"distutils", "imp"}, []string{"tomllib"}},
		{"3.12", []string{"tomllib", "test.test_os"}, []string{"imp", "distutils", "asyncore"}},
		{"3.13", []string{"tomllib", "_pyrepl"}, []string{"imp", "cgi", "distutils", "telnetlib", "lib2to3"}},
	} {
		t.Run(tc.version, func(t *testing.T) {
			modules, err := c.Modules(tc.version)
			if err != nil {
				t.Fatalf("Modules(%s) error = %v", tc.version, err)
			}
			for _, m := range tc.present {
				if !slices.Contains(modules, m) {
					t.Errorf("Modules(%s) missing %q", tc.version, m)
				}
			}
			for _, m := range tc.absent {
				if slices.Contains(modules, m) {
					t.Errorf("Modules(%s) unexpectedly contains %q", tc.version, m)
				}
			}
		})
	}
}

func TestEmbeddedCatalogDropsImpAfter311(t *testing.T) {
	c, err := EmbeddedCatalog()
	if err != nil {
		t.Fatalf("EmbeddedCatalog() error = %v", err)
	}
	modules, err := c.Modules("3.12")
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}
	if slices.Contains(modules, "imp") {
		t.Errorf("Modules(3.12) contains imp, removed after 3.11")
	}
}

func TestLoadCatalog(t *testing.T) {
	doc := `
versions: ["3.10", "3.9", "3.9"]
groups:
  - modules: [os]
  - since: "3.10"
    modules: [newmod]
  - until: "3.9"
    modules: [oldmod]
`
	c, err := LoadCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if diff := cmp.Diff([]string{"3.9", "3.10"}, c.Versions()); diff != "" {
		t.Errorf("Versions() mismatch (-want +got):\n%s", diff)
	}
	got, err := c.Modules("3.10")
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}
	if diff := cmp.Diff([]string{"os", "newmod"}, got); diff != "" {
		t.Errorf("Modules(3.10) mismatch (-want +got):\n%s", diff)
	}
	got, err = c.Modules("3.9")
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}
	if diff := cmp.Diff([]string{"os", "oldmod"}, got); diff != "" {
		t.Errorf("Modules(3.9) mismatch (-want +got):\n%s", diff)
	}
	if _, err := c.Modules("3.11"); err == nil {
		t.Errorf("Modules(3.11) succeeded for untracked version")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
	}{
		{"malformed", "versions: [\n"},
		{"no versions", "groups: []\n"},
		{"bad version", "versions: [\"three\"]\n"},
		{"bad bound", "versions: [\"3.9\"]\ngroups:\n  - since: \"3\"\n    modules: [x]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(tc.doc)); err == nil {
				t.Errorf("LoadCatalog() succeeded, want error")
			}
		})
	}
}
