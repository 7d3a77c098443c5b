// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  zerolog.Level
	}{
		{"", DefaultLevel},
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
	} {
		l, err := New(Config{Level: tc.level, Output: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("New(%q) error = %v", tc.level, err)
		}
		if got := l.GetLevel(); got != tc.want {
			t.Errorf("New(%q).GetLevel() = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New(loud) succeeded, want error")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	cl := WithComponent(l, "registry")
	cl.Info().Int("projects", 3).Msg("fetched")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log line %q: %v", buf.String(), err)
	}
	if entry["component"] != "registry" || entry["message"] != "fetched" || entry["projects"] != float64(3) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
		t.Errorf("output = %q, want only the warning", got)
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Output: &buf, Console: true})
	if err != nil {
		t.Fatal(err)
	}
	l.Warn().Msg("slow index")
	if got := buf.String(); !strings.Contains(got, "WRN") || !strings.Contains(got, "slow index") {
		t.Errorf("output = %q, want console-formatted warning", got)
	}
}
