// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package log configures the zerolog loggers used for diagnostics.
//
// Diagnostics are separate from the user-facing progress transcript, which
// commands write directly to their output stream.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for building a logger.
type Config struct {
	Level  string    // optional level name ("debug", "info", ...)
	Output io.Writer // defaults to os.Stderr
	// Console selects the human-readable console encoding instead of JSON.
	Console bool
}

// New builds a logger from cfg. An unrecognized level is an error.
func New(cfg Config) (zerolog.Logger, error) {
	level := DefaultLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "parsing log level %q", cfg.Level)
		}
		level = parsed
	}
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

var (
	once sync.Once
	base = zerolog.Nop()
)

// Configure installs the process-wide base logger exactly once. Later calls
// are no-ops and return nil.
func Configure(cfg Config) error {
	var err error
	once.Do(func() {
		var l zerolog.Logger
		if l, err = New(cfg); err == nil {
			base = l
		}
	})
	return err
}

// Base returns the configured base logger, or a no-op logger before Configure.
func Base() zerolog.Logger {
	return base
}

// WithComponent returns a child of l annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
