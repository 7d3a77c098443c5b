// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package cli adapts act actions to cobra commands.
package cli

import (
	"io"
	"os"
	"os/signal"

	"github.com/google/pypi-namecheck/pkg/act"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// IO holds the streams of the running command. Out carries the
// user-facing transcript and Err carries diagnostics.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type Deps interface {
	SetIO(IO)
}

// ParseArgs populates an Input from positional arguments.
type ParseArgs[I act.Input] func(in *I, args []string) error

// RunE builds a cobra RunE that parses args into cfg, validates it,
// initializes deps, attaches the command's streams and runs action.
//
// The action's context is cancelled on interrupt. Errors from the action
// are returned unwrapped so callers can classify them.
func RunE[I act.Input, O any, D Deps](
	cfg *I,
	parseArgs ParseArgs[I],
	initDeps act.InitDeps[I, D],
	action act.Action[I, O, D],
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := parseArgs(cfg, args); err != nil {
			return err
		}
		if err := (*cfg).Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		deps, err := initDeps(ctx, *cfg)
		if err != nil {
			return errors.Wrap(err, "initializing dependencies")
		}
		deps.SetIO(IO{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		})
		_, err = action(ctx, *cfg, deps)
		return err
	}
}
