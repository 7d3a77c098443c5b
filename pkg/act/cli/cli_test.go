// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type testConfig struct {
	Name string
}

func (c testConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type testDeps struct {
	IO       IO
	Greeting string
}

func (d *testDeps) SetIO(cio IO) { d.IO = cio }

func testInitDeps(_ context.Context, cfg testConfig) (*testDeps, error) {
	return &testDeps{Greeting: "Hello " + cfg.Name}, nil
}

type testOutput struct {
	Written int
}

func testAction(_ context.Context, _ testConfig, deps *testDeps) (*testOutput, error) {
	n, err := deps.IO.Out.Write([]byte(deps.Greeting))
	return &testOutput{Written: n}, err
}

func parseName(cfg *testConfig, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	cfg.Name = args[0]
	return nil
}

func TestRunE(t *testing.T) {
	cfg := testConfig{}
	cmd := &cobra.Command{
		Use:  "test",
		RunE: RunE(&cfg, parseName, testInitDeps, testAction),
	}
	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetArgs([]string{"World"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := outBuf.String(), "Hello World"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunEValidationError(t *testing.T) {
	cfg := testConfig{}
	cmd := &cobra.Command{
		Use:           "test",
		RunE:          RunE(&cfg, func(*testConfig, []string) error { return nil }, testInitDeps, testAction),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil || err.Error() != "invalid configuration: name is required" {
		t.Errorf("Execute() error = %v, want validation error", err)
	}
}

func TestRunEActionErrorUnwrapped(t *testing.T) {
	sentinel := errors.New("rejected")
	cfg := testConfig{}
	cmd := &cobra.Command{
		Use: "test",
		RunE: RunE(&cfg, parseName, testInitDeps, func(context.Context, testConfig, *testDeps) (*testOutput, error) {
			return nil, sentinel
		}),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs([]string{"x"})
	if err := cmd.Execute(); err != sentinel {
		t.Errorf("Execute() error = %v, want %v", err, sentinel)
	}
}
