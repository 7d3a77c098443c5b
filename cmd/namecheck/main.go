// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// namecheck checks whether a project name may be registered on PyPI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/pypi-namecheck/cmd/namecheck/command/check"
)

func main() {
	err := check.Command().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(check.ExitCode(err))
}
