// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package httpxtest

import (
	"io"
	"net/http"
	"strings"
)

// Body returns a response body serving b.
func Body(b string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(b))
}

// OK returns a 200 response serving body.
func OK(body string) *http.Response {
	return &http.Response{Status: "200 OK", StatusCode: http.StatusOK, Body: Body(body)}
}
