// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package httpx provides a simpler http.Client abstraction and decorators for it.
package httpx

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// BasicClient is a simpler http.Client that only requires a Do method.
type BasicClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ BasicClient = http.DefaultClient

// WithHeaders is a BasicClient that sets fixed headers on every request.
// Headers already present on the request are overwritten.
type WithHeaders struct {
	BasicClient
	Header http.Header
}

var _ BasicClient = &WithHeaders{}

// Do sets the configured headers and sends the request.
func (c *WithHeaders) Do(req *http.Request) (*http.Response, error) {
	for k, vs := range c.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.BasicClient.Do(req)
}

// UserAgent returns a client that identifies itself as ua.
func UserAgent(c BasicClient, ua string) *WithHeaders {
	return &WithHeaders{BasicClient: c, Header: http.Header{"User-Agent": []string{ua}}}
}

// CheckStatus returns an error for a non-200 response, closing its body.
func CheckStatus(resp *http.Response, what string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	resp.Body.Close()
	return errors.Wrap(errors.New(resp.Status), what)
}
