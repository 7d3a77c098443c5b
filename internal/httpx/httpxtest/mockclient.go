// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package httpxtest provides test doubles for httpx.BasicClient.
package httpxtest

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Call is one scripted exchange with a MockClient.
type Call struct {
	Method string
	URL    string
	// Header lists request headers that must be present with these values.
	Header   http.Header
	Response *http.Response
	Error    error
}

// MockClient replays scripted Calls in order and records the requests it saw.
//
// When T is set each request is checked against its Call and mismatches fail
// the test. Without T only the number of requests is enforced.
type MockClient struct {
	T        testing.TB
	Calls    []Call
	requests []*http.Request
}

func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	if len(m.requests) >= len(m.Calls) {
		msg := fmt.Sprintf("unexpected request #%d: %s %s", len(m.requests)+1, req.Method, req.URL)
		if m.T == nil {
			panic(msg)
		}
		m.T.Fatal(msg)
	}
	call := m.Calls[len(m.requests)]
	m.requests = append(m.requests, req)
	if m.T != nil {
		m.T.Helper()
		m.verify(call, req)
	}
	return call.Response, call.Error
}

func (m *MockClient) verify(call Call, req *http.Request) {
	want, got := call.URL, req.URL.String()
	if call.Method != "" {
		want, got = call.Method+" "+want, req.Method+" "+got
	}
	if diff := cmp.Diff(want, got); diff != "" {
		m.T.Errorf("request #%d mismatch (-want +got):\n%s", len(m.requests), diff)
	}
	for k := range call.Header {
		if w, g := call.Header.Get(k), req.Header.Get(k); w != g {
			m.T.Errorf("request #%d header %s = %q, want %q", len(m.requests), k, g, w)
		}
	}
}

// CallCount returns the number of requests served so far.
func (m *MockClient) CallCount() int {
	return len(m.requests)
}

// Requests returns the requests served so far.
func (m *MockClient) Requests() []*http.Request {
	return m.requests
}
