// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package pypi describes the PyPi registry's project listing.
package pypi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/google/pypi-namecheck/internal/httpx"
	"github.com/pkg/errors"
)

// DefaultIndexURL is the simple index of pypi.org.
const DefaultIndexURL = "https://pypi.org/simple/"

// SimpleJSONType is the PEP 691 media type of the JSON simple index.
const SimpleJSONType = "application/vnd.pypi.simple.v1+json"

// Index is the PEP 691 JSON root of a simple index.
type Index struct {
	Meta     Meta      `json:"meta"`
	Projects []Project `json:"projects"`
}

// Meta describes the index response.
type Meta struct {
	APIVersion string `json:"api-version"`
	LastSerial int64  `json:"_last-serial"`
}

// Project is one entry of the index.
type Project struct {
	Name       string `json:"name"`
	LastSerial int64  `json:"_last-serial"`
}

// Lister lists every project registered on an index.
type Lister interface {
	ProjectNames(context.Context) ([]string, error)
}

// HTTPRegistry is a Lister that uses the simple index HTTP API.
type HTTPRegistry struct {
	Client httpx.BasicClient
	// IndexURL defaults to DefaultIndexURL.
	IndexURL string
}

var _ Lister = &HTTPRegistry{}

// ProjectNames fetches the full project listing in a single request.
func (r HTTPRegistry) ProjectNames(ctx context.Context) ([]string, error) {
	index := r.IndexURL
	if index == "" {
		index = DefaultIndexURL
	}
	u, err := url.Parse(index)
	if err != nil {
		return nil, errors.Wrap(err, "parsing index url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating index request")
	}
	req.Header.Set("Accept", SimpleJSONType)
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching index")
	}
	if err := httpx.CheckStatus(resp, "fetching index"); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeIndex(resp.Body)
}

func decodeIndex(r io.Reader) ([]string, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, errors.Wrap(err, "decoding index")
	}
	if idx.Projects == nil {
		return nil, errors.New("decoding index: missing projects")
	}
	names := make([]string, 0, len(idx.Projects))
	for _, p := range idx.Projects {
		names = append(names, p.Name)
	}
	return names, nil
}

// FileListing is a Lister reading a listing saved to a filesystem.
//
// The file is either a PEP 691 JSON index or one project name per line, in
// which case blank lines and lines starting with '#' are skipped.
type FileListing struct {
	FS   billy.Filesystem
	Path string
}

var _ Lister = &FileListing{}

// ProjectNames reads the listing file. The file is re-read on every call.
func (l FileListing) ProjectNames(context.Context) ([]string, error) {
	f, err := l.FS.Open(l.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening listing")
	}
	defer f.Close()
	br := bufio.NewReader(f)
	if first, err := peekNonSpace(br); err == nil && first == '{' {
		return decodeIndex(br)
	}
	var names []string
	s := bufio.NewScanner(br)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading listing")
	}
	return names, nil
}

// peekNonSpace returns the first non-whitespace byte without consuming input
// beyond leading whitespace.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !bytes.ContainsAny(b, " \t\r\n") {
			return b[0], nil
		}
		br.ReadByte()
	}
}
