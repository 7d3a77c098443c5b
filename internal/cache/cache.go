// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package cache provides build-once caches for values that are expensive to
// compute and immutable once published.
package cache

import "sync"

// OnceCache memoizes a fallible build per key. Concurrent requests for the
// same key are coalesced onto a single build. Failed builds are not retained.
type OnceCache[K comparable, V any] struct {
	data sync.Map // K -> *entry[V]
}

type entry[V any] struct {
	build func() (V, error)
}

func (c *OnceCache[K, V]) valueOrClear(key K, e *entry[V]) (V, error) {
	val, err := e.build()
	if err != nil {
		c.data.CompareAndDelete(key, e)
	}
	return val, err
}

// GetOrBuild returns the value for key, running build at most once across
// all concurrent callers that observe the same entry.
func (c *OnceCache[K, V]) GetOrBuild(key K, build func() (V, error)) (V, error) {
	e, _ := c.data.LoadOrStore(key, &entry[V]{sync.OnceValues(build)})
	return c.valueOrClear(key, e.(*entry[V]))
}
