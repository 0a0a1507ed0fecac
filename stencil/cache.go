// SPDX-License-Identifier: MIT

// Package stencil: explicit, injectable memoization for Build results.
//
// Purpose:
//   - Let callers that assemble many operators over the same axes reuse 1D
//     stencils without recomputation, with concurrency semantics stated in
//     one place instead of hidden module-level state.
//
// Concurrency:
//   - A Cache is safe for concurrent use. The mutex is held across the
//     build, giving at-most-one computation per key with no partial-result
//     visibility; stencil construction is O(n), so the critical section is
//     short.
package stencil

import (
	"sync"

	"github.com/katalvlaran/mimetic/grid"
	"github.com/katalvlaran/mimetic/sparse"
)

// cacheKey identifies one memoized stencil. float64 spacing is used as-is:
// keys are exact input values, not rounded classes, so two spacings compare
// equal only when their bits do.
type cacheKey struct {
	n        int
	h        float64
	boundary grid.BoundaryKind
	kind     Kind
}

// Cache is a concurrency-safe memo table over Build keyed by
// (n, h, boundary, kind). The zero value is NOT usable; construct via
// NewCache. Cached matrices are returned by reference and must be treated
// as read-only (CSR is immutable by convention, so this is the default).
type Cache struct {
	mu   sync.Mutex
	memo map[cacheKey]*sparse.CSR
}

// NewCache returns an empty stencil cache.
// Complexity: O(1).
func NewCache() *Cache {
	return &Cache{memo: make(map[cacheKey]*sparse.CSR)}
}

// Build returns the memoized stencil for the key, computing it at most once.
//
// Implementation:
//   - Stage 1: lock; hit → return the cached matrix.
//   - Stage 2: miss → delegate to the pure Build, store on success.
//
// Behavior highlights:
//   - Errors are NOT cached: a malformed request fails every time with the
//     same sentinel, and never poisons the table.
//
// Errors: exactly those of the package-level Build.
// Complexity: O(1) on hit; Build's O(n) on miss.
func (c *Cache) Build(n int, h float64, boundary grid.BoundaryKind, kind Kind) (*sparse.CSR, error) {
	key := cacheKey{n: n, h: h, boundary: boundary, kind: kind}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.memo[key]; ok {
		return s, nil // shared read-only result
	}
	s, err := Build(n, h, boundary, kind)
	if err != nil {
		return nil, err // invalid inputs are never memoized
	}
	c.memo[key] = s

	return s, nil
}

// Len reports the number of memoized stencils (diagnostic surface for tests).
// Complexity: O(1).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.memo)
}
