// SPDX-License-Identifier: MIT

// Package operator: functional configuration for assembly and consistency
// checking. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package operator

import (
	"math"

	"github.com/katalvlaran/mimetic/stencil"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the base consistency tolerance. The checker scales
	// it by the operator's max-norm, so the effective tolerance tracks the
	// magnitude of the coefficients (fine grids have large 1/h² entries).
	DefaultTolerance = 1e-10
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "operator: WithTolerance: eps must be finite, non-negative"
	panicNilCache         = "operator: WithCache: cache must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque; public entry points accept `...Option`.
type Options struct {
	cache *stencil.Cache // nil ⇒ pure Build per axis (no memoization)
	tol   float64        // >= 0; DefaultTolerance
}

// WithCache injects a shared stencil cache so repeated assemblies over the
// same axes reuse 1D stencils. The caller owns the cache's lifetime; passing
// the same cache to concurrent builds is safe (stencil.Cache locks).
//
// Errors: panics with a stable message on a nil cache (programmer error).
// Complexity: O(1).
func WithCache(c *stencil.Cache) Option {
	if c == nil {
		panic(panicNilCache)
	}

	return func(o *Options) { o.cache = c }
}

// WithTolerance sets the base consistency tolerance used by CheckConsistency.
// The checker multiplies it by max(1, ‖L‖_max) before comparing.
//
// Errors: panics with a stable message when eps is NaN/±Inf or negative.
// Complexity: O(1).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins semantics; stable for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		cache: nil,
		tol:   DefaultTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
