// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. All functions MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered conditions.

package grid

import "errors"

var (
	// ErrInvalidGrid is returned when an axis is malformed: node count < 2,
	// spacing <= 0 or non-finite, or the axis count is outside 1..3.
	// Finite-difference stencils are undefined below two nodes, so the check
	// is structural, not a policy choice.
	ErrInvalidGrid = errors.New("grid: invalid grid specification")

	// ErrUnknownBoundary is returned when a BoundaryKind value is outside the
	// closed {Periodic, NonPeriodic} set (e.g., an uninitialized custom int).
	ErrUnknownBoundary = errors.New("grid: unknown boundary kind")

	// ErrAxisIndex indicates an axis accessor was called with an index outside
	// the Spec's dimensionality.
	ErrAxisIndex = errors.New("grid: axis index out of range")

	// ErrFlatIndex indicates a flatten/unflatten request with the wrong arity
	// or with a coordinate outside the grid.
	ErrFlatIndex = errors.New("grid: flat index out of range")
)
