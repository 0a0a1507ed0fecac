// SPDX-License-Identifier: MIT

// Package grid: domain types for structured grid descriptions.
// This file contains ONLY domain-facing types (boundary kinds, axes, the
// validated Spec). Errors live in errors.go; behavior lives in grid.go,
// per the global conventions.
package grid

// BoundaryKind selects the boundary topology of one grid axis.
// It is a closed tagged variant: every switch over BoundaryKind in this
// module is exhaustive and fails loudly on unknown values.
type BoundaryKind int

const (
	// Periodic wraps the axis: node n-1 is adjacent to node 0
	// (circular topology; stencils become circulant matrices).
	Periodic BoundaryKind = iota

	// NonPeriodic gives the axis physical edges; boundary rows of any
	// stencil use documented one-sided differences instead of wrapping.
	NonPeriodic
)

// String implements fmt.Stringer for diagnostics and test output.
// Complexity: O(1).
func (b BoundaryKind) String() string {
	switch b {
	case Periodic:
		return "Periodic"
	case NonPeriodic:
		return "NonPeriodic"
	default:
		return "BoundaryKind(?)"
	}
}

// Valid reports whether b is a member of the closed boundary set.
// Complexity: O(1).
func (b BoundaryKind) Valid() bool {
	return b == Periodic || b == NonPeriodic
}

// Axis describes one grid direction: N sample nodes spaced H apart, with
// the given boundary topology. An Axis is plain data; validation happens
// when a Spec is constructed (or via ValidateAxis for standalone use).
type Axis struct {
	// N is the node count along this axis; must be >= MinNodes.
	N int

	// H is the uniform spacing between adjacent nodes; must be finite and > 0.
	H float64

	// Boundary selects Periodic or NonPeriodic topology for this axis.
	Boundary BoundaryKind
}

// Spec is a validated, immutable structured-grid description of 1 to 3 axes.
// Construct via New; the zero value is not usable. Once built, a Spec never
// mutates, so it is safe to share across goroutines and to key caches on
// its axis values.
type Spec struct {
	axes []Axis // copied by New; never exposed directly
}
