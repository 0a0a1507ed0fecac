// SPDX-License-Identifier: MIT

// Package stencil: the 1D operator construction kernel.
//
// Purpose:
//   - Build the n×n difference matrix for one (n, h, boundary, kind) tuple.
//   - Keep the gradient the single source of coefficients: divergence and
//     Laplacian are derived from it algebraically, which is what makes the
//     mimetic identities exact.
//
// Determinism & Policy:
//   - Pure functions; fixed row order; strict fail-fast validation with
//     sentinel errors. No caching here — see cache.go for the explicit,
//     injectable memo table.
package stencil

import (
	"fmt"

	"github.com/katalvlaran/mimetic/grid"
	"github.com/katalvlaran/mimetic/sparse"
)

// stencilErrorf wraps err with an operation tag, preserving the sentinel.
func stencilErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Build returns the 1D stencil matrix for one axis.
//
// Implementation:
//   - Stage 1: validate the axis (grid.ValidateAxis) and the kind.
//   - Stage 2: dispatch on the closed Kind set:
//     Gradient  → direct row construction (see buildGradient),
//     Divergence → -Gradientᵀ (exact adjoint by construction),
//     Laplacian → Divergence·Gradient (exact composition by construction).
//
// Behavior highlights:
//   - The result is always n×n in canonical CSR form.
//   - Identical inputs yield bit-identical outputs (fixed loop orders all
//     the way down), which makes external memoization safe.
//
// Inputs:
//   - n: axis node count (>= grid.MinNodes).
//   - h: axis spacing (> 0, finite).
//   - boundary: Periodic or NonPeriodic.
//   - kind: Gradient, Divergence or Laplacian.
//
// Errors:
//   - grid.ErrInvalidGrid for malformed (n, h).
//   - ErrUnsupportedBoundary for out-of-set boundary values.
//   - ErrUnknownKind for out-of-set kinds.
//
// Complexity: O(n) for Gradient/Divergence, O(n) for Laplacian (each
// divergence row holds at most 3 entries, so the product stays linear).
func Build(n int, h float64, boundary grid.BoundaryKind, kind Kind) (*sparse.CSR, error) {
	// Validate the axis shape; boundary membership is checked separately so
	// the error taxonomy distinguishes "bad grid" from "unsupported boundary".
	if !boundary.Valid() {
		return nil, stencilErrorf("Build", ErrUnsupportedBoundary)
	}
	if err := grid.ValidateAxis(n, h, boundary); err != nil {
		return nil, stencilErrorf("Build", err)
	}
	if !kind.Valid() {
		return nil, stencilErrorf("Build", ErrUnknownKind)
	}

	switch kind {
	case Gradient:
		return buildGradient(n, h, boundary)
	case Divergence:
		return buildDivergence(n, h, boundary)
	case Laplacian:
		return buildLaplacian(n, h, boundary)
	default: // unreachable after Valid(); kept for exhaustiveness
		return nil, stencilErrorf("Build", ErrUnknownKind)
	}
}

// buildGradient constructs the first-derivative stencil rows.
//
// Row patterns (coefficients scaled by 1/h):
//
//	Periodic     row i:      -1 at i, +1 at (i+1) mod n      (circulant)
//	NonPeriodic  row 0..n-2: -1 at i, +1 at i+1              (forward)
//	             row n-1:    -1 at n-2, +1 at n-1            (backward)
//
// The one-sided boundary rows are the documented, deterministic policy for
// physical edges; they trade central accuracy at two rows for a square,
// composable operator.
func buildGradient(n int, h float64, boundary grid.BoundaryKind) (*sparse.CSR, error) {
	c, err := sparse.NewCOO(n, n)
	if err != nil {
		return nil, stencilErrorf("buildGradient", err)
	}
	inv := 1.0 / h

	switch boundary {
	case grid.Periodic:
		for i := 0; i < n; i++ { // every row wraps; row n-1 reaches column 0
			if err = c.Append(i, i, -inv); err != nil {
				return nil, stencilErrorf("buildGradient", err)
			}
			if err = c.Append(i, (i+1)%n, inv); err != nil {
				return nil, stencilErrorf("buildGradient", err)
			}
		}
	case grid.NonPeriodic:
		for i := 0; i < n-1; i++ { // forward differences up to the edge
			if err = c.Append(i, i, -inv); err != nil {
				return nil, stencilErrorf("buildGradient", err)
			}
			if err = c.Append(i, i+1, inv); err != nil {
				return nil, stencilErrorf("buildGradient", err)
			}
		}
		// Last row: backward difference against node n-2.
		if err = c.Append(n-1, n-2, -inv); err != nil {
			return nil, stencilErrorf("buildGradient", err)
		}
		if err = c.Append(n-1, n-1, inv); err != nil {
			return nil, stencilErrorf("buildGradient", err)
		}
	default: // guarded by Build; kept for exhaustiveness
		return nil, stencilErrorf("buildGradient", ErrUnsupportedBoundary)
	}

	return c.ToCSR(), nil
}

// buildDivergence constructs the divergence stencil as -Gradientᵀ.
// The negated transposition is the DEFINING mimetic identity; deriving the
// divergence any other way would make adjointness a numerical coincidence
// instead of a matrix fact.
func buildDivergence(n int, h float64, boundary grid.BoundaryKind) (*sparse.CSR, error) {
	g, err := buildGradient(n, h, boundary)
	if err != nil {
		return nil, stencilErrorf("buildDivergence", err)
	}
	gt, err := sparse.Transpose(g)
	if err != nil {
		return nil, stencilErrorf("buildDivergence", err)
	}
	d, err := sparse.Scale(gt, -1)
	if err != nil {
		return nil, stencilErrorf("buildDivergence", err)
	}

	return d, nil
}

// buildLaplacian constructs the second-derivative stencil as
// Divergence·Gradient, making the composition identity exact.
//
// For periodic axes this reproduces the classical circulant
// (1, -2, 1)/h² pattern with wraparound; for non-periodic axes the interior
// keeps the same tridiagonal pattern while the two boundary rows carry the
// corrections induced by the one-sided gradient (pinned literally in tests).
func buildLaplacian(n int, h float64, boundary grid.BoundaryKind) (*sparse.CSR, error) {
	g, err := buildGradient(n, h, boundary)
	if err != nil {
		return nil, stencilErrorf("buildLaplacian", err)
	}
	d, err := buildDivergence(n, h, boundary)
	if err != nil {
		return nil, stencilErrorf("buildLaplacian", err)
	}
	l, err := sparse.Mul(d, g)
	if err != nil {
		return nil, stencilErrorf("buildLaplacian", err)
	}

	return l, nil
}
