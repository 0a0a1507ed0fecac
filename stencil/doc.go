// SPDX-License-Identifier: MIT

// Package stencil produces the 1D difference-operator matrices that
// N-dimensional mimetic operators are assembled from.
//
// One call — Build(n, h, boundary, kind) — yields the n×n coefficient
// matrix for one axis, one operator kind (Gradient, Divergence, Laplacian)
// and one boundary topology (Periodic, NonPeriodic).
//
// The mimetic identities hold EXACTLY by construction, not by numerical
// accident:
//
//   - Divergence is built as the negated transpose of the Gradient stencil
//     for the same (n, h, boundary), so Divergence = -Gradientᵀ is a matrix
//     identity.
//   - Laplacian is built as the product Divergence·Gradient, so the
//     composition identity is a matrix identity too.
//
// Boundary scheme (documented, deterministic — not left to chance):
//
//	Periodic     row i:        (-1/h at i, +1/h at (i+1) mod n)   — circulant
//	NonPeriodic  rows 0..n-2:  (-1/h at i, +1/h at i+1)           — forward
//	             row n-1:      (-1/h at n-2, +1/h at n-1)         — backward
//
// Build is a pure function. For repeated assembly over the same axes, the
// injectable Cache memoizes results per (n, h, boundary, kind) with
// at-most-one computation per key; there is deliberately no module-level
// cache state.
package stencil
