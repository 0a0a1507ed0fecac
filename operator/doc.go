// SPDX-License-Identifier: MIT

// Package operator assembles N-dimensional mimetic operators from 1D
// stencils via Kronecker (tensor) composition, and verifies their defining
// identities.
//
// For a grid with axes A0..A(k-1) and total node count N = Π nᵢ, the
// operator along axis i is the expansion
//
//	I_{n(k-1)} ⊗ ... ⊗ Stencil(Aᵢ) ⊗ ... ⊗ I_{n0}
//
// with axis 0 fastest-varying — the SAME flattening convention grid.FlatIndex
// fixes. Holding that one convention across gradient, divergence and
// Laplacian is what keeps adjointness exact over the full grid:
//
//   - Gradient:   (k·N)×N — row-block stack of the k partial gradients.
//   - Divergence: N×(k·N) — column-block concatenation of the k partial
//     divergences; equals -Gradientᵀ entry for entry.
//   - Laplacian:  N×N — sum over axes of the expanded 1D Laplacians
//     (separable), equal to Divergence·Gradient within floating-point
//     rounding (the two sides accumulate the same terms in different
//     orders on multi-axis grids).
//
// CheckConsistency re-proves both identities (plus the periodic
// constant-field and row-sum pins) on any grid, reporting the maximum
// observed discrepancy against a configurable tolerance. Production code
// never needs it; it encodes the correctness contract the test suite holds
// the assembler to.
//
// All build functions are pure and safe to call concurrently; pass
// WithCache to share memoized 1D stencils across repeated assemblies.
package operator
