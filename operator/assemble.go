// SPDX-License-Identifier: MIT

// Package operator: Kronecker assembly of N-dimensional operators.
//
// Purpose:
//   - Expand per-axis 1D stencils to the full grid via identity padding and
//     combine them per operator kind (stack / concatenate / sum).
//   - Guard the assembly against stencils that disagree with the grid's
//     declared axis sizes (fail-fast, sparse.ErrDimensionMismatch).
//
// Determinism & Policy:
//   - Axis order is fixed (0..k-1); every result is a fresh canonical CSR.
//   - The Kron factor order encodes the axis-0-fastest flattening convention
//     and MUST NOT differ between operator kinds — adjointness depends on it.
package operator

import (
	"fmt"

	"github.com/katalvlaran/mimetic/grid"
	"github.com/katalvlaran/mimetic/sparse"
	"github.com/katalvlaran/mimetic/stencil"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opBuildGradient   = "BuildGradient"
	opBuildDivergence = "BuildDivergence"
	opBuildLaplacian  = "BuildLaplacian"
	opAssemble        = "Assemble"
)

// operatorErrorf wraps err with an operation tag, preserving the sentinel.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BuildGradient assembles the full gradient over g: a (k·N)×N row-block
// stack of the k per-axis partial gradients, each padded via Kronecker
// identities on the other axes.
//
// Errors: ErrNilGrid; grid/stencil sentinels propagated from stencil.Build.
// Complexity: O(k·N) entries (each partial gradient holds 2 entries per row).
func BuildGradient(g *grid.Spec, opts ...Option) (*sparse.CSR, error) {
	stencils, err := axisStencils(g, stencil.Gradient, opBuildGradient, opts...)
	if err != nil {
		return nil, err
	}

	return Assemble(g, stencil.Gradient, stencils)
}

// BuildDivergence assembles the full divergence over g: an N×(k·N)
// column-block concatenation of the k per-axis partial divergences. By
// construction it equals -BuildGradient(g)ᵀ entry for entry.
//
// Errors: ErrNilGrid; grid/stencil sentinels propagated from stencil.Build.
// Complexity: O(k·N) entries.
func BuildDivergence(g *grid.Spec, opts ...Option) (*sparse.CSR, error) {
	stencils, err := axisStencils(g, stencil.Divergence, opBuildDivergence, opts...)
	if err != nil {
		return nil, err
	}

	return Assemble(g, stencil.Divergence, stencils)
}

// BuildLaplacian assembles the full separable Laplacian over g: the N×N sum
// over axes of the Kron-expanded 1D Laplacians. It agrees with
// BuildDivergence(g)·BuildGradient(g) to floating-point rounding: the 1D
// product is literal (see stencil.Build), but on multi-axis grids the two
// sides accumulate the same terms in different orders, so entries can differ
// by ULPs when 1/h² is not exactly representable.
//
// Errors: ErrNilGrid; grid/stencil sentinels propagated from stencil.Build.
// Complexity: O(k·N) entries.
func BuildLaplacian(g *grid.Spec, opts ...Option) (*sparse.CSR, error) {
	stencils, err := axisStencils(g, stencil.Laplacian, opBuildLaplacian, opts...)
	if err != nil {
		return nil, err
	}

	return Assemble(g, stencil.Laplacian, stencils)
}

// Assemble combines pre-built per-axis 1D stencils into the full operator of
// the given kind. BuildGradient/BuildDivergence/BuildLaplacian delegate
// here; the entry point is public so callers with hand-constructed stencils
// (or spec-level tests) can exercise the shape guard directly.
//
// Implementation:
//   - Stage 1: validate grid, kind, stencil count and per-axis shapes
//     (square, matching the axis node count) — sparse.ErrDimensionMismatch
//     on any disagreement.
//   - Stage 2: expand each axis stencil with Kronecker identity padding.
//   - Stage 3: combine per kind — Gradient: VStack, Divergence: HStack,
//     Laplacian: Add-reduce.
//
// Errors: ErrNilGrid, stencil.ErrUnknownKind, sparse.ErrDimensionMismatch.
// Complexity: O(k·N) entries for difference stencils.
func Assemble(g *grid.Spec, kind stencil.Kind, axisStencils []*sparse.CSR) (*sparse.CSR, error) {
	if g == nil {
		return nil, operatorErrorf(opAssemble, ErrNilGrid)
	}
	if !kind.Valid() {
		return nil, operatorErrorf(opAssemble, stencil.ErrUnknownKind)
	}
	axes := g.Axes()
	// One stencil per axis, no more, no fewer.
	if len(axisStencils) != len(axes) {
		return nil, operatorErrorf(opAssemble, sparse.ErrDimensionMismatch)
	}
	// Every stencil must be square and sized to its axis.
	for i, s := range axisStencils {
		if err := sparse.ValidateNotNil(s); err != nil {
			return nil, operatorErrorf(opAssemble, err)
		}
		if s.Rows() != axes[i].N || s.Cols() != axes[i].N {
			return nil, operatorErrorf(opAssemble, sparse.ErrDimensionMismatch)
		}
	}

	// Expand each axis stencil to the full grid.
	expanded := make([]*sparse.CSR, len(axes))
	for i := range axes {
		e, err := expandAxis(axes, i, axisStencils[i])
		if err != nil {
			return nil, operatorErrorf(opAssemble, err)
		}
		expanded[i] = e
	}

	// Combine per operator kind.
	switch kind {
	case stencil.Gradient:
		return sparse.VStack(expanded...)
	case stencil.Divergence:
		return sparse.HStack(expanded...)
	case stencil.Laplacian:
		total := expanded[0]
		for i := 1; i < len(expanded); i++ {
			sum, err := sparse.Add(total, expanded[i])
			if err != nil {
				return nil, operatorErrorf(opAssemble, err)
			}
			total = sum
		}

		return total, nil
	default: // unreachable after Valid(); kept for exhaustiveness
		return nil, operatorErrorf(opAssemble, stencil.ErrUnknownKind)
	}
}

// axisStencils builds (or fetches from the injected cache) the 1D stencil
// of the given kind for every axis of g, in axis order.
func axisStencils(g *grid.Spec, kind stencil.Kind, opTag string, opts ...Option) ([]*sparse.CSR, error) {
	if g == nil {
		return nil, operatorErrorf(opTag, ErrNilGrid)
	}
	o := gatherOptions(opts...)

	axes := g.Axes()
	out := make([]*sparse.CSR, len(axes))
	for i, ax := range axes { // fixed axis order
		var (
			s   *sparse.CSR
			err error
		)
		if o.cache != nil {
			s, err = o.cache.Build(ax.N, ax.H, ax.Boundary, kind)
		} else {
			s, err = stencil.Build(ax.N, ax.H, ax.Boundary, kind)
		}
		if err != nil {
			return nil, operatorErrorf(opTag, err)
		}
		out[i] = s
	}

	return out, nil
}

// expandAxis pads the axis-i stencil with Kronecker identities:
//
//	I_{n(k-1)} ⊗ ... ⊗ I_{n(i+1)} ⊗ s ⊗ I_{n(i-1)} ⊗ ... ⊗ I_{n0}
//
// Folding runs from the slowest axis (k-1) down to 0 so axis 0 ends up
// fastest-varying, matching grid.FlatIndex. sparse.Kron puts its SECOND
// factor on the fast index, hence the left-fold accumulates earlier (slower)
// factors on the left.
//
// Complexity: O(N) entries for a difference stencil s.
func expandAxis(axes []grid.Axis, i int, s *sparse.CSR) (*sparse.CSR, error) {
	var acc *sparse.CSR
	for j := len(axes) - 1; j >= 0; j-- { // slowest → fastest
		term := s
		if j != i {
			eye, err := sparse.Identity(axes[j].N)
			if err != nil {
				return nil, err
			}
			term = eye
		}
		if acc == nil {
			acc = term

			continue
		}
		k, err := sparse.Kron(acc, term)
		if err != nil {
			return nil, err
		}
		acc = k
	}

	return acc, nil
}
