// SPDX-License-Identifier: MIT

// Package grid: Spec construction, validation, and the flattening convention.
//
// Purpose:
//   - Validate axis data exactly once (New / ValidateAxis) and fail fast with
//     sentinel errors; no partial construction, no silent correction.
//   - Fix the index-flattening convention used by every assembled operator:
//     axis 0 is the FASTEST-varying coordinate.
//
// Determinism & Policy:
//   - All functions are pure; a Spec never mutates after New returns.
//   - Validation order is stable: axis count → per-axis (N, H, Boundary).
package grid

import (
	"fmt"
	"math"
)

// Structural limits of a Spec (single source of truth).
const (
	// MinNodes is the smallest axis node count for which any finite-difference
	// stencil is definable.
	MinNodes = 2

	// MinDims and MaxDims bound the supported dimensionality.
	MinDims = 1
	MaxDims = 3
)

// gridErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAxis checks one axis in isolation: N >= MinNodes, H finite and
// positive, Boundary within the closed set.
//
// Inputs:
//   - n: node count along the axis.
//   - h: uniform spacing.
//   - boundary: Periodic or NonPeriodic.
//
// Errors:
//   - ErrInvalidGrid for n < MinNodes or h <= 0 or non-finite h.
//   - ErrUnknownBoundary for out-of-set boundary values.
//
// Complexity: O(1).
func ValidateAxis(n int, h float64, boundary BoundaryKind) error {
	// Node count must admit at least one difference row.
	if n < MinNodes {
		return gridErrorf("ValidateAxis: N", ErrInvalidGrid)
	}
	// Spacing must be a positive finite real.
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return gridErrorf("ValidateAxis: H", ErrInvalidGrid)
	}
	// Boundary must be a member of the closed variant set.
	if !boundary.Valid() {
		return gridErrorf("ValidateAxis: Boundary", ErrUnknownBoundary)
	}

	return nil
}

// New constructs a validated Spec from 1 to 3 axes.
//
// Implementation:
//   - Stage 1: validate axis count against MinDims..MaxDims.
//   - Stage 2: validate each axis via ValidateAxis in index order.
//   - Stage 3: copy the axes into the Spec; the caller's slice stays
//     independent.
//
// Errors:
//   - ErrInvalidGrid, ErrUnknownBoundary (from validation stages).
//
// Complexity: O(k) for k axes.
func New(axes ...Axis) (*Spec, error) {
	// Enforce supported dimensionality.
	if len(axes) < MinDims || len(axes) > MaxDims {
		return nil, gridErrorf("New: dims", ErrInvalidGrid)
	}
	// Validate every axis before allocating anything.
	for i, ax := range axes {
		if err := ValidateAxis(ax.N, ax.H, ax.Boundary); err != nil {
			return nil, gridErrorf(fmt.Sprintf("New: axis %d", i), err)
		}
	}
	// Own copy: later mutation of the caller's slice cannot leak in.
	own := make([]Axis, len(axes))
	copy(own, axes)

	return &Spec{axes: own}, nil
}

// Dims returns the number of axes (1..3).
// Complexity: O(1).
func (s *Spec) Dims() int {
	return len(s.axes)
}

// Axis returns the i-th axis descriptor.
// Errors: ErrAxisIndex when i is outside 0..Dims()-1.
// Complexity: O(1).
func (s *Spec) Axis(i int) (Axis, error) {
	if i < 0 || i >= len(s.axes) {
		return Axis{}, gridErrorf("Axis", ErrAxisIndex)
	}

	return s.axes[i], nil
}

// Axes returns a copy of all axis descriptors in order.
// The copy keeps Spec immutable; mutating the result has no effect on s.
// Complexity: O(k).
func (s *Spec) Axes() []Axis {
	out := make([]Axis, len(s.axes))
	copy(out, s.axes)

	return out
}

// Nodes returns the total node count N = Π nᵢ over all axes.
// This is the column count of an assembled gradient and the row/column
// count of an assembled Laplacian.
// Complexity: O(k).
func (s *Spec) Nodes() int {
	total := 1
	for _, ax := range s.axes {
		total *= ax.N
	}

	return total
}

// Periodic reports whether EVERY axis is periodic. Several consistency
// checks (constant-field annihilation, Laplacian zero row sums) are pinned
// only for fully periodic grids.
// Complexity: O(k).
func (s *Spec) Periodic() bool {
	for _, ax := range s.axes {
		if ax.Boundary != Periodic {
			return false
		}
	}

	return true
}

// FlatIndex converts per-axis coordinates into the canonical flat index.
//
// Convention (load-bearing, used by every assembled operator):
// axis 0 varies FASTEST:
//
//	flat = i0 + n0*(i1 + n1*i2)
//
// Errors:
//   - ErrFlatIndex when len(idx) != Dims() or any coordinate is out of range.
//
// Complexity: O(k).
func (s *Spec) FlatIndex(idx ...int) (int, error) {
	// Arity must match dimensionality exactly.
	if len(idx) != len(s.axes) {
		return 0, gridErrorf("FlatIndex: arity", ErrFlatIndex)
	}
	// Accumulate from the slowest axis down so axis 0 ends up fastest.
	flat := 0
	for i := len(s.axes) - 1; i >= 0; i-- {
		if idx[i] < 0 || idx[i] >= s.axes[i].N {
			return 0, gridErrorf("FlatIndex: coordinate", ErrFlatIndex)
		}
		flat = flat*s.axes[i].N + idx[i]
	}

	return flat, nil
}

// Unflatten is the inverse of FlatIndex: it recovers per-axis coordinates
// from a canonical flat index.
// Errors: ErrFlatIndex when flat is outside 0..Nodes()-1.
// Complexity: O(k).
func (s *Spec) Unflatten(flat int) ([]int, error) {
	if flat < 0 || flat >= s.Nodes() {
		return nil, gridErrorf("Unflatten", ErrFlatIndex)
	}
	idx := make([]int, len(s.axes))
	for i, ax := range s.axes {
		idx[i] = flat % ax.N // axis 0 peels off first (fastest-varying)
		flat /= ax.N
	}

	return idx, nil
}
