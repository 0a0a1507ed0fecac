// SPDX-License-Identifier: MIT

// Package grid describes structured 1D/2D/3D grids for mimetic operator
// construction.
//
// The grid package provides:
//
//   - Axis: node count, spacing and boundary kind for one grid direction.
//   - Spec: an immutable, validated sequence of 1–3 axes.
//   - A single flattening convention (axis 0 fastest-varying) shared by
//     every operator built on top of a Spec, plus FlatIndex/Unflatten
//     helpers that make the convention testable.
//
// The flattening convention is load-bearing: gradient and divergence must
// agree on it or their adjointness breaks silently. It therefore lives
// here, in exactly one place, and the operator package consumes it.
//
// Specs are pure data: validation happens once in New, and a Spec never
// mutates afterwards, so sharing one across goroutines is safe.
package grid
