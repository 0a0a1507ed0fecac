// SPDX-License-Identifier: MIT

// Package sparse offers the sparse-matrix representations and kernels that
// mimetic operator assembly needs.
//
// The sparse package provides:
//
//   - COO: an append-friendly coordinate-format builder with a strict
//     finite-value ingestion policy (NaN/±Inf rejected by default).
//   - CSR: a compressed-sparse-row matrix with sorted, coalesced columns —
//     the canonical operator output format (the ordered row/col/value
//     triples are one Triples() call away).
//   - Deterministic kernels: Add, Sub, Scale, Mul, Transpose, MatVec,
//     Kron (Kronecker product), Identity, VStack/HStack block composition,
//     MaxAbsDiff and RowSums for consistency checking.
//   - Converters to and from gonum's mat.Dense, so any consumer of gonum
//     linear algebra can take an operator without further translation.
//
// All kernels are pure: operands are never mutated and every call returns a
// freshly allocated result. Loop orders are fixed, so outputs are
// bit-reproducible for identical inputs.
package sparse
