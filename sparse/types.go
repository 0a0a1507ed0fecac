// SPDX-License-Identifier: MIT

// Package sparse: domain types for coordinate and compressed-row storage.
// This file contains ONLY the storage types; kernels live in impl_*.go and
// errors in errors.go, per the global conventions.
package sparse

// Triple is one stored matrix entry in coordinate format: (row, col, value).
// An assembled operator is fully described by its ordered Triple set plus
// its logical shape.
type Triple struct {
	Row, Col int     // zero-based position
	Val      float64 // stored coefficient (finite under the default policy)
}

// COO is an append-friendly coordinate-format builder. Entries accumulate in
// insertion order and may repeat; ToCSR sorts, coalesces duplicates by
// summation, and drops exact zeros. COO is the ingestion half of the pair —
// kernels operate on CSR.
//
// COO is NOT safe for concurrent appends; build it on one goroutine, then
// share the immutable CSR.
type COO struct {
	rows, cols int      // logical shape
	ts         []Triple // entries in insertion order (may contain duplicates)
	validate   bool     // reject NaN/±Inf on Append (numeric policy)
}

// CSR is a compressed-sparse-row matrix with coalesced entries and strictly
// increasing column indices within each row. Instances are immutable by
// convention: kernels never mutate operands and always allocate fresh
// results, so a CSR can be shared freely across goroutines.
type CSR struct {
	rows, cols int       // logical shape
	indptr     []int     // row pointers, len rows+1; row i spans indptr[i]..indptr[i+1]
	indices    []int     // column indices, sorted within each row
	data       []float64 // stored values, parallel to indices
}
