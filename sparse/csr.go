// SPDX-License-Identifier: MIT

// Package sparse: CSR accessors — the immutable, kernel-facing half of the
// COO/CSR pair. Construction goes through COO.ToCSR or the kernels; there is
// deliberately no public mutating surface on CSR.
package sparse

import (
	"fmt"
	"sort"
)

// csrErrorf wraps err with CSR method context.
func csrErrorf(method string, err error) error {
	return fmt.Errorf("CSR.%s: %w", method, err)
}

// newShell allocates an empty rows×cols CSR with row pointers in place.
// Internal constructor for kernels; shape is assumed pre-validated.
func newShell(rows, cols int) *CSR {
	return &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}
}

// Rows returns the logical row count.
// Complexity: O(1).
func (a *CSR) Rows() int { return a.rows }

// Cols returns the logical column count.
// Complexity: O(1).
func (a *CSR) Cols() int { return a.cols }

// NNZ returns the stored entry count (exact zeros are never stored).
// Complexity: O(1).
func (a *CSR) NNZ() int { return len(a.data) }

// At retrieves the logical value at (row, col); absent entries read as 0.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: binary search within the row's sorted column slice.
//
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(log k) for k entries in the row.
func (a *CSR) At(row, col int) (float64, error) {
	// Bounds check against the logical shape.
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return 0, csrErrorf("At", ErrOutOfRange)
	}
	// Binary-search the sorted column slice of this row.
	lo, hi := a.indptr[row], a.indptr[row+1]
	seg := a.indices[lo:hi]
	k := sort.SearchInts(seg, col)
	if k < len(seg) && seg[k] == col {
		return a.data[lo+k], nil
	}

	// Structural zero.
	return 0, nil
}

// Triples returns the canonical ordered entry set: row-major, columns
// ascending within each row. This is the interchange format assembled
// operators are exported and compared in.
// Complexity: O(nnz) time and space.
func (a *CSR) Triples() []Triple {
	out := make([]Triple, 0, len(a.data))
	for i := 0; i < a.rows; i++ { // fixed row order
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			out = append(out, Triple{Row: i, Col: a.indices[p], Val: a.data[p]})
		}
	}

	return out
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows + nnz).
func (a *CSR) Clone() *CSR {
	out := &CSR{
		rows:    a.rows,
		cols:    a.cols,
		indptr:  make([]int, len(a.indptr)),
		indices: make([]int, len(a.indices)),
		data:    make([]float64, len(a.data)),
	}
	copy(out.indptr, a.indptr)
	copy(out.indices, a.indices)
	copy(out.data, a.data)

	return out
}

// String implements fmt.Stringer for debugging: shape, nnz, and the entry
// list in canonical order.
// Complexity: O(nnz) for string construction.
func (a *CSR) String() string {
	s := fmt.Sprintf("CSR %dx%d nnz=%d\n", a.rows, a.cols, len(a.data))
	for i := 0; i < a.rows; i++ {
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			s += fmt.Sprintf("(%d,%d)=%g\n", i, a.indices[p], a.data[p])
		}
	}

	return s
}
