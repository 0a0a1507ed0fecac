// SPDX-License-Identifier: MIT

// Package sparse: COO builder — ingestion half of the COO/CSR pair.
//
// Purpose:
//   - Collect (row, col, value) entries in any order, with a strict
//     finite-value policy by default.
//   - Convert deterministically into the canonical CSR form: sorted rows,
//     sorted columns, duplicates coalesced by summation, exact zeros dropped.
package sparse

import (
	"fmt"
	"math"
	"sort"
)

// cooErrorf wraps err with COO method context.
func cooErrorf(method string, err error) error {
	return fmt.Errorf("COO.%s: %w", method, err)
}

// NewCOO creates an empty rows×cols coordinate builder.
//
// Implementation:
//   - Stage 1: validate rows/cols > 0.
//   - Stage 2: resolve the numeric policy from opts.
//
// Errors: ErrBadShape on non-positive dimensions.
// Complexity: O(1).
func NewCOO(rows, cols int, opts ...Option) (*COO, error) {
	// Validate logical shape before anything else.
	if rows <= 0 || cols <= 0 {
		return nil, cooErrorf("New", ErrBadShape)
	}
	// Resolve ingestion policy once; it is fixed for the builder's lifetime.
	o := gatherOptions(opts...)

	return &COO{rows: rows, cols: cols, validate: o.validateNaNInf}, nil
}

// Rows returns the logical row count.
// Complexity: O(1).
func (c *COO) Rows() int { return c.rows }

// Cols returns the logical column count.
// Complexity: O(1).
func (c *COO) Cols() int { return c.cols }

// NNZ returns the number of appended entries (duplicates counted as stored).
// Complexity: O(1).
func (c *COO) NNZ() int { return len(c.ts) }

// Append records one (row, col, value) entry.
//
// Implementation:
//   - Stage 1: bounds check against the logical shape.
//   - Stage 2: numeric policy check (NaN/±Inf rejected when enabled).
//   - Stage 3: append in insertion order; duplicates are legal and coalesce
//     (by summation) at ToCSR time.
//
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: amortized O(1).
func (c *COO) Append(row, col int, v float64) error {
	// Bounds first: out-of-range writes are programmer/configuration errors.
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return cooErrorf("Append", ErrOutOfRange)
	}
	// Numeric policy: operators are built from finite coefficients only.
	if c.validate && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return cooErrorf("Append", ErrNaNInf)
	}
	c.ts = append(c.ts, Triple{Row: row, Col: col, Val: v})

	return nil
}

// Triples returns a row-major-sorted copy of the stored entries
// (duplicates NOT coalesced; use ToCSR().Triples() for the canonical set).
// Complexity: O(nnz log nnz) for the sort; O(nnz) space.
func (c *COO) Triples() []Triple {
	out := make([]Triple, len(c.ts))
	copy(out, c.ts)
	sortTriples(out)

	return out
}

// ToCSR converts the builder into canonical compressed-row form.
//
// Implementation:
//   - Stage 1: sort a copy of the entries by (row, col) — stable output for
//     any insertion order.
//   - Stage 2: coalesce duplicates by summation, dropping exact zeros
//     (including zeros produced by cancellation).
//   - Stage 3: build indptr/indices/data in one pass.
//
// Behavior highlights:
//   - The input builder is left untouched and remains usable.
//
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (c *COO) ToCSR() *CSR {
	// Work on a sorted copy; the builder stays untouched.
	ts := make([]Triple, len(c.ts))
	copy(ts, c.ts)
	sortTriples(ts)

	// Coalesce duplicates in place: sum runs of equal (row, col).
	coalesced := ts[:0]
	for _, t := range ts {
		last := len(coalesced) - 1
		if last >= 0 && coalesced[last].Row == t.Row && coalesced[last].Col == t.Col {
			coalesced[last].Val += t.Val // duplicate position: accumulate

			continue
		}
		coalesced = append(coalesced, t)
	}

	// Assemble CSR arrays, skipping exact zeros.
	out := &CSR{
		rows:   c.rows,
		cols:   c.cols,
		indptr: make([]int, c.rows+1),
	}
	for _, t := range coalesced {
		if t.Val == 0 {
			continue // canonical form stores no explicit zeros
		}
		out.indptr[t.Row+1]++
		out.indices = append(out.indices, t.Col)
		out.data = append(out.data, t.Val)
	}
	// Prefix-sum the per-row counts into row pointers.
	for i := 0; i < c.rows; i++ {
		out.indptr[i+1] += out.indptr[i]
	}

	return out
}

// sortTriples orders entries by (row, col) ascending. Values at equal
// positions keep their relative order (stable), which makes coalescing
// independent of comparison ties.
func sortTriples(ts []Triple) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Row != ts[j].Row {
			return ts[i].Row < ts[j].Row
		}

		return ts[i].Col < ts[j].Col
	})
}
