// SPDX-License-Identifier: MIT

// Package sparse: linear-algebra kernels over CSR operands.
//
// Purpose:
//   - Declare the canonical kernels used by operator assembly and the
//     consistency checker: Add, Sub, Scale, Mul, Transpose, MatVec,
//     MaxAbsDiff, RowSums.
//
// Determinism & Policy:
//   - All kernels use fixed loop orders (row-major, two-pointer merges),
//     perform strict fail-fast validation via the central validators, and
//     allocate a fresh result each call — operands are never mutated.
//   - Exact zeros produced by cancellation are dropped, keeping every result
//     in canonical form (no stored zeros).
package sparse

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opMaxAbsDiff = "MaxAbsDiff"
	opMaxAbs     = "MaxAbs"
	opRowSums    = "RowSums"
)

// sparseErrorf wraps err with an operation tag, preserving the sentinel via
// %w so errors.Is keeps matching. Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addScaled computes out = a + beta*b for beta ∈ {+1, -1}; shared core of
// Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: per-row two-pointer merge of the sorted column slices;
//     coinciding columns sum (dropping exact cancellation), disjoint columns
//     copy through.
//
// Complexity: O(rows + nnz(a) + nnz(b)) time and space.
func addScaled(a, b *CSR, beta float64, opTag string) (*CSR, error) {
	// Shapes must match exactly.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	out := newShell(a.rows, a.cols)
	for i := 0; i < a.rows; i++ { // fixed row order
		pa, ea := a.indptr[i], a.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		// Two-pointer merge over sorted columns.
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && a.indices[pa] < b.indices[pb]):
				out.indices = append(out.indices, a.indices[pa])
				out.data = append(out.data, a.data[pa])
				pa++
			case pa >= ea || b.indices[pb] < a.indices[pa]:
				out.indices = append(out.indices, b.indices[pb])
				out.data = append(out.data, beta*b.data[pb])
				pb++
			default: // same column: combine, drop exact cancellation
				v := a.data[pa] + beta*b.data[pb]
				if v != 0 {
					out.indices = append(out.indices, a.indices[pa])
					out.data = append(out.data, v)
				}
				pa++
				pb++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Add returns the element-wise sum a + b as a fresh CSR.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + nnz(a) + nnz(b)).
func Add(a, b *CSR) (*CSR, error) {
	return addScaled(a, b, 1, opAdd)
}

// Sub returns the element-wise difference a − b as a fresh CSR.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + nnz(a) + nnz(b)).
func Sub(a, b *CSR) (*CSR, error) {
	return addScaled(a, b, -1, opSub)
}

// Scale returns alpha·a as a fresh CSR.
//
// Behavior highlights:
//   - alpha must be finite (ErrNaNInf otherwise); alpha == 0 yields the
//     empty matrix of the same shape (canonical form stores no zeros).
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(rows + nnz).
func Scale(a *CSR, alpha float64) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	// Scaling by NaN/±Inf would poison the canonical form.
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, sparseErrorf(opScale, ErrNaNInf)
	}
	out := newShell(a.rows, a.cols)
	if alpha == 0 {
		return out, nil // all entries vanish; empty canonical matrix
	}
	out.indices = make([]int, len(a.indices))
	out.data = make([]float64, len(a.data))
	copy(out.indptr, a.indptr)
	copy(out.indices, a.indices)
	for k, v := range a.data { // single flat pass, deterministic
		out.data[k] = alpha * v
	}

	return out, nil
}

// Transpose returns aᵀ as a fresh CSR.
//
// Implementation:
//   - Stage 1: count entries per source column → row pointers of aᵀ.
//   - Stage 2: place entries walking source rows in order; within each
//     result row, source-row order yields ascending columns automatically.
//
// Errors: ErrNilMatrix.
// Complexity: O(rows + cols + nnz) time and space.
func Transpose(a *CSR) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	out := &CSR{
		rows:    a.cols,
		cols:    a.rows,
		indptr:  make([]int, a.cols+1),
		indices: make([]int, len(a.indices)),
		data:    make([]float64, len(a.data)),
	}
	// Count entries landing in each transposed row (= source column).
	for _, c := range a.indices {
		out.indptr[c+1]++
	}
	// Prefix-sum into row pointers.
	for i := 0; i < a.cols; i++ {
		out.indptr[i+1] += out.indptr[i]
	}
	// Scatter pass: next write offset per transposed row.
	next := make([]int, a.cols)
	copy(next, out.indptr[:a.cols])
	for i := 0; i < a.rows; i++ { // fixed source-row order keeps columns sorted
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			c := a.indices[p]
			dst := next[c]
			out.indices[dst] = i
			out.data[dst] = a.data[p]
			next[c]++
		}
	}

	return out, nil
}

// Mul returns the matrix product a·b as a fresh CSR.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: classic row-by-row scatter/gather (SMMP): accumulate row i of
//     the result in a dense workspace indexed by column, tracking touched
//     columns; emit them in ascending order, dropping exact zeros.
//
// Determinism:
//   - Touched columns are sorted before emission, so output is independent
//     of accumulation order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + Σ_i Σ_{k∈row i(a)} nnz(row k(b))) time, O(b.Cols) workspace.
func Mul(a, b *CSR) (*CSR, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	out := newShell(a.rows, b.cols)
	acc := make([]float64, b.cols) // dense accumulator for one result row
	touched := make([]int, 0, b.cols)
	mark := make([]bool, b.cols) // tracks which accumulator slots are live

	for i := 0; i < a.rows; i++ { // fixed row order
		// Accumulate contributions: row i of a against rows of b.
		for pa := a.indptr[i]; pa < a.indptr[i+1]; pa++ {
			k, av := a.indices[pa], a.data[pa]
			for pb := b.indptr[k]; pb < b.indptr[k+1]; pb++ {
				c := b.indices[pb]
				if !mark[c] {
					mark[c] = true
					touched = append(touched, c)
				}
				acc[c] += av * b.data[pb]
			}
		}
		// Emit in ascending column order for canonical form.
		insertionSortInts(touched)
		for _, c := range touched {
			if acc[c] != 0 { // drop exact cancellation
				out.indices = append(out.indices, c)
				out.data = append(out.data, acc[c])
			}
			acc[c] = 0 // reset workspace for the next row
			mark[c] = false
		}
		touched = touched[:0]
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// insertionSortInts sorts a short int slice in place. Result rows of
// difference operators hold a handful of entries, where insertion sort beats
// the generic sort by a wide margin and allocates nothing.
func insertionSortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// MatVec returns y = a·x as a fresh slice.
// Errors: ErrNilMatrix (nil a or x), ErrDimensionMismatch (len(x) != a.Cols).
// Complexity: O(rows + nnz).
func MatVec(a *CSR, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.cols); err != nil {
		return nil, sparseErrorf(opMatVec, err)
	}
	y := make([]float64, a.rows)
	for i := 0; i < a.rows; i++ { // fixed row order
		sum := 0.0
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			sum += a.data[p] * x[a.indices[p]]
		}
		y[i] = sum
	}

	return y, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]| over the full logical shape
// (entries present in only one operand count at their absolute value).
// This is the discrepancy measure the consistency checker reports.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + nnz(a) + nnz(b)).
func MaxAbsDiff(a, b *CSR) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, sparseErrorf(opMaxAbsDiff, err)
	}
	maxDiff := 0.0
	track := func(d float64) {
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	for i := 0; i < a.rows; i++ { // two-pointer merge per row
		pa, ea := a.indptr[i], a.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && a.indices[pa] < b.indices[pb]):
				track(a.data[pa]) // entry only in a
				pa++
			case pa >= ea || b.indices[pb] < a.indices[pa]:
				track(b.data[pb]) // entry only in b
				pb++
			default:
				track(a.data[pa] - b.data[pb])
				pa++
				pb++
			}
		}
	}

	return maxDiff, nil
}

// MaxAbs returns max_{i,j} |a[i,j]| — the operator's max-norm, used to scale
// checker tolerances.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func MaxAbs(a *CSR) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, sparseErrorf(opMaxAbs, err)
	}
	maxAbs := 0.0
	for _, v := range a.data { // single flat pass
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	return maxAbs, nil
}

// RowSums returns the per-row sums of a — used by the checker to pin the
// Laplacian's discrete mean-preservation (all-zero row sums).
// Errors: ErrNilMatrix.
// Complexity: O(rows + nnz).
func RowSums(a *CSR) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opRowSums, err)
	}
	sums := make([]float64, a.rows)
	for i := 0; i < a.rows; i++ {
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			sums[i] += a.data[p]
		}
	}

	return sums, nil
}
