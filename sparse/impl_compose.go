// SPDX-License-Identifier: MIT

// Package sparse: structural composition kernels — Identity, Kronecker
// product, and row/column block stacking. These are the building blocks the
// operator assembler combines per-axis stencils with.
//
// Determinism & Policy:
//   - Same contract as the arithmetic kernels: pure, fixed loop orders,
//     fresh canonical-form results.
package sparse

// Operation name constants for unified error wrapping (no magic strings).
const (
	opIdentity = "Identity"
	opKron     = "Kron"
	opVStack   = "VStack"
	opHStack   = "HStack"
)

// Identity returns the n×n identity matrix in CSR form.
// Errors: ErrBadShape for n <= 0.
// Complexity: O(n).
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, sparseErrorf(opIdentity, ErrBadShape)
	}
	out := &CSR{
		rows:    n,
		cols:    n,
		indptr:  make([]int, n+1),
		indices: make([]int, n),
		data:    make([]float64, n),
	}
	for i := 0; i < n; i++ { // fixed i order; one diagonal write per row
		out.indptr[i+1] = i + 1
		out.indices[i] = i
		out.data[i] = 1.0
	}

	return out, nil
}

// Kron returns the Kronecker (tensor) product a ⊗ b as a fresh CSR.
//
// Index convention (matches grid.FlatIndex — the SECOND factor varies
// fastest):
//
//	(a⊗b)[i·rb + r, j·cb + c] = a[i,j] · b[r,c]
//
// so assembling I ⊗ S places S on the fastest-varying axis.
//
// Implementation:
//   - Stage 1: validate operands non-nil.
//   - Stage 2: walk result rows in order (outer: rows of a, inner: rows of
//     b); within one result row, a's sorted columns give ascending column
//     BLOCKS and b's sorted columns order entries inside each block, so the
//     output is canonical without a sort.
//
// Errors: ErrNilMatrix.
// Complexity: O(ra·rb + nnz(a)·nnz-per-row(b) summed) = O(rows(out) + nnz(out)).
func Kron(a, b *CSR) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, sparseErrorf(opKron, err)
	}

	out := newShell(a.rows*b.rows, a.cols*b.cols)
	out.indices = make([]int, 0, len(a.indices)*len(b.indices))
	out.data = make([]float64, 0, len(a.data)*len(b.data))

	row := 0
	for i := 0; i < a.rows; i++ { // block-row from a
		for r := 0; r < b.rows; r++ { // sub-row from b
			for pa := a.indptr[i]; pa < a.indptr[i+1]; pa++ { // column blocks ascend
				j, av := a.indices[pa], a.data[pa]
				base := j * b.cols
				for pb := b.indptr[r]; pb < b.indptr[r+1]; pb++ { // inside-block ascend
					out.indices = append(out.indices, base+b.indices[pb])
					out.data = append(out.data, av*b.data[pb])
				}
			}
			row++
			out.indptr[row] = len(out.indices)
		}
	}

	return out, nil
}

// VStack concatenates blocks vertically (row-block composition). All blocks
// must share a column count. The k-axis gradient is VStack of its per-axis
// partial gradients.
//
// Errors: ErrNilMatrix (no blocks or nil block), ErrDimensionMismatch.
// Complexity: O(Σ rows + Σ nnz).
func VStack(blocks ...*CSR) (*CSR, error) {
	if len(blocks) == 0 {
		return nil, sparseErrorf(opVStack, ErrNilMatrix)
	}
	for _, blk := range blocks {
		if err := ValidateNotNil(blk); err != nil {
			return nil, sparseErrorf(opVStack, err)
		}
		if blk.cols != blocks[0].cols {
			return nil, sparseErrorf(opVStack, ErrDimensionMismatch)
		}
	}

	totalRows := 0
	for _, blk := range blocks {
		totalRows += blk.rows
	}
	out := newShell(totalRows, blocks[0].cols)

	row := 0
	for _, blk := range blocks { // blocks in declaration order
		for i := 0; i < blk.rows; i++ {
			out.indices = append(out.indices, blk.indices[blk.indptr[i]:blk.indptr[i+1]]...)
			out.data = append(out.data, blk.data[blk.indptr[i]:blk.indptr[i+1]]...)
			row++
			out.indptr[row] = len(out.indices)
		}
	}

	return out, nil
}

// HStack concatenates blocks horizontally (column-block composition). All
// blocks must share a row count. The k-axis divergence is HStack of its
// per-axis partial divergences.
//
// Errors: ErrNilMatrix (no blocks or nil block), ErrDimensionMismatch.
// Complexity: O(rows·len(blocks) + Σ nnz).
func HStack(blocks ...*CSR) (*CSR, error) {
	if len(blocks) == 0 {
		return nil, sparseErrorf(opHStack, ErrNilMatrix)
	}
	for _, blk := range blocks {
		if err := ValidateNotNil(blk); err != nil {
			return nil, sparseErrorf(opHStack, err)
		}
		if blk.rows != blocks[0].rows {
			return nil, sparseErrorf(opHStack, ErrDimensionMismatch)
		}
	}

	totalCols := 0
	for _, blk := range blocks {
		totalCols += blk.cols
	}
	out := newShell(blocks[0].rows, totalCols)

	for i := 0; i < blocks[0].rows; i++ { // result row i gathers row i of each block
		offset := 0
		for _, blk := range blocks { // block order fixes ascending column offsets
			for p := blk.indptr[i]; p < blk.indptr[i+1]; p++ {
				out.indices = append(out.indices, offset+blk.indices[p])
				out.data = append(out.data, blk.data[p])
			}
			offset += blk.cols
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}
