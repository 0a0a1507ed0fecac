// SPDX-License-Identifier: MIT

// Package sparse: converters between the package's CSR/COO forms and
// gonum's mat.Dense, the dense linear-algebra currency of the numeric Go
// ecosystem. Exporting operators this way lets downstream solvers consume
// them without any format translation.
package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense materializes a as a gonum mat.Dense.
//
// Behavior highlights:
//   - Absent entries become explicit zeros; intended for small grids,
//     verification and export — a 3D operator can be large, so callers
//     choose when densifying is affordable.
//
// Errors: ErrNilMatrix.
// Complexity: O(rows·cols) time and space.
func ToDense(a *CSR) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	d := mat.NewDense(a.rows, a.cols, nil) // zero-initialized backing
	for i := 0; i < a.rows; i++ {          // fixed row order
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			d.Set(i, a.indices[p], a.data[p])
		}
	}

	return d, nil
}

// FromDense ingests a gonum matrix into a COO builder, skipping entries with
// |v| <= eps (eps < 0 is treated as 0). The default finite-value policy
// applies unless overridden via opts.
//
// Errors: ErrNilMatrix for nil input, ErrBadShape, ErrNaNInf (policy).
// Complexity: O(rows·cols).
func FromDense(d mat.Matrix, eps float64, opts ...Option) (*COO, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	if eps < 0 {
		eps = 0
	}
	rows, cols := d.Dims()
	c, err := NewCOO(rows, cols, opts...)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	for i := 0; i < rows; i++ { // fixed i→j order
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if math.Abs(v) <= eps {
				continue // below threshold: structural zero
			}
			if err = c.Append(i, j, v); err != nil {
				return nil, sparseErrorf(opFromDense, err)
			}
		}
	}

	return c, nil
}
