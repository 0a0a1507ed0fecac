// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the arithmetic kernels:
// Add, Sub, Scale, Mul, Transpose, MatVec, MaxAbsDiff, MaxAbs, RowSums.
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mimetic/sparse"
	"github.com/stretchr/testify/require"
)

// TestAddSubLiteral pins element-wise addition and subtraction on a small case.
func TestAddSubLiteral(t *testing.T) {
	a := mustCSR(t, 2, 2, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 1, Val: 2.0},
		{Row: 1, Col: 1, Val: 3.0},
	})
	b := mustCSR(t, 2, 2, []sparse.Triple{
		{Row: 0, Col: 1, Val: 5.0},
		{Row: 1, Col: 0, Val: -1.0},
		{Row: 1, Col: 1, Val: -3.0}, // cancels a's (1,1)
	})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 1, Val: 7.0},
		{Row: 1, Col: 0, Val: -1.0},
	}, sum.Triples()) // (1,1) cancelled exactly and was dropped

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 1, Val: -3.0},
		{Row: 1, Col: 0, Val: 1.0},
		{Row: 1, Col: 1, Val: 6.0},
	}, diff.Triples())
}

// TestAddShapeMismatch ensures shape guards fire.
func TestAddShapeMismatch(t *testing.T) {
	a := mustCSR(t, 2, 2, nil)
	b := mustCSR(t, 2, 3, nil)
	_, err := sparse.Add(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.Add(nil, b)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestScale covers plain scaling, zero collapse, and the finite-factor guard.
func TestScale(t *testing.T) {
	a := mustCSR(t, 2, 2, []sparse.Triple{{Row: 1, Col: 0, Val: 4.0}})

	half, err := sparse.Scale(a, 0.5)
	require.NoError(t, err)
	v, err := half.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	zero, err := sparse.Scale(a, 0.0)
	require.NoError(t, err)
	require.Equal(t, 0, zero.NNZ()) // everything vanished

	_, err = sparse.Scale(a, math.NaN())
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}

// TestTransposeLiteral pins aᵀ on a rectangular case.
func TestTransposeLiteral(t *testing.T) {
	a := mustCSR(t, 2, 3, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 2, Val: 2.0},
		{Row: 1, Col: 1, Val: 3.0},
	})

	at, err := sparse.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 1, Col: 1, Val: 3.0},
		{Row: 2, Col: 0, Val: 2.0},
	}, at.Triples())
}

// TestTransposeInvolution verifies (aᵀ)ᵀ == a on a denser case.
func TestTransposeInvolution(t *testing.T) {
	a := mustCSR(t, 3, 3, []sparse.Triple{
		{Row: 0, Col: 1, Val: -1.0},
		{Row: 1, Col: 0, Val: 2.5},
		{Row: 1, Col: 2, Val: -2.5},
		{Row: 2, Col: 2, Val: 7.0},
	})
	at, err := sparse.Transpose(a)
	require.NoError(t, err)
	att, err := sparse.Transpose(at)
	require.NoError(t, err)
	require.Equal(t, a.Triples(), att.Triples())
}

// TestMulLiteral pins a 2x3 · 3x2 product against hand-computed values.
func TestMulLiteral(t *testing.T) {
	a := mustCSR(t, 2, 3, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 1, Val: 2.0},
		{Row: 1, Col: 2, Val: 3.0},
	})
	b := mustCSR(t, 3, 2, []sparse.Triple{
		{Row: 0, Col: 0, Val: 4.0},
		{Row: 1, Col: 0, Val: 5.0},
		{Row: 1, Col: 1, Val: 6.0},
		{Row: 2, Col: 1, Val: 7.0},
	})

	p, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triple{
		{Row: 0, Col: 0, Val: 14.0}, // 1*4 + 2*5
		{Row: 0, Col: 1, Val: 12.0}, // 2*6
		{Row: 1, Col: 1, Val: 21.0}, // 3*7
	}, p.Triples())
}

// TestMulIncompatible ensures the inner-dimension guard fires.
func TestMulIncompatible(t *testing.T) {
	a := mustCSR(t, 2, 3, nil)
	b := mustCSR(t, 2, 2, nil)
	_, err := sparse.Mul(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestMulIdentityNeutral verifies I·a == a == a·I.
func TestMulIdentityNeutral(t *testing.T) {
	a := mustCSR(t, 3, 3, []sparse.Triple{
		{Row: 0, Col: 2, Val: -1.5},
		{Row: 2, Col: 0, Val: 2.0},
	})
	eye, err := sparse.Identity(3)
	require.NoError(t, err)

	left, err := sparse.Mul(eye, a)
	require.NoError(t, err)
	require.Equal(t, a.Triples(), left.Triples())

	right, err := sparse.Mul(a, eye)
	require.NoError(t, err)
	require.Equal(t, a.Triples(), right.Triples())
}

// TestMatVec pins y = a·x and its guards.
func TestMatVec(t *testing.T) {
	a := mustCSR(t, 2, 3, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 2, Val: -1.0},
		{Row: 1, Col: 1, Val: 2.0},
	})

	y, err := sparse.MatVec(a, []float64{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{-2.0, 8.0}, y) // 3-5 and 2*4

	_, err = sparse.MatVec(a, []float64{1, 2}) // wrong length
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MatVec(a, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMaxAbsDiff covers overlapping, one-sided, and identical entries.
func TestMaxAbsDiff(t *testing.T) {
	a := mustCSR(t, 2, 2, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 1, Col: 1, Val: -4.0},
	})
	b := mustCSR(t, 2, 2, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1.5},
		{Row: 0, Col: 1, Val: 2.0}, // present only in b
	})

	d, err := sparse.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, d) // the (1,1) entry missing from b dominates

	same, err := sparse.MaxAbsDiff(a, a)
	require.NoError(t, err)
	require.Equal(t, 0.0, same)
}

// TestMaxAbsAndRowSums pins the norm helper and per-row sums.
func TestMaxAbsAndRowSums(t *testing.T) {
	a := mustCSR(t, 2, 3, []sparse.Triple{
		{Row: 0, Col: 0, Val: -3.0},
		{Row: 0, Col: 1, Val: 1.0},
		{Row: 1, Col: 2, Val: 2.0},
	})

	n, err := sparse.MaxAbs(a)
	require.NoError(t, err)
	require.Equal(t, 3.0, n)

	sums, err := sparse.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{-2.0, 2.0}, sums)
}
