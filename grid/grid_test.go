// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for Spec construction, validation,
// and the canonical flattening convention.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/mimetic/grid"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsTooFewNodes ensures N=1 surfaces ErrInvalidGrid.
func TestNewRejectsTooFewNodes(t *testing.T) {
	_, err := grid.New(grid.Axis{N: 1, H: 1.0, Boundary: grid.Periodic}) // n below MinNodes
	require.ErrorIs(t, err, grid.ErrInvalidGrid)                         // expect the structural sentinel
}

// TestNewRejectsNonPositiveSpacing ensures H<=0 surfaces ErrInvalidGrid.
func TestNewRejectsNonPositiveSpacing(t *testing.T) {
	_, err := grid.New(grid.Axis{N: 4, H: 0.0, Boundary: grid.Periodic}) // zero spacing
	require.ErrorIs(t, err, grid.ErrInvalidGrid)

	_, err = grid.New(grid.Axis{N: 4, H: -0.5, Boundary: grid.NonPeriodic}) // negative spacing
	require.ErrorIs(t, err, grid.ErrInvalidGrid)
}

// TestNewRejectsUnknownBoundary ensures out-of-set boundary values fail fast.
func TestNewRejectsUnknownBoundary(t *testing.T) {
	_, err := grid.New(grid.Axis{N: 4, H: 1.0, Boundary: grid.BoundaryKind(42)}) // not in the closed set
	require.ErrorIs(t, err, grid.ErrUnknownBoundary)
}

// TestNewRejectsBadDimensionality ensures 0 and 4 axes are rejected.
func TestNewRejectsBadDimensionality(t *testing.T) {
	_, err := grid.New() // zero axes
	require.ErrorIs(t, err, grid.ErrInvalidGrid)

	ax := grid.Axis{N: 3, H: 1.0, Boundary: grid.Periodic}
	_, err = grid.New(ax, ax, ax, ax) // four axes exceeds MaxDims
	require.ErrorIs(t, err, grid.ErrInvalidGrid)
}

// TestAccessors verifies Dims, Axis, Axes and Nodes on a mixed 2D grid.
func TestAccessors(t *testing.T) {
	g, err := grid.New(
		grid.Axis{N: 2, H: 0.5, Boundary: grid.Periodic},
		grid.Axis{N: 3, H: 1.0, Boundary: grid.NonPeriodic},
	)
	require.NoError(t, err)

	require.Equal(t, 2, g.Dims())  // two axes declared
	require.Equal(t, 6, g.Nodes()) // 2*3 total nodes

	ax0, err := g.Axis(0)
	require.NoError(t, err)
	require.Equal(t, 2, ax0.N)
	require.Equal(t, grid.Periodic, ax0.Boundary)

	_, err = g.Axis(2) // out of range
	require.ErrorIs(t, err, grid.ErrAxisIndex)

	axes := g.Axes()
	require.Len(t, axes, 2)
	axes[0].N = 99 // mutating the copy must not leak into the Spec
	ax0Again, err := g.Axis(0)
	require.NoError(t, err)
	require.Equal(t, 2, ax0Again.N)
}

// TestPeriodicPredicate verifies the all-axes-periodic predicate.
func TestPeriodicPredicate(t *testing.T) {
	p, err := grid.New(
		grid.Axis{N: 4, H: 1.0, Boundary: grid.Periodic},
		grid.Axis{N: 4, H: 1.0, Boundary: grid.Periodic},
	)
	require.NoError(t, err)
	require.True(t, p.Periodic())

	m, err := grid.New(
		grid.Axis{N: 4, H: 1.0, Boundary: grid.Periodic},
		grid.Axis{N: 4, H: 1.0, Boundary: grid.NonPeriodic},
	)
	require.NoError(t, err)
	require.False(t, m.Periodic())
}

// TestFlatIndexConvention pins the axis-0-fastest convention literally on a
// 2x3 grid: flat = i0 + 2*i1.
func TestFlatIndexConvention(t *testing.T) {
	g, err := grid.New(
		grid.Axis{N: 2, H: 1.0, Boundary: grid.Periodic},
		grid.Axis{N: 3, H: 1.0, Boundary: grid.Periodic},
	)
	require.NoError(t, err)

	// Literal table of the full 2x3 enumeration.
	expect := map[[2]int]int{
		{0, 0}: 0, {1, 0}: 1,
		{0, 1}: 2, {1, 1}: 3,
		{0, 2}: 4, {1, 2}: 5,
	}
	for coords, want := range expect {
		flat, err := g.FlatIndex(coords[0], coords[1])
		require.NoError(t, err)
		require.Equal(t, want, flat, "coords %v", coords)
	}
}

// TestFlatIndexErrors covers arity and range violations.
func TestFlatIndexErrors(t *testing.T) {
	g, err := grid.New(
		grid.Axis{N: 2, H: 1.0, Boundary: grid.Periodic},
		grid.Axis{N: 3, H: 1.0, Boundary: grid.Periodic},
	)
	require.NoError(t, err)

	_, err = g.FlatIndex(0) // wrong arity
	require.ErrorIs(t, err, grid.ErrFlatIndex)

	_, err = g.FlatIndex(2, 0) // coordinate out of range on axis 0
	require.ErrorIs(t, err, grid.ErrFlatIndex)

	_, err = g.FlatIndex(0, -1) // negative coordinate
	require.ErrorIs(t, err, grid.ErrFlatIndex)
}

// TestUnflattenRoundTrip verifies Unflatten inverts FlatIndex over a 3D grid.
func TestUnflattenRoundTrip(t *testing.T) {
	g, err := grid.New(
		grid.Axis{N: 2, H: 1.0, Boundary: grid.Periodic},
		grid.Axis{N: 3, H: 1.0, Boundary: grid.NonPeriodic},
		grid.Axis{N: 4, H: 1.0, Boundary: grid.Periodic},
	)
	require.NoError(t, err)

	for flat := 0; flat < g.Nodes(); flat++ {
		idx, err := g.Unflatten(flat)
		require.NoError(t, err)
		back, err := g.FlatIndex(idx...)
		require.NoError(t, err)
		require.Equal(t, flat, back) // round-trip must be the identity
	}

	_, err = g.Unflatten(g.Nodes()) // one past the end
	require.ErrorIs(t, err, grid.ErrFlatIndex)

	_, err = g.Unflatten(-1)
	require.ErrorIs(t, err, grid.ErrFlatIndex)
}

// TestBoundaryKindString covers the Stringer including the unknown branch.
func TestBoundaryKindString(t *testing.T) {
	require.Equal(t, "Periodic", grid.Periodic.String())
	require.Equal(t, "NonPeriodic", grid.NonPeriodic.String())
	require.Equal(t, "BoundaryKind(?)", grid.BoundaryKind(7).String())
}
