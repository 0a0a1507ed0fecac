// SPDX-License-Identifier: MIT

// Package stencil: domain types. Only the operator-kind variant lives here;
// behavior is in build.go and cache.go per the global conventions.
package stencil

// Kind selects which differential operator a stencil discretizes.
// It is a closed tagged variant: the operator set is fixed, and every switch
// over Kind in this module is exhaustive with a loud default branch, so a
// missing combination is a compile-review error rather than silent fallthrough.
type Kind int

const (
	// Gradient is the first-derivative operator (node samples → adjacent
	// differences).
	Gradient Kind = iota

	// Divergence is the adjoint first-derivative operator, defined as
	// -Gradientᵀ under the grid's discrete inner product.
	Divergence

	// Laplacian is the second-derivative operator, defined as
	// Divergence∘Gradient.
	Laplacian
)

// String implements fmt.Stringer for diagnostics and test output.
// Complexity: O(1).
func (k Kind) String() string {
	switch k {
	case Gradient:
		return "Gradient"
	case Divergence:
		return "Divergence"
	case Laplacian:
		return "Laplacian"
	default:
		return "Kind(?)"
	}
}

// Valid reports whether k is a member of the closed operator set.
// Complexity: O(1).
func (k Kind) Valid() bool {
	return k == Gradient || k == Divergence || k == Laplacian
}
