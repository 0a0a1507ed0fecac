// Package mimetic builds discrete "mimetic" differential operators —
// gradient, divergence and Laplacian — for finite-difference simulations
// on structured 1D/2D/3D grids.
//
// 🚀 What is mimetic?
//
//	A deterministic, dependency-light library that constructs sparse
//	operator matrices whose discrete vector-calculus identities hold by
//	construction:
//		• Divergence = -Gradientᵀ          (adjointness — exact, entry for entry)
//		• Laplacian  = Divergence∘Gradient (composition — exact at the 1D
//		  stencil level, within floating-point rounding on assembled grids)
//	These identities are what keep long-running physical simulations
//	(fluids, electromagnetics, heat) stable over time.
//
// ✨ Why choose mimetic?
//
//   - Derived, not re-discretized – divergence and Laplacian come from the
//     gradient algebraically, so the identities never drift with the scheme
//   - Deterministic – fixed loop orders, no global state, pure functions
//   - Verifiable – a consistency checker re-proves the identities on any
//     grid you hand it, with a configurable tolerance
//   - Sparse-native – operators come out in CSR/COO form, with a one-call
//     export into gonum's mat.Dense for downstream linear algebra
//
// Everything is organized under four subpackages:
//
//	grid/     — grid descriptions (axes, spacing, boundary kinds) & index flattening
//	sparse/   — COO/CSR matrices + the kernels assembly needs (Kron, stack, product)
//	stencil/  — 1D difference stencils per (n, h, boundary, kind) + injectable cache
//	operator/ — N-dimensional assembly (Kronecker composition) + consistency checker
//
// Quick ASCII sketch of a periodic 1D axis (n=4):
//
//	u0 ── u1 ── u2 ── u3 ──╮
//	╰──────── wraps ───────╯
//
// Quick start:
//
//	g, _ := grid.New(grid.Axis{N: 8, H: 0.5, Boundary: grid.Periodic})
//	G, _ := operator.BuildGradient(g)
//	L, _ := operator.BuildLaplacian(g)
//	rep, _ := operator.CheckConsistency(g)
//	fmt.Println(rep.Pass) // true
package mimetic
