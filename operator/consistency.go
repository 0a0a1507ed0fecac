// SPDX-License-Identifier: MIT

// Package operator: the consistency checker — the correctness contract of
// the whole module, runnable on any grid.
//
// The checker is a verification surface, not production machinery: assembly
// derives divergence and Laplacian from the gradient (adjointness exact,
// composition within rounding), and CheckConsistency re-measures both from
// the outside rather than trusting the construction.
package operator

import (
	"math"

	"github.com/katalvlaran/mimetic/grid"
	"github.com/katalvlaran/mimetic/sparse"
)

// checkConstant is the arbitrary scalar used for the periodic constant-field
// probe; any nonzero value exercises the same cancellation.
const checkConstant = 3.5

// Report carries the maximum observed discrepancy per verified identity.
// Magnitudes are comparable against Tol, the effective tolerance
// (base tolerance scaled by the Laplacian's max-norm).
type Report struct {
	// Adjointness is max |Divergence − (−Gradientᵀ)| over all entries.
	Adjointness float64

	// Composition is max |Laplacian − Divergence·Gradient| over all entries.
	Composition float64

	// ConstantField is max |Gradient·c| for a constant field c — checked
	// (and meaningful) only when every axis is periodic; 0 otherwise.
	ConstantField float64

	// RowSums is the largest Laplacian row-sum magnitude (discrete
	// mean-preservation) — checked only when every axis is periodic.
	RowSums float64

	// Tol is the effective tolerance the discrepancies were compared against.
	Tol float64

	// Pass reports whether every checked discrepancy stayed within Tol.
	Pass bool
}

// CheckConsistency assembles gradient, divergence and Laplacian over g and
// verifies the mimetic identities.
//
// Implementation:
//   - Stage 1: build G, D, L (honoring WithCache).
//   - Stage 2: adjointness — max |D − (−Gᵀ)|.
//   - Stage 3: composition — max |L − D·G|.
//   - Stage 4 (fully periodic grids only): constant-field annihilation
//     |G·c|∞ and Laplacian row sums.
//   - Stage 5: scale the base tolerance by max(1, ‖L‖_max) and grade.
//
// Errors: ErrNilGrid; sentinels propagated from assembly.
// Complexity: O(k·N) time — all operators are difference-sparse.
func CheckConsistency(g *grid.Spec, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, operatorErrorf("CheckConsistency", ErrNilGrid)
	}
	o := gatherOptions(opts...)

	// Stage 1: assemble the three operators once.
	G, err := BuildGradient(g, opts...)
	if err != nil {
		return nil, err
	}
	D, err := BuildDivergence(g, opts...)
	if err != nil {
		return nil, err
	}
	L, err := BuildLaplacian(g, opts...)
	if err != nil {
		return nil, err
	}

	rep := &Report{}

	// Stage 2: adjointness — D vs -Gᵀ, measured, not assumed.
	gt, err := sparse.Transpose(G)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}
	negGT, err := sparse.Scale(gt, -1)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}
	rep.Adjointness, err = sparse.MaxAbsDiff(D, negGT)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}

	// Stage 3: composition — L vs D·G.
	dg, err := sparse.Mul(D, G)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}
	rep.Composition, err = sparse.MaxAbsDiff(L, dg)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}

	// Stage 4: periodic-only pins.
	if g.Periodic() {
		constant := make([]float64, g.Nodes())
		for i := range constant {
			constant[i] = checkConstant
		}
		gc, err := sparse.MatVec(G, constant)
		if err != nil {
			return nil, operatorErrorf("CheckConsistency", err)
		}
		for _, v := range gc {
			if a := math.Abs(v); a > rep.ConstantField {
				rep.ConstantField = a
			}
		}

		sums, err := sparse.RowSums(L)
		if err != nil {
			return nil, operatorErrorf("CheckConsistency", err)
		}
		for _, v := range sums {
			if a := math.Abs(v); a > rep.RowSums {
				rep.RowSums = a
			}
		}
	}

	// Stage 5: grade against the norm-scaled tolerance.
	norm, err := sparse.MaxAbs(L)
	if err != nil {
		return nil, operatorErrorf("CheckConsistency", err)
	}
	rep.Tol = o.tol * math.Max(1, norm)
	rep.Pass = rep.Adjointness <= rep.Tol &&
		rep.Composition <= rep.Tol &&
		rep.ConstantField <= rep.Tol &&
		rep.RowSums <= rep.Tol

	return rep, nil
}
