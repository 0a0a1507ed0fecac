// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Dimension violations reuse sparse.ErrDimensionMismatch and grid-shape
// violations arrive as grid.ErrInvalidGrid (single taxonomy across the
// module); this file adds only the assembler-specific sentinel.

package operator

import "errors"

// ErrNilGrid indicates that a nil *grid.Spec was passed to an assembly or
// consistency entry point.
var ErrNilGrid = errors.New("operator: grid is nil")
