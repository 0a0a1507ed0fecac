// SPDX-License-Identifier: MIT
// Package stencil: sentinel error set.
// Grid-shape violations reuse grid.ErrInvalidGrid (single taxonomy across
// the module); this file adds only the stencil-specific sentinels.

package stencil

import "errors"

var (
	// ErrUnsupportedBoundary is returned when a boundary kind outside the
	// closed {Periodic, NonPeriodic} set is requested for any operator kind.
	ErrUnsupportedBoundary = errors.New("stencil: unsupported boundary kind")

	// ErrUnknownKind is returned when a Kind value outside the closed
	// {Gradient, Divergence, Laplacian} set is requested.
	ErrUnknownKind = errors.New("stencil: unknown operator kind")
)
