// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels, optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX); callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonRectangular indicates rows of differing lengths in NewFromRows.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)
