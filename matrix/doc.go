// SPDX-License-Identifier: MIT

// Package matrix provides the dense two-dimensional float64 storage used for
// angle grids and for the per-distance slices of g.
//
// What & Why:
//
//	Dense is a row-major matrix in one flat buffer. Public accessors (At/Set)
//	return errors instead of panicking; the hot kernel (AddScaledProductInPlace)
//	work on the flat buffer directly and delegate the inner loops to gonum's
//	floats package. All loops run in a fixed order, so results are
//	deterministic to the last bit.
//
// Complexity:
//
//	Rows, Cols, At and Set are O(1). Copy, Apply, AddScaledProductInPlace and
//	Meshgrid are O(rows*cols).
package matrix
