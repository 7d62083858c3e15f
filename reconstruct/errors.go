// SPDX-License-Identifier: MIT

package reconstruct

import "errors"

var (
	// ErrShape indicates an unusable angle grid or distance vector: an empty
	// axis, a nil mesh, two meshes of different shape, or no distances.
	ErrShape = errors.New("reconstruct: unsupported angle or distance shape")

	// ErrNonPositivePeclet indicates Pe <= 0 or a non-finite Pe.
	ErrNonPositivePeclet = errors.New("reconstruct: Peclet number must be positive")

	// ErrNilTable indicates New was called without a table.
	ErrNilTable = errors.New("reconstruct: nil parameter table")

	// ErrInvalidIndex indicates WithIndices named an index outside the series
	// or named one twice.
	ErrInvalidIndex = errors.New("reconstruct: invalid harmonic index")
)

// Advisory domain warnings returned by Advise. They never stop a computation.
var (
	// ErrUnphysicalPeclet flags a negative Peclet number.
	ErrUnphysicalPeclet = errors.New("reconstruct: unphysical Peclet number")

	// ErrUnphysicalDensity flags a packing density outside [0, 1].
	ErrUnphysicalDensity = errors.New("reconstruct: unphysical packing density")

	// ErrOutsideSupport flags a distance outside the fitted range.
	ErrOutsideSupport = errors.New("reconstruct: distance outside approximation bounds")
)
