// SPDX-License-Identifier: MIT

// Package harmonic enumerates the harmonic indices (k, h, j) of the double
// Fourier series of g and holds the two static registries keyed by them.
//
// k selects the angular symmetry class: k=1 is cos(hφ1)·cos(jφ2) with
// h, j ∈ {0..3}; k=2 is sin(hφ1)·sin(jφ2) with h, j ∈ {1..3}. That is 16 + 9 =
// 25 valid indices; every other triple is invalid and has no registry entry.
//
// For each valid index the registry fixes:
//
//   - FourierFitFuncs: the basis.Shape of that Fourier coefficient (ShapeOf).
//   - ParameterFitFuncs: one basis.H per composite parameter (ParameterFuncs);
//     its length is the authoritative parameter count (Arity) and equals the
//     number of coefficient rows a table must hold for the index.
//
// Lookups go through Index.Ordinal, a dense 0..24 slot, so there are no maps
// and no mutable state. The registries are safe for concurrent use.
package harmonic
