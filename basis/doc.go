// SPDX-License-Identifier: MIT

// Package basis holds the closed-form scalar functions the pair distribution
// model is built from.
//
// Two families live here:
//
//   - Distance shapes: the Gaussian density (Gauss), the exponentially
//     modified Gaussian (EMG) and ten named composites that multiply or blend
//     them with low-order polynomials in r. Each Fourier coefficient of g is one
//     of these composites evaluated over the particle distance r.
//   - The interpolation function H(Pe, Φ; u1..u20), a cubic polynomial in the
//     packing density whose coefficients are Laurent-like in sqrt(Pe). Every
//     composite parameter is one H evaluation with its own 20 coefficients.
//
// Composites form a closed set. A Shape names one of them and knows its arity;
// Shape.Bind turns a parameter slice into the matching concrete type (EMGTanh,
// GaussA, ...), so a bound Coefficient always carries exactly the parameters
// its formula needs:
//
//	c, err := basis.ShapeEMGLin.Bind([]float64{a, mu, om, la, l1})
//	if err != nil { ... }                 // ErrArity on a wrong count
//	ys := basis.Eval(c, rs, nil)          // vectorized over r
//
// All functions are pure. Non-positive widths (om <= 0) or Pe <= 0 yield IEEE
// NaN/±Inf rather than an error; range policy belongs to callers.
package basis
