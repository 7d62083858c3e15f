// SPDX-License-Identifier: MIT

package basis

import "math"

// NumCoeffs is the number of coefficients of one interpolation function instance.
const NumCoeffs = 20

// Coeffs holds u1..u20 of one H instance (u1 at index 0).
type Coeffs [NumCoeffs]float64

// InterpFunc maps the control variables (Pe, Φ) to one composite parameter.
type InterpFunc func(pe, phi float64, u *Coeffs) float64

// Compile-time check that H has the InterpFunc signature.
var _ InterpFunc = H

// H is the parameter interpolation function shared by every harmonic index:
//
//	H = Σ_{m=0}^{3} (u[5m]/Pe + u[5m+1]/sqrt(Pe) + u[5m+2] + u[5m+3]·sqrt(Pe) + u[5m+4]·Pe) · Φ^m
//
// Pe must be positive. The terms are summed in the fixed order above so that
// results are reproducible to the last bit.
func H(pe, phi float64, u *Coeffs) float64 {
	sq := math.Sqrt(pe)
	term := func(m int) float64 {
		b := 5 * m
		return u[b]/pe + u[b+1]/sq + u[b+2] + u[b+3]*sq + u[b+4]*pe
	}

	return term(0) + term(1)*phi + term(2)*(phi*phi) + term(3)*(phi*phi*phi)
}
