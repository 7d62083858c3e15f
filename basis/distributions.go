// SPDX-License-Identifier: MIT

package basis

import "math"

var (
	sqrt2   = math.Sqrt(2)
	sqrt2Pi = math.Sqrt(2 * math.Pi)
)

// Gauss is the normal density with mean mu and standard deviation om.
//
//	Gauss(r) = 1/(sqrt(2π)·om) · exp(-1/2·((r-mu)/om)²)
//
// om must be positive; om == 0 produces NaN or ±Inf.
func Gauss(r, mu, om float64) float64 {
	z := (r - mu) / om

	return 1 / (sqrt2Pi * om) * math.Exp(-1.0/2*(z*z))
}

// EMG is the exponentially modified Gaussian density: a Gaussian (mu, om)
// convolved with an exponential of rate la.
//
//	EMG(r) = la/2 · exp(la/2·(la·om² − 2(r−mu))) · erfc((la·om² − (r−mu))/sqrt(2)/om)
//
// om must be positive. la may take either sign; its range is fixed upstream by
// the fit.
func EMG(r, mu, om, la float64) float64 {
	lom2 := la * (om * om)

	return la / 2 * math.Exp(la/2*(lom2-2*(r-mu))) *
		math.Erfc((lom2-(r-mu))/sqrt2/om)
}
