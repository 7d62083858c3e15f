// SPDX-License-Identifier: MIT

package reconstruct

import "fmt"

// Fitted support of the coefficient table.
const (
	SupportMin = 0.0
	SupportMax = 10.0
)

// Advise returns one advisory error per implausible input: a negative Pe, a
// density outside [0, 1], and each distance outside [SupportMin, SupportMax].
// A nil result means nothing to report. Advise never blocks a computation and
// Compute does not call it.
func Advise(r []float64, pe, phi float64) []error {
	var out []error
	if pe < 0 {
		out = append(out, fmt.Errorf("Pe=%g: %w", pe, ErrUnphysicalPeclet))
	}
	if phi < 0 || phi > 1 {
		out = append(out, fmt.Errorf("Phi=%g: %w", phi, ErrUnphysicalDensity))
	}
	for i, v := range r {
		if v < SupportMin || v > SupportMax {
			out = append(out, fmt.Errorf("r[%d]=%g: %w", i, v, ErrOutsideSupport))
		}
	}

	return out
}
