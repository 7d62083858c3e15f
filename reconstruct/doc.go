// SPDX-License-Identifier: MIT

// Package reconstruct evaluates the pair distribution function
// g(r, φ1, φ2; Pe, Φ) from a parameter table.
//
// 🚀 What it computes
//
//	g(r, φ1, φ2) = Σ_{h,j=0}^{3} c_{1hj}(r)·cos(hφ1)·cos(jφ2)
//	             + Σ_{h,j=1}^{3} c_{2hj}(r)·sin(hφ1)·sin(jφ2)
//
//	Each coefficient c_{khj} is the composite registered for (k,h,j) with its
//	parameters p_i = H(Pe, Φ; row_i) taken from the table.
//
// ⚙️ Usage:
//
//	tbl, err := table.LoadFile("Interpolation_parameters.csv")
//	rc, err := reconstruct.New(tbl)                    // validates the table once
//	grid, err := reconstruct.NewAxesGrid(phi1, phi2)   // or NewMeshGrid(X, Y)
//	g, err := rc.Compute([]float64{1.0}, grid, 10, 0.2)
//	v, _ := g.At(0, a, b)                               // g(r[0], φ1[a], φ2[b])
//
// Guarantees:
//
//   - A Reconstructor is immutable; Compute may run from any number of
//     goroutines at once.
//   - Output is bit-identical for identical inputs, whatever WithWorkers says:
//     contributions are computed in parallel but summed in a fixed order.
//   - Table problems surface from New, shape problems and Pe <= 0 from Compute,
//     always before any output is produced.
//
// Advise reports physically implausible inputs such as a negative Pe or a
// distance outside the fitted support; Compute never calls it.
package reconstruct
