// Package pairdist reconstructs the pair distribution function
// g(r, φ1, φ2; Pe, Φ) of two-dimensional active Brownian ellipsoids from a
// table of fit coefficients.
//
// 🚀 What is pairdist?
//
//	The angular dependence of g is a truncated double Fourier series in the
//	two particle orientations. Each Fourier coefficient is a closed-form
//	function of the distance r (a Gaussian or exponentially modified Gaussian
//	composite), and each of its parameters is interpolated in the Peclet
//	number Pe and the packing density Φ.
//
// Under the hood, everything is organized under these subpackages:
//
//	basis/        Gauss, EMG, the interpolation function H and the ten composites
//	harmonic/     harmonic indices (k,h,j) and the registry of composites per index
//	table/        the parameter table and its CSV coefficient source
//	matrix/       dense row-major storage for angle grids and g slices
//	reconstruct/  the double-sum engine, angle grids and the output Field
//	export/       .xlsx and TSV writers
//	cmd/pairdist  command line entry point with TOML config
//
// ⚙️ Quick start:
//
//	tbl, err := table.LoadFile("Interpolation_parameters.csv")
//	rc, err := reconstruct.New(tbl)
//	g, err := rc.ComputeAxes([]float64{1.0}, phi1, phi2, 10, 0.2)
//
// A Reconstructor is immutable and safe for concurrent use; the table is
// validated once by reconstruct.New.
package pairdist
