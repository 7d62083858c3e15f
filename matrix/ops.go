// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels on *Dense used by the reconstruction: the scaled
//     product accumulation, meshgrid construction and tolerance comparison.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over the row-major buffer; inner loops are gonum floats
//     kernels, which are elementwise and therefore order-independent.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ---------- op tags ----------

const (
	opAddScaledProduct = "AddScaledProductInPlace"
	opMeshgrid         = "Meshgrid"
	opAllClose         = "AllClose"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddScaledProductInPlace performs dst += (alpha*a)∘b elementwise, in the
// order written: alpha*a first, then the product with b, then the sum.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddScaledProductInPlace(dst *Dense, alpha float64, a, b *Dense) error {
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opAddScaledProduct, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opAddScaledProduct, err)
	}
	tmp := make([]float64, len(a.data))
	floats.ScaleTo(tmp, alpha, a.data)
	floats.Mul(tmp, b.data)
	floats.Add(dst.data, tmp)

	return nil
}

// Meshgrid builds the two len(x)×len(y) coordinate matrices of x and y with
// matrix ("ij") indexing: X[a,b] = x[a] and Y[a,b] = y[b].
//
// Errors:
//   - ErrInvalidDimensions if x or y is empty.
//
// Complexity:
//   - Time O(len(x)*len(y)), Space O(len(x)*len(y)).
func Meshgrid(x, y []float64) (X, Y *Dense, err error) {
	if X, err = NewDense(len(x), len(y)); err != nil {
		return nil, nil, matrixErrorf(opMeshgrid, err)
	}
	Y, _ = NewDense(len(x), len(y)) // same shape already validated
	var a, b, base int
	for a = 0; a < len(x); a++ {
		base = a * len(y)
		for b = 0; b < len(y); b++ {
			X.data[base+b] = x[a]
			Y.data[base+b] = y[b]
		}
	}

	return X, Y, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
// NaN is never close to anything; equal infinities are close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i, av := range a.data {
		bv := b.data[i]
		if av == bv {
			continue // covers equal infinities
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// Stats summarizes the elements of m. NaN elements are skipped and counted.
type Stats struct {
	Min, Max, Mean float64
	NaN            int
}

// Summarize returns min, max and mean of the finite-or-infinite elements of m.
// If every element is NaN, Min, Max and Mean are NaN.
func Summarize(m *Dense) Stats {
	vals := make([]float64, 0, len(m.data))
	nan := 0
	for _, v := range m.data {
		if math.IsNaN(v) {
			nan++
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), NaN: nan}
	}

	return Stats{
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
		Mean: floats.Sum(vals) / float64(len(vals)),
		NaN:  nan,
	}
}
