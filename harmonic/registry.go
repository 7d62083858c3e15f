// SPDX-License-Identifier: MIT

package harmonic

import "github.com/katalvlaran/pairdist/basis"

// fourierFitFuncs maps every valid index, by Ordinal, to its composite.
// The order of entries is the summation order of All.
var fourierFitFuncs = [Count]struct {
	idx   Index
	shape basis.Shape
}{
	{Index{CosCos, 0, 0}, basis.ShapeEMGTanh},
	{Index{CosCos, 0, 1}, basis.ShapeGaussPlusGauss},
	{Index{CosCos, 0, 2}, basis.ShapeEMGQuad},
	{Index{CosCos, 0, 3}, basis.ShapeGaussA},
	{Index{CosCos, 1, 0}, basis.ShapeEMGQuad},
	{Index{CosCos, 1, 1}, basis.ShapeEMGQuadLin},
	{Index{CosCos, 1, 2}, basis.ShapeEMGQuadLin},
	{Index{CosCos, 1, 3}, basis.ShapeGaussA},
	{Index{CosCos, 2, 0}, basis.ShapeEMGLinLin},
	{Index{CosCos, 2, 1}, basis.ShapeEMGLin},
	{Index{CosCos, 2, 2}, basis.ShapeEMGLin},
	{Index{CosCos, 2, 3}, basis.ShapeGaussA},
	{Index{CosCos, 3, 0}, basis.ShapeEMGLinLinLin},
	{Index{CosCos, 3, 1}, basis.ShapeGaussLinLin},
	{Index{CosCos, 3, 2}, basis.ShapeEMGLin},
	{Index{CosCos, 3, 3}, basis.ShapeEMGLinLin},
	{Index{SinSin, 1, 1}, basis.ShapeEMGQuad},
	{Index{SinSin, 1, 2}, basis.ShapeEMGQuad},
	{Index{SinSin, 1, 3}, basis.ShapeEMGLinLin},
	{Index{SinSin, 2, 1}, basis.ShapeEMGLin},
	{Index{SinSin, 2, 2}, basis.ShapeEMGLinLin},
	{Index{SinSin, 2, 3}, basis.ShapeGaussLinLin},
	{Index{SinSin, 3, 1}, basis.ShapeGaussLin},
	{Index{SinSin, 3, 2}, basis.ShapeEMGLinLin},
	{Index{SinSin, 3, 3}, basis.ShapeEMGLinLin},
}

// parameterFitArity is the length of the ParameterFitFuncs list per index,
// by Ordinal. It is kept as its own table, as in the coefficient file schema,
// and checked against the composite arities in tests.
var parameterFitArity = [Count]int{
	5, 6, 6, 3, // (1,0,j)
	6, 7, 7, 3, // (1,1,j)
	6, 5, 5, 3, // (1,2,j)
	7, 5, 5, 6, // (1,3,j)
	6, 6, 6, // (2,1,j)
	5, 6, 5, // (2,2,j)
	4, 6, 6, // (2,3,j)
}

// ShapeOf returns the Fourier-coefficient composite registered for i.
// ok is false for an invalid index.
func ShapeOf(i Index) (shape basis.Shape, ok bool) {
	n := i.Ordinal()
	if n < 0 {
		return 0, false
	}

	return fourierFitFuncs[n].shape, true
}

// Arity returns the number of interpolation functions (and coefficient rows)
// required by i, or 0 for an invalid index.
func Arity(i Index) int {
	n := i.Ordinal()
	if n < 0 {
		return 0
	}

	return parameterFitArity[n]
}

// ParameterFuncs returns the ordered interpolation functions for i, one per
// composite parameter. Every entry is basis.H; only the coefficients differ
// per use. The returned slice is freshly allocated.
func ParameterFuncs(i Index) ([]basis.InterpFunc, bool) {
	n := Arity(i)
	if n == 0 {
		return nil, false
	}
	out := make([]basis.InterpFunc, n)
	for k := range out {
		out[k] = basis.H
	}

	return out, true
}
