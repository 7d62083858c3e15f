// SPDX-License-Identifier: MIT

// Package tabletest provides synthetic coefficient tables for tests.
//
// Every row produced here encodes a parameter p as
//
//	H(Pe, Φ) = p + 1e-3·p·sqrt(Pe) + 1e-2·p·Φ
//
// so parameters keep the sign of their base value and widths stay positive
// for any Pe > 0 and Φ >= 0, which keeps g finite.
package tabletest

import (
	"math"
	"testing"

	"github.com/katalvlaran/pairdist/basis"
	"github.com/katalvlaran/pairdist/harmonic"
	"github.com/katalvlaran/pairdist/table"
)

// BaseParams returns plausible base parameters for shape, in Bind order.
func BaseParams(shape basis.Shape) []float64 {
	const a, mu, om, la = 0.5, 1.0, 0.1, 3.0
	switch shape {
	case basis.ShapeEMGTanh:
		return []float64{a, mu, om, la, 4}
	case basis.ShapeGaussPlusGauss:
		return []float64{a, mu, om, 0.2, 2, 0.3}
	case basis.ShapeEMGQuad:
		return []float64{a, mu, om, la, -0.5, 0.25}
	case basis.ShapeGaussA:
		return []float64{a, mu, om}
	case basis.ShapeEMGQuadLin:
		return []float64{a, mu, om, la, -0.5, 0.25, 1.5}
	case basis.ShapeEMGLinLin:
		return []float64{a, mu, om, la, 0.8, 1.6}
	case basis.ShapeEMGLin:
		return []float64{a, mu, om, la, 1.2}
	case basis.ShapeEMGLinLinLin:
		return []float64{a, mu, om, la, 0.8, 1.2, 1.6}
	case basis.ShapeGaussLinLin:
		return []float64{a, mu, om, 0.9, 1.4}
	case basis.ShapeGaussLin:
		return []float64{a, mu, om, 1.1}
	default:
		return nil
	}
}

// Row encodes base parameter p as one coefficient row (see package doc).
func Row(p float64) basis.Coeffs {
	var u basis.Coeffs
	u[2] = p        // constant
	u[3] = 1e-3 * p // sqrt(Pe)
	u[7] = 1e-2 * p // Φ
	return u
}

// Param is the value H yields for Row(p) at (pe, phi).
func Param(p, pe, phi float64) float64 {
	u := Row(p)
	return basis.H(pe, phi, &u)
}

// IndexRecords returns the records of one index, scaled by scale so that
// different indices carry different amplitudes.
func IndexRecords(idx harmonic.Index, scale float64) []table.Record {
	shape, ok := harmonic.ShapeOf(idx)
	if !ok {
		return nil
	}
	base := BaseParams(shape)
	out := make([]table.Record, 0, len(base))
	for n, p := range base {
		if n == 0 {
			p *= scale // amplitude
		}
		u := Row(p)
		out = append(out, table.Record{Label: idx.K.Label(), H: idx.H, J: idx.J, Values: append([]float64(nil), u[:]...)})
	}

	return out
}

// Records returns a complete record set for all 25 indices. Amplitudes fall
// off with the harmonic numbers.
func Records() []table.Record {
	var out []table.Record
	for _, idx := range harmonic.All() {
		out = append(out, IndexRecords(idx, Amplitude(idx))...)
	}

	return out
}

// Amplitude is the amplitude scale Records uses for idx.
func Amplitude(idx harmonic.Index) float64 {
	return 1 / math.Pow(2, float64(idx.H+idx.J))
}

// Table builds the complete synthetic table, failing t on error.
func Table(t testing.TB, opts ...table.Option) *table.Table {
	t.Helper()
	tbl, err := table.Build(Records(), opts...)
	if err != nil {
		t.Fatalf("tabletest: build: %v", err)
	}

	return tbl
}
