// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pairdist/matrix"
)

// Field is a reconstructed g: one grid-shaped slice per distance.
// Element (i, a, b) is g(r[i], φ1[a,b], φ2[a,b]).
type Field struct {
	r      []float64
	grid   *Grid
	pe     float64
	phi    float64
	slices []*matrix.Dense
}

func newField(r []float64, grid *Grid, pe, phi float64) (*Field, error) {
	n1, n2 := grid.Shape()
	f := &Field{
		r:      append([]float64(nil), r...),
		grid:   grid,
		pe:     pe,
		phi:    phi,
		slices: make([]*matrix.Dense, len(r)),
	}
	for i := range f.slices {
		s, err := matrix.NewDense(n1, n2)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShape, err)
		}
		f.slices[i] = s
	}

	return f, nil
}

// Shape returns (len(r), n1, n2).
func (f *Field) Shape() (nr, n1, n2 int) {
	n1, n2 = f.grid.Shape()
	return len(f.r), n1, n2
}

// At returns g at distance index i and grid point [a,b].
func (f *Field) At(i, a, b int) (float64, error) {
	if i < 0 || i >= len(f.slices) {
		return 0, fmt.Errorf("Field.At(%d,%d,%d): %w", i, a, b, matrix.ErrOutOfRange)
	}

	return f.slices[i].At(a, b)
}

// Slice returns a copy of the grid-shaped slice at distance index i.
func (f *Field) Slice(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(f.slices) {
		return nil, fmt.Errorf("Field.Slice(%d): %w", i, matrix.ErrOutOfRange)
	}

	return f.slices[i].Copy(), nil
}

// R returns a copy of the distances.
func (f *Field) R() []float64 { return append([]float64(nil), f.r...) }

// Grid returns the angle grid the field was computed on.
func (f *Field) Grid() *Grid { return f.grid }

// Peclet returns the Peclet number of the field.
func (f *Field) Peclet() float64 { return f.pe }

// Density returns the packing density of the field.
func (f *Field) Density() float64 { return f.phi }

// Stats summarizes g over every distance and grid point. NaN values are
// skipped and counted.
func (f *Field) Stats() matrix.Stats {
	out := matrix.Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum, n := 0.0, 0
	for _, s := range f.slices {
		st := matrix.Summarize(s)
		out.NaN += st.NaN
		cnt := s.Rows()*s.Cols() - st.NaN
		if cnt == 0 {
			continue
		}
		out.Min = math.Min(out.Min, st.Min)
		out.Max = math.Max(out.Max, st.Max)
		sum += st.Mean * float64(cnt)
		n += cnt
	}
	if n == 0 {
		return matrix.Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), NaN: out.NaN}
	}
	out.Mean = sum / float64(n)

	return out
}
