// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"

	"github.com/katalvlaran/pairdist/matrix"
)

// Grid is the set of (φ1, φ2) sample points, stored as two matrices of equal
// shape. Element [a,b] of both matrices is one sample point.
type Grid struct {
	phi1, phi2 *matrix.Dense
	ax1, ax2   []float64 // set only for axis grids
}

// NewAxesGrid builds the rectilinear grid of two independent angle axes with
// ij indexing: point [a,b] is (phi1[a], phi2[b]). A single angle is a
// one-element axis.
//
// Errors:
//   - ErrShape if either axis is empty.
func NewAxesGrid(phi1, phi2 []float64) (*Grid, error) {
	if len(phi1) == 0 || len(phi2) == 0 {
		return nil, fmt.Errorf("NewAxesGrid: axes of length %d and %d: %w", len(phi1), len(phi2), ErrShape)
	}
	x, y, err := matrix.Meshgrid(phi1, phi2)
	if err != nil {
		return nil, fmt.Errorf("NewAxesGrid: %w: %w", ErrShape, err)
	}

	return &Grid{
		phi1: x,
		phi2: y,
		ax1:  append([]float64(nil), phi1...),
		ax2:  append([]float64(nil), phi2...),
	}, nil
}

// NewMeshGrid uses two explicit coordinate matrices as the grid. They need not
// be rectilinear but must have the same shape. Both are copied.
//
// Errors:
//   - ErrShape if either matrix is nil or empty, or their shapes differ.
func NewMeshGrid(phi1, phi2 *matrix.Dense) (*Grid, error) {
	if err := matrix.ValidateSameShape(phi1, phi2); err != nil {
		return nil, fmt.Errorf("NewMeshGrid: %w: %w", ErrShape, err)
	}
	if phi1.Rows() == 0 || phi1.Cols() == 0 {
		return nil, fmt.Errorf("NewMeshGrid: empty %dx%d mesh: %w", phi1.Rows(), phi1.Cols(), ErrShape)
	}

	return &Grid{phi1: phi1.Copy(), phi2: phi2.Copy()}, nil
}

// Shape returns the grid dimensions.
func (g *Grid) Shape() (n1, n2 int) { return g.phi1.Shape() }

// Phi1 returns a copy of the φ1 coordinate matrix.
func (g *Grid) Phi1() *matrix.Dense { return g.phi1.Copy() }

// Phi2 returns a copy of the φ2 coordinate matrix.
func (g *Grid) Phi2() *matrix.Dense { return g.phi2.Copy() }

// Axes returns copies of the two axes of a grid built by NewAxesGrid.
// ok is false for mesh grids.
func (g *Grid) Axes() (phi1, phi2 []float64, ok bool) {
	if g.ax1 == nil {
		return nil, nil, false
	}

	return append([]float64(nil), g.ax1...), append([]float64(nil), g.ax2...), true
}

// angular returns basis(h·φ1) and basis(j·φ2) over the grid.
func (g *Grid) angular(basis func(float64) float64, h, j int) (a, b *matrix.Dense) {
	fh, fj := float64(h), float64(j)
	a = g.phi1.Copy()
	a.Apply(func(_, _ int, v float64) float64 { return basis(v * fh) })
	b = g.phi2.Copy()
	b.Apply(func(_, _ int, v float64) float64 { return basis(v * fj) })

	return a, b
}
