package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairdist/matrix"
)

// TestMeshgridIJ verifies ij indexing: X varies along rows, Y along columns.
func TestMeshgridIJ(t *testing.T) {
	X, Y, err := matrix.Meshgrid([]float64{1, 2}, []float64{10, 20, 30})
	require.NoError(t, err)

	require.Equal(t, "[1, 1, 1]\n[2, 2, 2]\n", X.String())
	require.Equal(t, "[10, 20, 30]\n[10, 20, 30]\n", Y.String())

	_, _, err = matrix.Meshgrid(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAddScaledProductInPlace checks dst += (alpha*a)∘b and shape validation.
func TestAddScaledProductInPlace(t *testing.T) {
	dst, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})

	require.NoError(t, matrix.AddScaledProductInPlace(dst, 0.5, a, b))
	require.Equal(t, "[3.5, 7]\n[11.5, 17]\n", dst.String())
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String()) // operands untouched
	require.Equal(t, "[5, 6]\n[7, 8]\n", b.String())

	bad, _ := matrix.NewDense(2, 1)
	require.ErrorIs(t, matrix.AddScaledProductInPlace(dst, 1, a, bad), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddScaledProductInPlace(bad, 1, a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddScaledProductInPlace(dst, 1, a, nil), matrix.ErrNilMatrix)
}

// TestAddScaledProductOrder pins the evaluation order (alpha*a)*b, which can
// differ in the last bit from alpha*(a*b).
func TestAddScaledProductOrder(t *testing.T) {
	alpha, av, bv := 0.1, 0.7, 3.0
	dst, _ := matrix.NewDense(1, 1)
	a, _ := matrix.NewFromRows([][]float64{{av}})
	b, _ := matrix.NewFromRows([][]float64{{bv}})

	require.NoError(t, matrix.AddScaledProductInPlace(dst, alpha, a, b))
	got, _ := dst.At(0, 0)
	scaled := alpha * av
	require.Equal(t, scaled*bv, got)
}

// TestAllClose covers tolerance, NaN and infinity handling.
func TestAllClose(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{1, math.Inf(1)}})
	b, _ := matrix.NewFromRows([][]float64{{1 + 1e-10, math.Inf(1)}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	_ = b.Set(0, 0, math.NaN())
	ok, _ = matrix.AllClose(a, b, 1, 1)
	assert.False(t, ok)
}

// TestSummarize checks min/max/mean with NaN elements skipped.
func TestSummarize(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{1, math.NaN()}, {3, 8}})

	s := matrix.Summarize(m)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 8.0, s.Max)
	assert.Equal(t, 4.0, s.Mean)
	assert.Equal(t, 1, s.NaN)

	all, _ := matrix.NewFromRows([][]float64{{math.NaN(), math.NaN()}})
	s = matrix.Summarize(all)
	assert.True(t, math.IsNaN(s.Mean))
	assert.Equal(t, 2, s.NaN)
}
