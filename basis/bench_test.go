package basis_test

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pairdist/basis"
)

// BenchmarkEvalEMGQuadLin measures vectorized evaluation of the widest composite.
func BenchmarkEvalEMGQuadLin(b *testing.B) {
	r := floats.Span(make([]float64, 1024), 0, 10)
	c := basis.EMGQuadLin{A: 1, Mu: 1, Om: 0.1, La: 3, L1: 0.2, L2: 0.1, L3: 1.5}
	dst := make([]float64, len(r))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = basis.Eval(c, r, dst)
	}
}

// BenchmarkH measures one interpolation-function evaluation.
func BenchmarkH(b *testing.B) {
	var u basis.Coeffs
	for i := range u {
		u[i] = float64(i) * 0.01
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = basis.H(25, 0.3, &u)
	}
}
