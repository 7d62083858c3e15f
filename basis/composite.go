// SPDX-License-Identifier: MIT

package basis

import "math"

// Coefficient is a composite with its parameters bound. The set of
// implementations is closed: only the types in this file satisfy it.
type Coefficient interface {
	// At evaluates the composite at distance r.
	At(r float64) float64
	// Shape reports which composite this is.
	Shape() Shape

	sealed()
}

// Compile-time assertions: every composite implements Coefficient.
var (
	_ Coefficient = EMGTanh{}
	_ Coefficient = GaussPlusGauss{}
	_ Coefficient = EMGQuad{}
	_ Coefficient = GaussA{}
	_ Coefficient = EMGQuadLin{}
	_ Coefficient = EMGLinLin{}
	_ Coefficient = EMGLin{}
	_ Coefficient = EMGLinLinLin{}
	_ Coefficient = GaussLinLin{}
	_ Coefficient = GaussLin{}
)

// EMGTanh is an EMG peak on top of a smoothed step: a·EMG + (tanh((r−mu)·l2)+1)·0.5.
// The step carries g to 1 at large r.
type EMGTanh struct{ A, Mu, Om, La, L2 float64 }

func (c EMGTanh) At(r float64) float64 {
	return c.A*EMG(r, c.Mu, c.Om, c.La) + ((math.Tanh((r-c.Mu)*c.L2) + 1) * 0.5)
}

func (EMGTanh) Shape() Shape { return ShapeEMGTanh }
func (EMGTanh) sealed()      {}

// GaussPlusGauss is a1·Gauss(mu1, om1) + a2·Gauss(mu2, om2).
type GaussPlusGauss struct{ A1, Mu1, Om1, A2, Mu2, Om2 float64 }

func (c GaussPlusGauss) At(r float64) float64 {
	return c.A1*Gauss(r, c.Mu1, c.Om1) + c.A2*Gauss(r, c.Mu2, c.Om2)
}

func (GaussPlusGauss) Shape() Shape { return ShapeGaussPlusGauss }
func (GaussPlusGauss) sealed()      {}

// EMGQuad is a·EMG·(r² + l1·r + l2).
type EMGQuad struct{ A, Mu, Om, La, L1, L2 float64 }

func (c EMGQuad) At(r float64) float64 {
	return c.A * EMG(r, c.Mu, c.Om, c.La) * (r*r + c.L1*r + c.L2)
}

func (EMGQuad) Shape() Shape { return ShapeEMGQuad }
func (EMGQuad) sealed()      {}

// GaussA is a·Gauss(mu, om).
type GaussA struct{ A, Mu, Om float64 }

func (c GaussA) At(r float64) float64 { return c.A * Gauss(r, c.Mu, c.Om) }

func (GaussA) Shape() Shape { return ShapeGaussA }
func (GaussA) sealed()      {}

// EMGQuadLin is a·EMG·(r² + l1·r + l2)·(r − l3).
type EMGQuadLin struct{ A, Mu, Om, La, L1, L2, L3 float64 }

func (c EMGQuadLin) At(r float64) float64 {
	return c.A * EMG(r, c.Mu, c.Om, c.La) * (r*r + c.L1*r + c.L2) * (r - c.L3)
}

func (EMGQuadLin) Shape() Shape { return ShapeEMGQuadLin }
func (EMGQuadLin) sealed()      {}

// EMGLinLin is a·EMG·(r − l1)·(r − l2).
type EMGLinLin struct{ A, Mu, Om, La, L1, L2 float64 }

func (c EMGLinLin) At(r float64) float64 {
	return c.A * EMG(r, c.Mu, c.Om, c.La) * (r - c.L1) * (r - c.L2)
}

func (EMGLinLin) Shape() Shape { return ShapeEMGLinLin }
func (EMGLinLin) sealed()      {}

// EMGLin is a·EMG·(r − l1).
type EMGLin struct{ A, Mu, Om, La, L1 float64 }

func (c EMGLin) At(r float64) float64 {
	return c.A * EMG(r, c.Mu, c.Om, c.La) * (r - c.L1)
}

func (EMGLin) Shape() Shape { return ShapeEMGLin }
func (EMGLin) sealed()      {}

// EMGLinLinLin is a·EMG·(r − l1)·(r − l2)·(r − l3).
type EMGLinLinLin struct{ A, Mu, Om, La, L1, L2, L3 float64 }

func (c EMGLinLinLin) At(r float64) float64 {
	return c.A * EMG(r, c.Mu, c.Om, c.La) * (r - c.L1) * (r - c.L2) * (r - c.L3)
}

func (EMGLinLinLin) Shape() Shape { return ShapeEMGLinLinLin }
func (EMGLinLinLin) sealed()      {}

// GaussLinLin is a·Gauss·(r − l1)·(r − l2).
type GaussLinLin struct{ A, Mu, Om, L1, L2 float64 }

func (c GaussLinLin) At(r float64) float64 {
	return GaussA{A: c.A, Mu: c.Mu, Om: c.Om}.At(r) * (r - c.L1) * (r - c.L2)
}

func (GaussLinLin) Shape() Shape { return ShapeGaussLinLin }
func (GaussLinLin) sealed()      {}

// GaussLin is a·Gauss·(r − l1).
type GaussLin struct{ A, Mu, Om, L1 float64 }

func (c GaussLin) At(r float64) float64 {
	return GaussA{A: c.A, Mu: c.Mu, Om: c.Om}.At(r) * (r - c.L1)
}

func (GaussLin) Shape() Shape { return ShapeGaussLin }
func (GaussLin) sealed()      {}

// Eval evaluates c at every r and writes the results into dst, which is
// grown (or allocated when nil) to len(r). It returns the filled slice.
func Eval(c Coefficient, r []float64, dst []float64) []float64 {
	if cap(dst) < len(r) {
		dst = make([]float64, len(r))
	}
	dst = dst[:len(r)]
	for i, x := range r {
		dst[i] = c.At(x)
	}

	return dst
}
