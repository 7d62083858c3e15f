// SPDX-License-Identifier: MIT

package basis

import "fmt"

// Shape names one member of the closed set of Fourier-coefficient composites.
// The zero value is invalid.
type Shape uint8

// The ten composites. Parameter order of each matches its struct fields.
const (
	ShapeEMGTanh        Shape = iota + 1 // a·EMG + (tanh((r−mu)·l2)+1)/2
	ShapeGaussPlusGauss                  // a1·Gauss1 + a2·Gauss2
	ShapeEMGQuad                         // a·EMG·(r²+l1·r+l2)
	ShapeGaussA                          // a·Gauss
	ShapeEMGQuadLin                      // a·EMG·(r²+l1·r+l2)·(r−l3)
	ShapeEMGLinLin                       // a·EMG·(r−l1)·(r−l2)
	ShapeEMGLin                          // a·EMG·(r−l1)
	ShapeEMGLinLinLin                    // a·EMG·(r−l1)·(r−l2)·(r−l3)
	ShapeGaussLinLin                     // a·Gauss·(r−l1)·(r−l2)
	ShapeGaussLin                        // a·Gauss·(r−l1)
)

// shapeInfo describes one Shape: display name, arity and binder.
type shapeInfo struct {
	name  string
	arity int
	bind  func(p []float64) Coefficient
}

// shapes is indexed by Shape; index 0 is the invalid zero value.
var shapes = [...]shapeInfo{
	{},
	ShapeEMGTanh: {"EMG_tanh", 5, func(p []float64) Coefficient {
		return EMGTanh{A: p[0], Mu: p[1], Om: p[2], La: p[3], L2: p[4]}
	}},
	ShapeGaussPlusGauss: {"Gauss_plus_Gauss", 6, func(p []float64) Coefficient {
		return GaussPlusGauss{A1: p[0], Mu1: p[1], Om1: p[2], A2: p[3], Mu2: p[4], Om2: p[5]}
	}},
	ShapeEMGQuad: {"EMG_quad", 6, func(p []float64) Coefficient {
		return EMGQuad{A: p[0], Mu: p[1], Om: p[2], La: p[3], L1: p[4], L2: p[5]}
	}},
	ShapeGaussA: {"Gauss_a", 3, func(p []float64) Coefficient {
		return GaussA{A: p[0], Mu: p[1], Om: p[2]}
	}},
	ShapeEMGQuadLin: {"EMG_quad_lin", 7, func(p []float64) Coefficient {
		return EMGQuadLin{A: p[0], Mu: p[1], Om: p[2], La: p[3], L1: p[4], L2: p[5], L3: p[6]}
	}},
	ShapeEMGLinLin: {"EMG_lin_lin", 6, func(p []float64) Coefficient {
		return EMGLinLin{A: p[0], Mu: p[1], Om: p[2], La: p[3], L1: p[4], L2: p[5]}
	}},
	ShapeEMGLin: {"EMG_lin", 5, func(p []float64) Coefficient {
		return EMGLin{A: p[0], Mu: p[1], Om: p[2], La: p[3], L1: p[4]}
	}},
	ShapeEMGLinLinLin: {"EMG_lin_lin_lin", 7, func(p []float64) Coefficient {
		return EMGLinLinLin{A: p[0], Mu: p[1], Om: p[2], La: p[3], L1: p[4], L2: p[5], L3: p[6]}
	}},
	ShapeGaussLinLin: {"Gauss_lin_lin", 5, func(p []float64) Coefficient {
		return GaussLinLin{A: p[0], Mu: p[1], Om: p[2], L1: p[3], L2: p[4]}
	}},
	ShapeGaussLin: {"Gauss_lin", 4, func(p []float64) Coefficient {
		return GaussLin{A: p[0], Mu: p[1], Om: p[2], L1: p[3]}
	}},
}

// Shapes returns every valid Shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, 0, len(shapes)-1)
	for s := ShapeEMGTanh; int(s) < len(shapes); s++ {
		out = append(out, s)
	}

	return out
}

// Valid reports whether s is one of the ten composites.
func (s Shape) Valid() bool { return s > 0 && int(s) < len(shapes) }

// Arity is the number of free parameters of s, or 0 for an invalid Shape.
func (s Shape) Arity() int {
	if !s.Valid() {
		return 0
	}

	return shapes[s].arity
}

// String returns the composite's conventional name (e.g. "EMG_quad_lin").
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}

	return shapes[s].name
}

// Bind assigns parameters p, in order, to the composite named by s.
//
// Errors:
//   - ErrUnknownShape if s is not valid.
//   - ErrArity if len(p) != s.Arity().
func (s Shape) Bind(p []float64) (Coefficient, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("Bind %s: %w", s, ErrUnknownShape)
	}
	if len(p) != shapes[s].arity {
		return nil, fmt.Errorf("Bind %s: got %d parameters, want %d: %w",
			s, len(p), shapes[s].arity, ErrArity)
	}

	return shapes[s].bind(p), nil
}
