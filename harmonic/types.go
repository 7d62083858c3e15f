// SPDX-License-Identifier: MIT

package harmonic

import (
	"errors"
	"fmt"
	"math"
)

// Count is the number of valid harmonic indices.
const Count = 25

// MaxHarmonic is the highest harmonic number in either angle.
const MaxHarmonic = 3

// ErrUnknownClass is returned by ParseClass for an unrecognized label.
var ErrUnknownClass = errors.New("harmonic: unknown coefficient class label")

// Class is the angular symmetry class k of a harmonic index.
type Class uint8

const (
	// CosCos is k=1: cos(h·φ1)·cos(j·φ2).
	CosCos Class = 1
	// SinSin is k=2: sin(h·φ1)·sin(j·φ2).
	SinSin Class = 2
)

// Coefficient-source labels of the two classes.
const (
	LabelCosCos = "coscos"
	LabelSinSin = "sinsin"
)

// ParseClass maps a coefficient-source label to its Class.
func ParseClass(label string) (Class, error) {
	switch label {
	case LabelCosCos:
		return CosCos, nil
	case LabelSinSin:
		return SinSin, nil
	default:
		return 0, fmt.Errorf("ParseClass(%q): %w", label, ErrUnknownClass)
	}
}

// Valid reports whether c is CosCos or SinSin.
func (c Class) Valid() bool { return c == CosCos || c == SinSin }

// Label returns the coefficient-source label ("coscos" or "sinsin").
func (c Class) Label() string {
	switch c {
	case CosCos:
		return LabelCosCos
	case SinSin:
		return LabelSinSin
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Lowest is the smallest harmonic number of the class: 0 for cos·cos, 1 for sin·sin.
func (c Class) Lowest() int {
	if c == SinSin {
		return 1
	}

	return 0
}

// Basis returns the angular basis function of the class (math.Cos or math.Sin).
func (c Class) Basis() func(float64) float64 {
	if c == SinSin {
		return math.Sin
	}

	return math.Cos
}

// Index is a harmonic index triple (k, h, j).
type Index struct {
	K Class // symmetry class
	H int   // harmonic number of φ1
	J int   // harmonic number of φ2
}

// Valid reports whether i is one of the 25 indices of the series.
func (i Index) Valid() bool {
	if !i.K.Valid() {
		return false
	}
	lo := i.K.Lowest()

	return i.H >= lo && i.H <= MaxHarmonic && i.J >= lo && i.J <= MaxHarmonic
}

// Ordinal returns the dense slot of i in summation order (0..24), or -1 if
// i is invalid. cos·cos indices occupy 0..15, sin·sin indices 16..24.
func (i Index) Ordinal() int {
	if !i.Valid() {
		return -1
	}
	if i.K == CosCos {
		return i.H*(MaxHarmonic+1) + i.J
	}

	return 16 + (i.H-1)*MaxHarmonic + (i.J - 1)
}

// String formats i as "(k,h,j)".
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", uint8(i.K), i.H, i.J)
}

// All returns the 25 valid indices in summation order: k=1 with h, j from
// 0 to 3, then k=2 with h, j from 1 to 3; j varies fastest.
func All() []Index {
	out := make([]Index, 0, Count)
	for _, k := range []Class{CosCos, SinSin} {
		for h := k.Lowest(); h <= MaxHarmonic; h++ {
			for j := k.Lowest(); j <= MaxHarmonic; j++ {
				out = append(out, Index{K: k, H: h, J: j})
			}
		}
	}

	return out
}
