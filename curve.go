package sweep

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Epsilon is the squared distance below which two points are considered equal.
const Epsilon = 1e-8

// CurvePoint is one sample of a discretized curve together with its frame.
type CurvePoint struct {
	V vec3.T // position
	T vec3.T // unit tangent
	N vec3.T // unit normal
	B vec3.T // unit binormal, T × N
}

// Curve is a sequence of samples in parametric order.
type Curve []CurvePoint

func approx(lhs, rhs *vec3.T) bool {
	return vec3.SquareDistance(lhs, rhs) < Epsilon
}

// IsLoop reports whether the first and last sample positions coincide.
func (this Curve) IsLoop() bool {
	if len(this) == 0 {
		return false
	}

	return approx(&this[0].V, &this[len(this)-1].V)
}

// Points returns the sample positions in order.
func (this Curve) Points() []vec3.T {
	pts := make([]vec3.T, len(this))
	for i := range this {
		pts[i] = this[i].V
	}

	return pts
}

// Sweeps only accept profiles lying in the xy plane. The check is exact on
// purpose: flat curves built from xy control points have z exactly zero.
func (this Curve) isFlat() bool {
	for i := range this {
		if this[i].V[2] != 0 || this[i].T[2] != 0 || this[i].N[2] != 0 {
			return false
		}
	}

	return true
}
