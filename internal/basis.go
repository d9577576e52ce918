package internal

import (
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// Cubic basis matrices. Each column holds the power-basis coefficients
// [1 t t² t³] of one control point's blending function.
var (
	bezierBasis = mat.NewDense(4, 4, []float64{
		1, -3, 3, -1,
		0, 3, -6, 3,
		0, 0, 3, -3,
		0, 0, 0, 1,
	})

	// derivative of bezierBasis with respect to t, in the same power basis
	bezierBasisDiff = mat.NewDense(4, 4, []float64{
		-3, 6, -3, 0,
		3, -12, 9, 0,
		0, 6, -9, 0,
		0, 0, 3, 0,
	})

	bsplineBasis = mat.NewDense(4, 4, []float64{
		1.0 / 6, -3.0 / 6, 3.0 / 6, -1.0 / 6,
		4.0 / 6, 0, -6.0 / 6, 3.0 / 6,
		1.0 / 6, 3.0 / 6, 3.0 / 6, -3.0 / 6,
		0, 0, 0, 1.0 / 6,
	})

	// bsplineBasis · bezierBasis⁻¹
	bsplineToBezier mat.Dense
)

func init() {
	var inv mat.Dense
	if err := inv.Inverse(bezierBasis); err != nil {
		panic("internal: bezier basis is not invertible: " + err.Error())
	}
	bsplineToBezier.Mul(bsplineBasis, &inv)
}

// Segment is one cubic Bezier segment with its geometry already folded
// into the basis, so evaluating it is a single matrix-vector product.
type Segment struct {
	pos, vel mat.Dense
}

// Build a cubic Bezier segment
//
// **params**
// + the four control points of the segment
//
// **returns**
// + a Segment ready for evaluation on [0, 1]
func NewBezierSegment(p0, p1, p2, p3 *vec3.T) *Segment {
	geom := geometry(p0, p1, p2, p3)

	seg := new(Segment)
	seg.pos.Mul(geom, bezierBasis)
	seg.vel.Mul(geom, bezierBasisDiff)

	return seg
}

// Eval returns the position and the (unnormalized) velocity at t.
func (this *Segment) Eval(t float64) (pt, vel vec3.T) {
	power := mat.NewVecDense(4, []float64{1, t, t * t, t * t * t})

	var q, dq mat.VecDense
	q.MulVec(&this.pos, power)
	dq.MulVec(&this.vel, power)

	for i := 0; i < 3; i++ {
		pt[i] = q.AtVec(i)
		vel[i] = dq.AtVec(i)
	}

	return
}

// Change the basis of one uniform cubic B-spline window to Bezier
//
// **params**
// + four consecutive B-spline control points
//
// **returns**
// + the four Bezier control points tracing the same segment
func BsplineToBezier(p0, p1, p2, p3 *vec3.T) (bez [4]vec3.T) {
	var res mat.Dense
	res.Mul(geometry(p0, p1, p2, p3), &bsplineToBezier)

	for c := range bez {
		for r := 0; r < 3; r++ {
			bez[c][r] = res.At(r, c)
		}
	}

	return
}

// geometry lays the points out as the columns of a 3×n matrix.
func geometry(pts ...*vec3.T) *mat.Dense {
	g := mat.NewDense(3, len(pts), nil)
	for c, p := range pts {
		for r := 0; r < 3; r++ {
			g.Set(r, c, p[r])
		}
	}

	return g
}
