package make

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Generate the Bezier control points of a circular arc
//
// The arc is split into at most four pieces of no more than 90 degrees,
// each approximated by one cubic with handles of length 4/3·tan(θ/4)·r.
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, greater than the start angle; a smaller one gives a full circle
//
// **returns**
// + 3n+1 Bezier control points
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) []vec3.T {
	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	// if the end angle is less than the start angle, do a circle
	if endAngle < startAngle {
		endAngle = 2.0*math.Pi + startAngle
	}

	theta := endAngle - startAngle

	// how many arcs?
	var numArcs int
	switch {
	case theta <= math.Pi/2:
		numArcs = 1
	case theta <= math.Pi:
		numArcs = 2
	case theta <= 3*math.Pi/2:
		numArcs = 3
	default:
		numArcs = 4
	}

	dtheta := theta / float64(numArcs)
	handle := 4.0 / 3.0 * math.Tan(dtheta/4) * radius

	// point and unit tangent on the circle at angle
	at := func(angle float64) (pt, tangent vec3.T) {
		sin, cos := math.Sincos(angle)

		xCompon, yCompon := xaxisNorm.Scaled(radius*cos), yaxisNorm.Scaled(radius*sin)
		pt = vec3.Add(&xCompon, &yCompon)
		pt.Add(center)

		temp0, temp1 := yaxisNorm.Scaled(cos), xaxisNorm.Scaled(sin)
		tangent = vec3.Sub(&temp0, &temp1)
		return
	}

	controlPoints := make([]vec3.T, 0, 3*numArcs+1)

	P0, T0 := at(startAngle)
	controlPoints = append(controlPoints, P0)

	angle := startAngle
	for i := 1; i <= numArcs; i++ {
		angle += dtheta
		P3, T3 := at(angle)

		out, in := T0.Scaled(handle), T3.Scaled(-handle)
		P1, P2 := vec3.Add(&P0, &out), vec3.Add(&P3, &in)

		controlPoints = append(controlPoints, P1, P2, P3)
		P0, T0 = P3, T3
	}

	return controlPoints
}

// Circle returns the control points of a full circle. The last point is
// exactly the first, so evaluators treat the curve as a loop.
func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) []vec3.T {
	controlPoints := Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
	controlPoints[len(controlPoints)-1] = controlPoints[0]

	return controlPoints
}
