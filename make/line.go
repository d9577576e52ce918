package make

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Line returns the four Bezier control points of the straight segment from
// first to last, spaced evenly so the curve moves at constant speed.
func Line(first, last *vec3.T) []vec3.T {
	return Polyline([]vec3.T{*first, *last})
}

// Generate the Bezier control points of a polyline
//
// **params**
// + array of points in curve, at least 2
//
// **returns**
// + 3(n-1)+1 control points, one straight Bezier segment per edge, or nil
// for fewer than 2 points
func Polyline(pts []vec3.T) []vec3.T {
	if len(pts) < 2 {
		return nil
	}

	controlPoints := make([]vec3.T, 0, 3*(len(pts)-1)+1)
	controlPoints = append(controlPoints, pts[0])

	for i := 1; i < len(pts); i++ {
		controlPoints = append(controlPoints,
			vec3.Interpolate(&pts[i-1], &pts[i], 1.0/3),
			vec3.Interpolate(&pts[i-1], &pts[i], 2.0/3),
			pts[i],
		)
	}

	return controlPoints
}
