package sweep

import (
	"fmt"

	"github.com/alexozer/sweep/internal"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Convert uniform cubic B-spline control points to Bezier control points
//
// Every window of four consecutive control points is one segment. The
// first window contributes four Bezier points, every later one the last
// three, since its first point repeats the previous window's last.
//
// **params**
// + B-spline control points, at least 4
//
// **returns**
// + 3(n-3)+1 Bezier control points tracing the same curve
func BsplineToBezier(points []vec3.T) ([]vec3.T, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: b-spline needs at least 4 control points, got %d", ErrControlPoints, len(points))
	}

	bezier := make([]vec3.T, 0, 3*(len(points)-3)+1)
	for i := 0; i+3 < len(points); i++ {
		window := internal.BsplineToBezier(&points[i], &points[i+1], &points[i+2], &points[i+3])

		if i == 0 {
			bezier = append(bezier, window[:]...)
		} else {
			bezier = append(bezier, window[1:]...)
		}
	}

	return bezier, nil
}

// Bspline samples a uniform cubic B-spline by converting it to Bezier form
// and handing it to [Evaluator.Bezier]; steps has the same meaning there.
func (this *Evaluator) Bspline(points []vec3.T, steps int) (Curve, error) {
	this.log.Debug("evalBspline",
		zap.Int("steps", steps),
		zap.Int("numControlPoints", len(points)),
		zap.Any("controlPoints", points),
	)

	bezier, err := BsplineToBezier(points)
	if err != nil {
		this.log.Warn("evalBspline must be called with 4 or more control points", zap.Int("numControlPoints", len(points)))
		return nil, err
	}

	return this.Bezier(bezier, steps)
}
