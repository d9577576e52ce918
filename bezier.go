package sweep

import (
	"fmt"

	"github.com/alexozer/sweep/internal"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Sample a piecewise cubic Bezier curve
//
// Consecutive segments share their end control point, so a curve of n
// segments has 3n+1 control points. Every segment yields steps+1 samples,
// both ends included. When the first and last control points coincide the
// curve is treated as a loop and its frames are closed up afterwards.
//
// **params**
// + control points, 3n+1 of them with n >= 1
// + samples per segment minus one, at least 1
//
// **returns**
// + the sampled curve with positions and frames
// + ErrControlPoints or ErrSteps on invalid input
func (this *Evaluator) Bezier(points []vec3.T, steps int) (Curve, error) {
	this.log.Debug("evalBezier",
		zap.Int("steps", steps),
		zap.Int("numControlPoints", len(points)),
		zap.Any("controlPoints", points),
	)

	if len(points) < 4 || len(points)%3 != 1 {
		this.log.Warn("evalBezier must be called with 3n+1 control points", zap.Int("numControlPoints", len(points)))
		return nil, fmt.Errorf("%w: bezier needs 3n+1 control points, got %d", ErrControlPoints, len(points))
	}
	if steps < 1 {
		this.log.Warn("evalBezier called with no steps", zap.Int("steps", steps))
		return nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}

	curve := sampleBezier(points, steps)
	closeLoop(curve)

	return curve, nil
}

func sampleBezier(points []vec3.T, steps int) Curve {
	numSegments := (len(points) - 1) / 3
	isLoop := approx(&points[0], &points[len(points)-1])

	curve := make(Curve, 0, numSegments*(steps+1))
	var rmf frame

	for s := 0; s < numSegments; s++ {
		offset := 3 * s

		end := &points[offset+3]
		if isLoop && s == numSegments-1 {
			end = &points[0]
		}
		seg := internal.NewBezierSegment(&points[offset], &points[offset+1], &points[offset+2], end)

		for i := 0; i <= steps; i++ {
			pt, vel := seg.Eval(float64(i) / float64(steps))

			tangent := vel.Normalized()
			normal, binormal := rmf.next(&tangent)

			curve = append(curve, CurvePoint{V: pt, T: tangent, N: normal, B: binormal})
		}
	}

	return curve
}
