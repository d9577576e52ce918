package sweep

import (
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Evaluator turns control points into curves and curves into meshes. It
// keeps no state besides its logger and is safe for concurrent use.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator returns an Evaluator that reports the parameters of every
// call to logger at debug level. A nil logger discards everything.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Evaluator{log: logger}
}

var std = NewEvaluator(nil)

// EvalBezier samples a piecewise cubic Bezier curve. See [Evaluator.Bezier].
func EvalBezier(points []vec3.T, steps int) (Curve, error) {
	return std.Bezier(points, steps)
}

// EvalBspline samples a uniform cubic B-spline. See [Evaluator.Bspline].
func EvalBspline(points []vec3.T, steps int) (Curve, error) {
	return std.Bspline(points, steps)
}

// EvalCircle samples a circle in the xy plane. See [Evaluator.Circle].
func EvalCircle(radius float64, steps int) Curve {
	return std.Circle(radius, steps)
}

// MakeSurfRev builds a surface of revolution. See [Evaluator.SurfRev].
func MakeSurfRev(profile Curve, steps int) (*Mesh, error) {
	return std.SurfRev(profile, steps)
}

// MakeGenCyl builds a generalized cylinder. See [Evaluator.GenCyl].
func MakeGenCyl(profile, rail Curve) (*Mesh, error) {
	return std.GenCyl(profile, rail)
}
