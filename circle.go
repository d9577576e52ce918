package sweep

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Circle samples a counterclockwise circle of the given radius around the
// origin of the xy plane, steps+1 samples from angle 0 through 2π. Normals
// point to the center and the binormal is +z. With zero steps the single
// sample at angle 0 is returned.
func (this *Evaluator) Circle(radius float64, steps int) Curve {
	this.log.Debug("evalCircle", zap.Float64("radius", radius), zap.Int("steps", steps))

	if steps < 1 {
		steps = 0
	}

	curve := make(Curve, steps+1)
	for i := range curve {
		var t float64
		if steps > 0 {
			t = 2 * math.Pi * float64(i) / float64(steps)
		}
		sin, cos := math.Sincos(t)

		curve[i] = CurvePoint{
			V: vec3.T{radius * cos, radius * sin, 0},
			T: vec3.T{-sin, cos, 0},
			N: vec3.T{-cos, -sin, 0},
			B: vec3.UnitZ,
		}
	}

	return curve
}
