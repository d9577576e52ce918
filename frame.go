package sweep

import (
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

// Seeds tried, in order, for the binormal preceding the first sample. Only
// the first one not parallel to the initial tangent is used, so every curve
// that does not start along z gets the (0, 0, 1) seed.
var frameSeeds = [...]vec3.T{vec3.UnitZ, vec3.UnitX, vec3.UnitY}

// frame propagates a rotation minimizing frame along a curve. One frame is
// used for a whole evaluation so the binormal stays continuous across
// segment boundaries.
type frame struct {
	prev   vec3.T // binormal of the previous sample
	seeded bool
}

func (this *frame) seed(tangent *vec3.T) {
	this.seeded = true
	for _, s := range frameSeeds {
		c := vec3.Cross(&s, tangent)
		if c.LengthSqr() >= Epsilon {
			this.prev = s
			return
		}
	}
}

// next returns the normal and binormal for the given unit tangent and
// carries the binormal forward to the following sample.
func (this *frame) next(tangent *vec3.T) (n, b vec3.T) {
	if !this.seeded {
		this.seed(tangent)
	}

	n = vec3.Cross(&this.prev, tangent)
	n.Normalize()
	b = vec3.Cross(tangent, &n)
	b.Normalize()

	this.prev = b
	return
}

// Close the frame of a looping curve
//
// Rotation minimizing frames generally do not come back to their starting
// orientation on a closed curve. The mismatch between the first and last
// normal is spread over the samples by turning sample i about its own
// tangent by angle·i/(len-1), so the last frame lands on the first.
//
// **params**
// + the fully sampled curve, modified in place
func closeLoop(curve Curve) {
	if len(curve) < 2 {
		return
	}

	first, last := &curve[0], &curve[len(curve)-1]
	if !approx(&first.V, &last.V) || approx(&first.N, &last.N) {
		return
	}

	cos := math.Max(-1, math.Min(1, vec3.Dot(&first.N, &last.N)))
	angle := math.Acos(cos)

	// turn towards the first normal
	axis := vec3.Cross(&last.N, &first.N)
	if vec3.Dot(&axis, &last.T) < 0 {
		angle = -angle
	}

	angleStep := angle / float64(len(curve)-1)
	for i := 1; i < len(curve); i++ {
		rot := quaternion.FromAxisAngle(&curve[i].T, angleStep*float64(i))
		curve[i].N = rot.RotatedVec3(&curve[i].N)
		curve[i].B = rot.RotatedVec3(&curve[i].B)
	}
}
