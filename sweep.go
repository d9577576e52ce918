package sweep

import (
	"fmt"

	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Generate a generalized cylinder by sweeping a profile along a rail
//
// The profile's x and y coordinates are laid out along the binormal and the
// normal of every rail sample, and its negated normals are carried into the
// rail frame [B N T]. When the rail is a loop an extra ring of faces joins
// the last slice to the first; otherwise the tube is left open.
//
// **params**
// + profile curve lying in the xy plane
// + rail curve with frames, e.g. from EvalBezier
//
// **returns**
// + a mesh with len(rail)·len(profile) points
// + ErrEmptyCurve or ErrNotFlat on invalid input
func (this *Evaluator) GenCyl(profile, rail Curve) (*Mesh, error) {
	this.log.Debug("makeGenCyl", zap.Int("profileSamples", len(profile)), zap.Int("railSamples", len(rail)))

	if len(profile) == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrEmptyCurve)
	}
	if len(rail) == 0 {
		return nil, fmt.Errorf("%w: empty sweep curve", ErrEmptyCurve)
	}
	if !profile.isFlat() {
		this.log.Warn("genCyl profile curve must be flat on xy plane")
		return nil, fmt.Errorf("%w: generalized cylinder", ErrNotFlat)
	}

	k, n := len(profile), len(rail)

	isLoop := n > 1 && rail.IsLoop()
	if isLoop {
		this.log.Debug("sweep curve is a loop")
	}

	numFaces := 2 * (n - 1) * (k - 1)
	if isLoop {
		numFaces += 2 * (k - 1)
	}
	mesh := newMesh(n*k, numFaces)

	var counter int
	for i := range rail {
		s := &rail[i]
		basis := mat3.T{s.B, s.N, s.T}

		for j := range profile {
			p := &profile[j]

			x, y := s.B.Scaled(p.V[0]), s.N.Scaled(p.V[1])
			pt := vec3.Add(&s.V, &x)
			pt.Add(&y)
			mesh.Points = append(mesh.Points, pt)

			normal := p.N.Inverted()
			mesh.Normals = append(mesh.Normals, basis.MulVec3(&normal))

			if i > 0 && j > 0 {
				mesh.Faces = append(mesh.Faces, Tri{counter, counter - k, counter - 1})
			}
			if j < k-1 {
				switch {
				case i < n-1:
					mesh.Faces = append(mesh.Faces, Tri{counter, counter + k, counter + 1})
				case isLoop:
					// the first slice follows the last one
					mesh.Faces = append(mesh.Faces,
						Tri{counter, j, counter + 1},
						Tri{j, j + 1, counter + 1},
					)
				}
			}

			counter++
		}
	}

	return mesh, nil
}
