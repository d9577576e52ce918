package sweep

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// Generate a surface of revolution
//
// The profile is turned about the y axis in steps increments of 2π/steps,
// from 0 through 2π, so the first and last ring of points coincide (the
// seam is not welded). Profile normals are negated so that a
// counterclockwise profile yields outward normals, and faces are wound to
// agree with them.
//
// **params**
// + profile curve lying in the xy plane
// + number of rotation increments, at least 1
//
// **returns**
// + a mesh with (steps+1)·len(profile) points
// + ErrEmptyCurve, ErrNotFlat or ErrSteps on invalid input
func (this *Evaluator) SurfRev(profile Curve, steps int) (*Mesh, error) {
	this.log.Debug("makeSurfRev", zap.Int("profileSamples", len(profile)), zap.Int("steps", steps))

	if len(profile) == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrEmptyCurve)
	}
	if !profile.isFlat() {
		this.log.Warn("surfRev profile curve must be flat on xy plane")
		return nil, fmt.Errorf("%w: surface of revolution", ErrNotFlat)
	}
	if steps < 1 {
		this.log.Warn("surfRev called with no steps", zap.Int("steps", steps))
		return nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}

	k := len(profile)
	mesh := newMesh((steps+1)*k, 2*steps*(k-1))

	var counter int
	for i := 0; i <= steps; i++ {
		rot := quaternion.FromAxisAngle(&vec3.UnitY, 2*math.Pi*float64(i)/float64(steps))

		for j := range profile {
			mesh.Points = append(mesh.Points, rot.RotatedVec3(&profile[j].V))

			normal := profile[j].N.Inverted()
			mesh.Normals = append(mesh.Normals, rot.RotatedVec3(&normal))

			if i < steps && j < k-1 {
				mesh.Faces = append(mesh.Faces, Tri{counter, counter + k, counter + 1})
			}
			if i > 0 && j > 0 {
				mesh.Faces = append(mesh.Faces, Tri{counter, counter - k, counter - 1})
			}

			counter++
		}
	}

	return mesh, nil
}
