package sweep

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Tri holds the point indices of one triangle, counterclockwise when seen
// from the side its vertex normals point to.
type Tri [3]int

// Mesh is an indexed triangle mesh. Normals[i] is the normal of Points[i].
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
}

func newMesh(numPoints, numFaces int) *Mesh {
	return &Mesh{
		Faces:   make([]Tri, 0, numFaces),
		Points:  make([]vec3.T, 0, numPoints),
		Normals: make([]vec3.T, 0, numPoints),
	}
}

// Check verifies that there is one normal per point and that every face
// index refers to an existing point.
func (this *Mesh) Check() error {
	if len(this.Normals) != len(this.Points) {
		return fmt.Errorf("%w: %d normals for %d points", ErrInvalidMesh, len(this.Normals), len(this.Points))
	}

	for i, face := range this.Faces {
		for _, iPt := range face {
			if iPt < 0 || iPt >= len(this.Points) {
				return fmt.Errorf("%w: face %d refers to point %d of %d", ErrInvalidMesh, i, iPt, len(this.Points))
			}
		}
	}

	return nil
}

// BoundingBox returns the axis aligned box around all points.
func (this *Mesh) BoundingBox() BoundingBox {
	var bb BoundingBox
	bb.AddRange(this.Points)

	return bb
}

// Get the geometric normal of a face
//
// **params**
// + index of the face
//
// **returns**
// + the unit normal given by the face's winding, or the zero vector for a
// degenerate face
func (this *Mesh) FaceNormal(iFace int) vec3.T {
	tri := this.Faces[iFace]

	v0 := this.Points[tri[0]]
	v1 := vec3.Sub(&this.Points[tri[1]], &v0)
	v2 := vec3.Sub(&this.Points[tri[2]], &v0)

	n := vec3.Cross(&v1, &v2)
	if n.LengthSqr() == 0 {
		return vec3.Zero
	}

	return n.Normalized()
}

// FaceCentroid returns the mean of a face's three points.
func (this *Mesh) FaceCentroid(iFace int) vec3.T {
	var centroid vec3.T
	for _, iPt := range this.Faces[iFace] {
		centroid.Add(&this.Points[iPt])
	}

	return centroid.Scaled(1.0 / 3)
}
