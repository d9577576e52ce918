package sweep

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// The zero value for BoundingBox is an empty box ready to use.
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Add grows the box to contain point and returns the box for chaining.
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		this.Max[i] = math.Max(this.Max[i], val)
		this.Min[i] = math.Min(this.Min[i], val)
	}

	return this
}

// AddRange grows the box to contain all points.
func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// Empty reports whether nothing has been added yet.
func (this *BoundingBox) Empty() bool {
	return !this.initialized
}

// Determine if a point lies in the box
//
// **params**
// + the point
// + how far outside the box the point may lie on every axis
//
// **returns**
// + false for an empty box, otherwise whether the point is inside
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	for i := range point {
		if point[i] < this.Min[i]-tol || point[i] > this.Max[i]+tol {
			return false
		}
	}

	return true
}

// AxisLength returns the extent of the box along axis i (0 for x, 1 for y,
// 2 for z), or 0 when i is out of range.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i >= len(this.Min) {
		return 0
	}

	return math.Abs(this.Max[i] - this.Min[i])
}

// LongestAxis returns the index of the axis along which the box is largest.
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0
	for i := range this.Min {
		if l := this.AxisLength(i); l > max {
			id, max = i, l
		}
	}

	return id
}

// Center returns the midpoint of the box.
func (this *BoundingBox) Center() vec3.T {
	c := vec3.Add(&this.Min, &this.Max)
	return c.Scaled(0.5)
}
