package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
	"pgregory.net/rapid"
)

func TestBsplineToBezierCount(t *testing.T) {
	for n := 4; n < 12; n++ {
		pts := make([]vec3.T, n)
		for i := range pts {
			pts[i] = vec3.T{float64(i), float64(i * i), 0}
		}

		bezier, err := BsplineToBezier(pts)
		require.NoError(t, err)
		assert.Len(t, bezier, 3*(n-3)+1, "n = %d", n)
		assert.Equal(t, 1, len(bezier)%3)
	}
}

func TestEvalBsplineTooFewPoints(t *testing.T) {
	for n := 0; n < 4; n++ {
		curve, err := EvalBspline(make([]vec3.T, n), 4)
		assert.True(t, errors.Is(err, ErrControlPoints), "n = %d: %v", n, err)
		assert.Nil(t, curve)
	}
}

func TestEvalBsplineZeroSteps(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}, {3, 1, 0}}

	_, err := EvalBspline(pts, 0)
	assert.True(t, errors.Is(err, ErrSteps))
}

func TestEvalBsplineCollinear(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}

	curve, err := EvalBspline(pts, 1)
	require.NoError(t, err)
	require.Len(t, curve, 2)

	// a uniform cubic B-spline starts and ends at (p0+4p1+p2)/6 and (p1+4p2+p3)/6
	assertVec(t, vec3.T{1, 0, 0}, curve[0].V, 1e-12)
	assertVec(t, vec3.T{2, 0, 0}, curve[1].V, 1e-12)

	var hull BoundingBox
	hull.AddRange(pts)
	for i := range curve {
		assert.True(t, hull.Contains(&curve[i].V, 1e-12), "sample %d", i)
		assertVec(t, vec3.UnitX, curve[i].T, 1e-12)
	}

	// the middle sample is the midpoint of the convex hull
	curve, err = EvalBspline(pts, 2)
	require.NoError(t, err)
	require.Len(t, curve, 3)
	center := hull.Center()
	assertVec(t, center, curve[1].V, 1e-12)
}

func TestEvalBsplineStaysInHull(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(4, 10).Draw(t, "numControlPoints")
		steps := rapid.IntRange(1, 8).Draw(t, "steps")
		pts := drawControlPoints(t, n)

		curve, err := EvalBspline(pts, steps)
		require.NoError(t, err)
		require.Len(t, curve, (n-3)*(steps+1))

		var hull BoundingBox
		hull.AddRange(pts)
		for i, p := range curve {
			assert.True(t, hull.Contains(&p.V, 1e-9), "sample %d", i)
			assertFrame(t, p, 1e-6, "sample %d", i)
		}
	})
}
