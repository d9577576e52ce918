package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func straightRail(t *testing.T, steps int) Curve {
	t.Helper()
	rail, err := EvalBezier([]vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}, steps)
	require.NoError(t, err)
	return rail
}

func TestMakeGenCylStraight(t *testing.T) {
	profile := EvalCircle(0.25, 6)
	rail := straightRail(t, 4)
	k, n := len(profile), len(rail)

	mesh, err := MakeGenCyl(profile, rail)
	require.NoError(t, err)
	require.NoError(t, mesh.Check())

	assert.Len(t, mesh.Points, n*k)
	assert.Len(t, mesh.Faces, 2*(n-1)*(k-1))
	assertNormalsAgree(t, mesh)

	// the rail frame is T = x, N = y, B = z, and profile x maps onto B
	for i := range rail {
		assertVec(t, vec3.T{rail[i].V[0], 0, 0.25}, mesh.Points[i*k], 1e-12, "slice %d", i)
		assertVec(t, vec3.UnitZ, mesh.Normals[i*k], 1e-12, "slice %d", i)
	}

	bb := mesh.BoundingBox()
	assert.Equal(t, 0, bb.LongestAxis())
	assert.InDelta(t, 3, bb.AxisLength(0), 1e-12)
	assert.InDelta(t, 0.25*math.Sqrt(3), bb.AxisLength(1), 1e-12)
	assert.InDelta(t, 0.5, bb.AxisLength(2), 1e-12)
}

func TestMakeGenCylPointsKeepProfileDistance(t *testing.T) {
	profile := EvalCircle(0.2, 8)
	rail, err := EvalBezier([]vec3.T{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {3, 0, 2}}, 10)
	require.NoError(t, err)

	mesh, err := MakeGenCyl(profile, rail)
	require.NoError(t, err)

	k := len(profile)
	for i := range rail {
		for j := range profile {
			pt := mesh.Points[i*k+j]
			assert.InDelta(t, 0.2, vec3.Distance(&pt, &rail[i].V), 1e-9)

			// the profile lies in the plane normal to the rail
			d := vec3.Sub(&pt, &rail[i].V)
			assert.InDelta(t, 0, vec3.Dot(&d, &rail[i].T), 1e-9)
		}
	}
}

func TestMakeGenCylLoop(t *testing.T) {
	profile := EvalCircle(0.25, 6)
	k := len(profile)

	rail := EvalCircle(2, 12)
	require.True(t, rail.IsLoop())

	closed, err := MakeGenCyl(profile, rail)
	require.NoError(t, err)
	require.NoError(t, closed.Check())

	open := append(Curve(nil), rail...)
	open[len(open)-1].V[2] += 0.5
	require.False(t, open.IsLoop())

	tube, err := MakeGenCyl(profile, open)
	require.NoError(t, err)
	require.NoError(t, tube.Check())

	assert.Len(t, closed.Faces, 2*12*(k-1)+2*(k-1))
	assert.Len(t, tube.Faces, 2*12*(k-1))
	assert.Equal(t, 2*(k-1), len(closed.Faces)-len(tube.Faces))

	// the extra ring joins the last slice to the first
	last := 12 * k
	assert.Contains(t, closed.Faces, Tri{last, 0, last + 1})
	assert.Contains(t, closed.Faces, Tri{0, 1, last + 1})
}

func TestMakeGenCylSingleSample(t *testing.T) {
	profile := EvalCircle(1, 4)
	rail := straightRail(t, 1)[:1]

	mesh, err := MakeGenCyl(profile, rail)
	require.NoError(t, err)
	assert.Len(t, mesh.Points, len(profile))
	assert.Empty(t, mesh.Faces)
}

func TestMakeGenCylInvalidInput(t *testing.T) {
	raised, err := EvalBezier([]vec3.T{{1, 0, 0}, {1, 1, 1}, {1, 2, 1}, {1, 3, 0}}, 4)
	require.NoError(t, err)
	profile := EvalCircle(1, 4)
	rail := straightRail(t, 2)

	tests := []struct {
		name          string
		profile, rail Curve
		want          error
	}{
		{"empty profile", nil, rail, ErrEmptyCurve},
		{"empty rail", profile, Curve{}, ErrEmptyCurve},
		{"profile off the xy plane", raised, rail, ErrNotFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := MakeGenCyl(tt.profile, tt.rail)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Nil(t, mesh)
		})
	}
}
