package sweep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// assertFrame checks that the frame of a sample is orthonormal and right handed.
func assertFrame(t assert.TestingT, p CurvePoint, delta float64, msgAndArgs ...any) {
	assert.InDelta(t, 1, p.T.Length(), delta, msgAndArgs...)
	assert.InDelta(t, 1, p.N.Length(), delta, msgAndArgs...)
	assert.InDelta(t, 1, p.B.Length(), delta, msgAndArgs...)

	assert.InDelta(t, 0, vec3.Dot(&p.T, &p.N), delta, msgAndArgs...)
	assert.InDelta(t, 0, vec3.Dot(&p.N, &p.B), delta, msgAndArgs...)
	assert.InDelta(t, 0, vec3.Dot(&p.T, &p.B), delta, msgAndArgs...)

	cross := vec3.Cross(&p.T, &p.N)
	assert.InDeltaSlice(t, cross[:], p.B[:], delta, msgAndArgs...)
}

func assertVec(t assert.TestingT, want, got vec3.T, delta float64, msgAndArgs ...any) {
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}
