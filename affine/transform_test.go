// SPDX-License-Identifier: MIT
package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangfeng-xu/lab3-maths2/affine"
	"github.com/yangfeng-xu/lab3-maths2/geom"
)

func TestIsAffine(t *testing.T) {
	projective := affine.Identity()
	projective.Set(3, 2, -1)

	wOff := affine.Identity()
	wOff.Set(3, 3, 0.5)

	nearly := affine.Identity()
	nearly.Set(3, 0, 5e-6)

	cases := []struct {
		name string
		m    affine.Matrix
		want bool
	}{
		{"identity", affine.Identity(), true},
		{"trs", affine.FromTRS(geom.V3(1, 2, 3), geom.RotY(1), geom.V3(2, 3, 4)), true},
		{"projective", projective, false},
		{"w not one", wOff, false},
		{"within eps", nearly, true},
		{"zero", affine.Matrix{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m.IsAffine())
		})
	}
}

func TestIsAffineHonoursEpsilon(t *testing.T) {
	m := affine.Identity()
	m.Set(3, 1, 1e-3)

	assert.False(t, m.IsAffine())
	assert.True(t, m.IsAffine(affine.WithEpsilon(1e-2)))
}

// TestZeroEpsilonAcceptsExactInput checks eps=0 means exact comparison, so
// exact affine input passes every checked entry point.
func TestZeroEpsilonAcceptsExactInput(t *testing.T) {
	exact := affine.WithEpsilon(0)
	m := affine.Translate(geom.V3(1, 2, 3))

	assert.True(t, affine.Identity().IsAffine(exact))
	assert.True(t, m.IsAffine(exact))
	assert.True(t, m.ApproxEqual(m, exact))

	off := affine.Identity()
	off.Set(3, 0, 1e-7)
	assert.False(t, off.IsAffine(exact))

	inv, err := m.InverseTR(exact)
	require.NoError(t, err)
	assert.Equal(t, affine.Translate(geom.V3(-1, -2, -3)), inv)

	inv, err = affine.Identity().InverseTRS(exact)
	require.NoError(t, err)
	assert.Equal(t, affine.Identity(), inv)

	tr, _, s, err := m.Decompose(exact)
	require.NoError(t, err)
	assert.Equal(t, geom.V3(1, 2, 3), tr)
	assert.Equal(t, geom.V3(1, 1, 1), s)

	r, err := affine.Identity().PolarRotation(exact)
	require.NoError(t, err)
	assert.Equal(t, geom.Mat3Identity(), r)
}

// TestTransformPointOrigin checks Translate(t) maps the origin to t.
func TestTransformPointOrigin(t *testing.T) {
	tr := geom.V3(-4, 0.5, 12)
	require.Equal(t, tr, affine.Translate(tr).TransformPoint(geom.Vec3{}))
}

// TestTransformVectorTranslationInvariant checks that changing only column 3
// leaves TransformVector unchanged.
func TestTransformVectorTranslationInvariant(t *testing.T) {
	rng := newRand(5)
	for i := 0; i < 20; i++ {
		m := affine.FromTRSQuat(randVec3(rng, 10), randQuat(rng), randScale(rng, true))
		v := randVec3(rng, 5)

		moved := m
		moved.SetTranslation(randVec3(rng, 100))

		require.Equal(t, m.TransformVector(v), moved.TransformVector(v))
		require.NotEqual(t, m.TransformPoint(v), moved.TransformPoint(v))
	}
}

// TestTransformPointMatchesTRS checks scale, then rotate, then translate.
func TestTransformPointMatchesTRS(t *testing.T) {
	m := affine.FromTRS(geom.V3(1, 0, 0), geom.RotZ(math.Pi/2), geom.V3(2, 1, 1))

	// (1,0,0) → scale (2,0,0) → rotate (0,2,0) → translate (1,2,0)
	requireVec3Near(t, geom.V3(1, 2, 0), m.TransformPoint(geom.V3(1, 0, 0)), 1e-6)
	requireVec3Near(t, geom.V3(0, 2, 0), m.TransformVector(geom.V3(1, 0, 0)), 1e-6)
}

func TestDet3(t *testing.T) {
	assert.InDelta(t, 24, float64(affine.FromTRS(geom.V3(5, 5, 5), geom.RotX(0.3), geom.V3(2, 3, 4)).Det3()), 1e-4)
	assert.InDelta(t, -1, float64(affine.Scale(geom.V3(-1, 1, 1)).Det3()), 0)
}
