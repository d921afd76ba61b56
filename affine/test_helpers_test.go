// SPDX-License-Identifier: MIT
// Package affine_test contains shared fixtures for the affine tests.
//
// Purpose:
//   - Deterministic random rotations, translations and scales.
//   - Tolerance-aware assertions for float32 vectors and matrices.

package affine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yangfeng-xu/lab3-maths2/affine"
	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// tol is the comparison tolerance for results that went through a float32
// round trip with values of magnitude up to ~10.
const tol = 1e-4

// newRand returns a seeded source so failures are reproducible.
func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// randQuat returns a uniformly distributed unit quaternion.
func randQuat(rng *rand.Rand) geom.Quat {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	return geom.Quat{
		X: float32(a * math.Sin(2*math.Pi*u2)),
		Y: float32(a * math.Cos(2*math.Pi*u2)),
		Z: float32(b * math.Sin(2*math.Pi*u3)),
		S: float32(b * math.Cos(2*math.Pi*u3)),
	}.Normalize()
}

// randVec3 returns a vector with components in [-k, k).
func randVec3(rng *rand.Rand, k float64) geom.Vec3 {
	return geom.Vec3{
		X: float32((rng.Float64()*2 - 1) * k),
		Y: float32((rng.Float64()*2 - 1) * k),
		Z: float32((rng.Float64()*2 - 1) * k),
	}
}

// randScale returns a scale with magnitudes in [0.5, 4); neg allows any sign.
func randScale(rng *rand.Rand, neg bool) geom.Vec3 {
	c := func() float32 {
		v := float32(0.5 + rng.Float64()*3.5)
		if neg && rng.Intn(2) == 0 {
			v = -v
		}
		return v
	}
	return geom.Vec3{X: c(), Y: c(), Z: c()}
}

// randMatrix fills every element with a value in [-2, 2).
func randMatrix(rng *rand.Rand) affine.Matrix {
	var m affine.Matrix
	for i := range m {
		m[i] = float32(rng.Float64()*4 - 2)
	}
	return m
}

func requireVec3Near(t *testing.T, want, got geom.Vec3, delta float64) {
	t.Helper()
	require.True(t, want.ApproxEqual(got, delta), "want %v got %v", want, got)
}

func requireMat3Near(t *testing.T, want, got geom.Mat3, delta float64) {
	t.Helper()
	require.True(t, want.ApproxEqual(got, delta), "want\n%vgot\n%v", want, got)
}

func requireMatrixNear(t *testing.T, want, got affine.Matrix, delta float64) {
	t.Helper()
	require.True(t, want.ApproxEqual(got, affine.WithEpsilon(delta)), "want\n%vgot\n%v", want, got)
}

// requireFinite fails if any element is NaN or ±Inf.
func requireFinite(t *testing.T, m affine.Matrix) {
	t.Helper()
	for i, v := range m {
		f := float64(v)
		require.False(t, math.IsNaN(f) || math.IsInf(f, 0), "element %d is %v", i, v)
	}
}
