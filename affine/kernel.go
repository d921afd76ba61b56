// SPDX-License-Identifier: MIT
// Package affine: float64 working types.
// Decomposition and inversion read the float32 elements once, do all of
// their arithmetic on these float64 values and narrow exactly once when the
// result is stored. Nothing here is exported.

package affine

import (
	"math"

	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// vec3d is a float64 column or row of the 3×3 block.
type vec3d [3]float64

func (a vec3d) dot(b vec3d) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3d) norm() float64 { return math.Sqrt(a.dot(a)) }

func (a vec3d) scale(k float64) vec3d { return vec3d{a[0] * k, a[1] * k, a[2] * k} }

func (a vec3d) sub(b vec3d) vec3d { return vec3d{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a vec3d) cross(b vec3d) vec3d {
	return vec3d{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3d) vec3() geom.Vec3 {
	return geom.Vec3{X: float32(a[0]), Y: float32(a[1]), Z: float32(a[2])}
}

func vec3dOf(v geom.Vec3) vec3d { return vec3d{float64(v.X), float64(v.Y), float64(v.Z)} }

// basis is a 3×3 float64 matrix kept as three columns.
type basis [3]vec3d

// mat3 narrows the columns into a row-major geom.Mat3.
func (b basis) mat3() geom.Mat3 {
	return geom.Mat3{
		float32(b[0][0]), float32(b[1][0]), float32(b[2][0]),
		float32(b[0][1]), float32(b[1][1]), float32(b[2][1]),
		float32(b[0][2]), float32(b[1][2]), float32(b[2][2]),
	}
}

// at returns element (r, c).
func (b basis) at(r, c int) float64 { return b[c][r] }

func (b basis) det() float64 { return b[0].dot(b[1].cross(b[2])) }

// inverseTranspose returns (B⁻¹)ᵀ. For B with columns a, b, c the rows of
// B⁻¹ are (b×c, c×a, a×b)/det, so the columns of (B⁻¹)ᵀ are exactly those
// cross products. ok is false for a singular B.
func (b basis) inverseTranspose() (basis, bool) {
	d := b.det()
	if d == 0 {
		return basis{}, false
	}
	inv := 1 / d
	return basis{
		b[1].cross(b[2]).scale(inv),
		b[2].cross(b[0]).scale(inv),
		b[0].cross(b[1]).scale(inv),
	}, true
}

func basisOf(m geom.Mat3) basis {
	return basis{vec3dOf(m.Col(0)), vec3dOf(m.Col(1)), vec3dOf(m.Col(2))}
}

// frobeniusDiff returns ‖a − b‖_F.
func frobeniusDiff(a, b basis) float64 {
	var sum float64
	for j := 0; j < 3; j++ {
		d := a[j].sub(b[j])
		sum += d.dot(d)
	}
	return math.Sqrt(sum)
}

// worldAxes are the canonical unit axes, used to complete a basis when only
// one direction survives.
var worldAxes = basis{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// orthonormalize turns the candidate axes into a proper rotation basis.
// Axes flagged false in ok carry no direction (zero scale) and are rebuilt.
//
// Implementation:
//   - Stage 1: modified Gram–Schmidt over the valid axes in X, Y, Z order;
//     an axis whose residual falls to eps or below joins the invalid set.
//   - Stage 2: complete from the survivors. Two valid axes give the third by
//     a cross product in cyclic order (z = x×y, x = y×z, y = z×x). One valid
//     axis k takes the world axis least aligned with it as its successor
//     (k+1)%3, then closes with a cross product. No valid axis gives identity.
//
// The result is always right-handed, so det = +1 up to round-off.
func orthonormalize(axes basis, ok [3]bool, eps float64) basis {
	var out basis
	var have [3]bool

	for j := 0; j < 3; j++ {
		if !ok[j] {
			continue
		}
		v := axes[j]
		for k := 0; k < j; k++ {
			if have[k] {
				v = v.sub(out[k].scale(out[k].dot(v)))
			}
		}
		if n := v.norm(); n > eps {
			out[j] = v.scale(1 / n)
			have[j] = true
		}
	}

	switch {
	case have[0] && have[1]:
		out[2] = out[0].cross(out[1])
	case have[1] && have[2]:
		out[0] = out[1].cross(out[2])
	case have[2] && have[0]:
		out[1] = out[2].cross(out[0])
	default:
		k := -1
		for j := 0; j < 3; j++ {
			if have[j] {
				k = j
			}
		}
		if k < 0 {
			return worldAxes
		}
		// least aligned world axis
		best, bestDot := 0, math.Inf(1)
		for j := 0; j < 3; j++ {
			if d := math.Abs(out[k][j]); d < bestDot {
				best, bestDot = j, d
			}
		}
		e := worldAxes[best]
		next := e.sub(out[k].scale(out[k].dot(e)))
		n1 := (k + 1) % 3
		n2 := (k + 2) % 3
		out[n1] = next.scale(1 / next.norm())
		out[n2] = out[k].cross(out[n1])
	}

	return out
}
