// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"
	"strings"

	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// Matrix is a dense 4×4 matrix of float32 stored row-major: element (r, c)
// lives at m[4*r+c]. It is a value type; assignment copies all 16 elements.
//
// When Matrix represents an affine transform, row 3 is (0,0,0,1) and the
// top-left 3×3 block is R·diag(s) for a proper rotation R and scale s, with
// the translation in column 3. The zero value is the zero matrix.
type Matrix [16]float32

// Identity returns the multiplicative identity.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col).
// Indices outside [0,3] are a caller error and panic with an index-out-of-range
// runtime error.
// Complexity: O(1).
func (m Matrix) At(row, col int) float32 {
	return m[4*row+col]
}

// Set assigns element (row, col). Same index contract as At.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float32) {
	m[4*row+col] = v
}

// Row returns row i as a homogeneous vector.
func (m Matrix) Row(i int) geom.Vec4 {
	return geom.Vec4{X: m[4*i], Y: m[4*i+1], Z: m[4*i+2], W: m[4*i+3]}
}

// Col returns column j as a homogeneous vector.
func (m Matrix) Col(j int) geom.Vec4 {
	return geom.Vec4{X: m[j], Y: m[4+j], Z: m[8+j], W: m[12+j]}
}

// Mul returns the matrix product m × b.
//
// Implementation:
//   - Stage 1: for each (i, j) accumulate the four products in float64.
//   - Stage 2: narrow the sum to float32 once, on assignment.
//
// Accumulating wider than the stored type keeps round-off from compounding
// across long transform chains.
//
// Complexity: 64 multiply-adds, no allocation.
func (m Matrix) Mul(b Matrix) Matrix {
	var out Matrix
	var i, j, k int
	var sum float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			sum = 0
			for k = 0; k < 4; k++ {
				sum += float64(m[4*i+k]) * float64(b[4*k+j])
			}
			out[4*i+j] = float32(sum)
		}
	}

	return out
}

// MulVec4 returns the matrix-vector product m × v.
func (m Matrix) MulVec4(v geom.Vec4) geom.Vec4 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	row := func(i int) float32 {
		return float32(float64(m[4*i])*x + float64(m[4*i+1])*y + float64(m[4*i+2])*z + float64(m[4*i+3])*w)
	}

	return geom.Vec4{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Compose returns ms[0] × ms[1] × … × ms[n-1]. Applied to a point, the last
// matrix acts first. An empty argument list yields Identity.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}

	return out
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*c+r] = m[4*r+c]
		}
	}

	return out
}

// ApproxEqual reports whether every element of m and b differs by at most
// eps (DefaultEpsilon unless overridden).
func (m Matrix) ApproxEqual(b Matrix, opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for i := range m {
		if math.Abs(float64(m[i])-float64(b[i])) > eps {
			return false
		}
	}

	return true
}

// String formats the matrix one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "[%g, %g, %g, %g]\n", m[4*r], m[4*r+1], m[4*r+2], m[4*r+3])
	}

	return sb.String()
}

// col3 reads column j of the 3×3 block in float64.
func (m Matrix) col3(j int) vec3d {
	return vec3d{float64(m[j]), float64(m[4+j]), float64(m[8+j])}
}

// block reads the 3×3 block in float64.
func (m Matrix) block() basis {
	return basis{m.col3(0), m.col3(1), m.col3(2)}
}

// setBlock narrows b into the 3×3 block, leaving column 3 and row 3 alone.
func (m *Matrix) setBlock(b basis) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[4*r+c] = float32(b[c][r])
		}
	}
}
