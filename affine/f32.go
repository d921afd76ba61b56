// SPDX-License-Identifier: MIT

package affine

import "golang.org/x/image/math/f32"

// F32 converts m to f32.Mat4. Both types are row-major with the same
// element order, so the conversion is a copy.
func (m Matrix) F32() f32.Mat4 { return f32.Mat4(m) }

// FromF32 converts an f32.Mat4 into a Matrix.
func FromF32(m f32.Mat4) Matrix { return Matrix(m) }
