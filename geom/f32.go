// SPDX-License-Identifier: MIT

package geom

import "golang.org/x/image/math/f32"

// F32 converts v to f32.Vec3.
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// F32 converts v to f32.Vec4.
func (v Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }

// F32 converts m to f32.Mat3. Both are row-major, so this is a plain copy.
func (m Mat3) F32() f32.Mat3 { return f32.Mat3(m) }

// Mat3FromF32 converts an f32.Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 { return Mat3(m) }
