// SPDX-License-Identifier: MIT

package interop

import (
	"github.com/katalvlaran/linmath/matrix"
	"github.com/katalvlaran/linmath/vector"
	"golang.org/x/image/math/f32"
)

// Vec2ToF32 copies v into an f32.Vec2.
func Vec2ToF32(v vector.Vector2D) f32.Vec2 { return f32.Vec2{v.X(), v.Y()} }

// Vec3ToF32 copies v into an f32.Vec3.
func Vec3ToF32(v vector.Vector3D) f32.Vec3 { return f32.Vec3{v.X(), v.Y(), v.Z()} }

// Vec4ToF32 copies v into an f32.Vec4.
func Vec4ToF32(v vector.Vector4D) f32.Vec4 { return f32.Vec4{v.X(), v.Y(), v.Z(), v.W()} }

// Vec2FromF32 is the inverse of Vec2ToF32.
func Vec2FromF32(v f32.Vec2) vector.Vector2D { return vector.New2D(v[0], v[1]) }

// Vec3FromF32 is the inverse of Vec3ToF32.
func Vec3FromF32(v f32.Vec3) vector.Vector3D { return vector.New3D(v[0], v[1], v[2]) }

// Vec4FromF32 is the inverse of Vec4ToF32.
func Vec4FromF32(v f32.Vec4) vector.Vector4D { return vector.New4D(v[0], v[1], v[2], v[3]) }

// Mat3ToF32 copies m; both layouts are row-major.
func Mat3ToF32(m matrix.Matrix3x3) f32.Mat3 { return f32.Mat3(m.Array()) }

// Mat4ToF32 copies m; both layouts are row-major.
func Mat4ToF32(m matrix.Matrix4x4) f32.Mat4 { return f32.Mat4(m.Array()) }

// Mat3FromF32 is the inverse of Mat3ToF32.
func Mat3FromF32(m f32.Mat3) matrix.Matrix3x3 { return matrix.New3x3([9]float32(m)) }

// Mat4FromF32 is the inverse of Mat4ToF32.
func Mat4FromF32(m f32.Mat4) matrix.Matrix4x4 { return matrix.New4x4([16]float32(m)) }
