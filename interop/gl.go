// SPDX-License-Identifier: MIT

package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/linmath/hypercomplex"
	"github.com/katalvlaran/linmath/matrix"
	"github.com/katalvlaran/linmath/vector"
)

// Vec3ToGL copies v into an mgl32.Vec3.
func Vec3ToGL(v vector.Vector3D) mgl32.Vec3 { return mgl32.Vec3{v.X(), v.Y(), v.Z()} }

// Vec4ToGL copies v into an mgl32.Vec4.
func Vec4ToGL(v vector.Vector4D) mgl32.Vec4 { return mgl32.Vec4{v.X(), v.Y(), v.Z(), v.W()} }

// Vec3FromGL is the inverse of Vec3ToGL.
func Vec3FromGL(v mgl32.Vec3) vector.Vector3D { return vector.New3D(v[0], v[1], v[2]) }

// Vec4FromGL is the inverse of Vec4ToGL.
func Vec4FromGL(v mgl32.Vec4) vector.Vector4D { return vector.New4D(v[0], v[1], v[2], v[3]) }

// Mat3ToGL returns m in mgl32's column-major layout.
func Mat3ToGL(m matrix.Matrix3x3) mgl32.Mat3 {
	// the row-major array of the transpose is the column-major array of m
	return mgl32.Mat3(m.Transpose().Array())
}

// Mat4ToGL returns m in mgl32's column-major layout.
func Mat4ToGL(m matrix.Matrix4x4) mgl32.Mat4 {
	return mgl32.Mat4(m.Transpose().Array())
}

// Mat3FromGL is the inverse of Mat3ToGL.
func Mat3FromGL(m mgl32.Mat3) matrix.Matrix3x3 {
	return matrix.New3x3([9]float32(m)).Transpose()
}

// Mat4FromGL is the inverse of Mat4ToGL.
func Mat4FromGL(m mgl32.Mat4) matrix.Matrix4x4 {
	return matrix.New4x4([16]float32(m)).Transpose()
}

// QuaternionToGL maps (r, i, j, k) to mgl32.Quat{W: r, V: (i, j, k)}.
func QuaternionToGL(q hypercomplex.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.R(), V: mgl32.Vec3{q.I(), q.J(), q.K()}}
}

// QuaternionFromGL is the inverse of QuaternionToGL.
func QuaternionFromGL(q mgl32.Quat) hypercomplex.Quaternion {
	return hypercomplex.NewQuaternion(q.W, q.V[0], q.V[1], q.V[2])
}

// UploadBuffer packs ms back to back in column-major order, 16 floats per
// matrix, ready for glUniformMatrix4fv(loc, len(ms), false, &buf[0]).
func UploadBuffer(ms ...matrix.Matrix4x4) []float32 {
	buf := make([]float32, 0, 16*len(ms))
	for _, m := range ms {
		gl := Mat4ToGL(m)
		buf = append(buf, gl[:]...)
	}

	return buf
}
