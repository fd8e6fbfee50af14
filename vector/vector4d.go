// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
)

// Vector4D is a 4-component float32 vector, typically a homogeneous
// coordinate. The zero value is the zero vector.
type Vector4D struct {
	x, y, z, w float32
}

// New4D builds a Vector4D from integer or floating-point components.
func New4D[T scalar.Number](x, y, z, w T) Vector4D {
	return Vector4D{
		x: scalar.Float32(x),
		y: scalar.Float32(y),
		z: scalar.Float32(z),
		w: scalar.Float32(w),
	}
}

// X returns the first component.
func (v Vector4D) X() float32 { return v.x }

// Y returns the second component.
func (v Vector4D) Y() float32 { return v.y }

// Z returns the third component.
func (v Vector4D) Z() float32 { return v.z }

// W returns the fourth component.
func (v Vector4D) W() float32 { return v.w }

// Two-component swizzles.

func (v Vector4D) XY() (float32, float32) { return v.x, v.y }
func (v Vector4D) XZ() (float32, float32) { return v.x, v.z }
func (v Vector4D) XW() (float32, float32) { return v.x, v.w }
func (v Vector4D) YZ() (float32, float32) { return v.y, v.z }
func (v Vector4D) YW() (float32, float32) { return v.y, v.w }
func (v Vector4D) ZW() (float32, float32) { return v.z, v.w }

// Three-component swizzles.

func (v Vector4D) XYZ() (float32, float32, float32) { return v.x, v.y, v.z }
func (v Vector4D) XYW() (float32, float32, float32) { return v.x, v.y, v.w }
func (v Vector4D) XZW() (float32, float32, float32) { return v.x, v.z, v.w }
func (v Vector4D) YZW() (float32, float32, float32) { return v.y, v.z, v.w }

// XYZW returns all four components.
func (v Vector4D) XYZW() (float32, float32, float32, float32) { return v.x, v.y, v.z, v.w }

// Truncate drops w. No perspective divide is applied.
func (v Vector4D) Truncate() Vector3D { return Vector3D{v.x, v.y, v.z} }

// Add returns v + u.
func (v Vector4D) Add(u Vector4D) Vector4D {
	return Vector4D{v.x + u.x, v.y + u.y, v.z + u.z, v.w + u.w}
}

// Sub returns v - u.
func (v Vector4D) Sub(u Vector4D) Vector4D {
	return Vector4D{v.x - u.x, v.y - u.y, v.z - u.z, v.w - u.w}
}

// Neg returns -v.
func (v Vector4D) Neg() Vector4D { return Vector4D{-v.x, -v.y, -v.z, -v.w} }

// Scale returns s·v.
func (v Vector4D) Scale(s float32) Vector4D {
	return Vector4D{s * v.x, s * v.y, s * v.z, s * v.w}
}

// DivScalar returns v/s. A zero s yields non-finite components.
func (v Vector4D) DivScalar(s float32) Vector4D {
	return Vector4D{v.x / s, v.y / s, v.z / s, v.w / s}
}

// Dot returns the inner product v·u.
func (v Vector4D) Dot(u Vector4D) float32 {
	return v.x*u.x + v.y*u.y + v.z*u.z + v.w*u.w
}

// Norm returns the Euclidean length.
func (v Vector4D) Norm() float32 { return scalar.Sqrt(v.Dot(v)) }

// Sum returns x + y + z + w.
func (v Vector4D) Sum() float32 { return v.x + v.y + v.z + v.w }

// Equal reports exact component-wise equality.
func (v Vector4D) Equal(u Vector4D) bool {
	return v.x == u.x && v.y == u.y && v.z == u.z && v.w == u.w
}

// ApproxEqual reports component-wise equality within the resolved epsilon.
func (v Vector4D) ApproxEqual(u Vector4D, opts ...scalar.Option) bool {
	return scalar.Close(v.x, u.x, opts...) &&
		scalar.Close(v.y, u.y, opts...) &&
		scalar.Close(v.z, u.z, opts...) &&
		scalar.Close(v.w, u.w, opts...)
}

// String formats v as "(x, y, z, w)".
func (v Vector4D) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.x, v.y, v.z, v.w)
}
