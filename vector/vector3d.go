// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
)

// Vector3D is a 3-component float32 vector. The zero value is the zero vector.
type Vector3D struct {
	x, y, z float32
}

// New3D builds a Vector3D from integer or floating-point components.
func New3D[T scalar.Number](x, y, z T) Vector3D {
	return Vector3D{x: scalar.Float32(x), y: scalar.Float32(y), z: scalar.Float32(z)}
}

// X returns the first component.
func (v Vector3D) X() float32 { return v.x }

// Y returns the second component.
func (v Vector3D) Y() float32 { return v.y }

// Z returns the third component.
func (v Vector3D) Z() float32 { return v.z }

// XY returns the x and y components.
func (v Vector3D) XY() (float32, float32) { return v.x, v.y }

// XZ returns the x and z components.
func (v Vector3D) XZ() (float32, float32) { return v.x, v.z }

// YZ returns the y and z components.
func (v Vector3D) YZ() (float32, float32) { return v.y, v.z }

// XYZ returns all three components.
func (v Vector3D) XYZ() (float32, float32, float32) { return v.x, v.y, v.z }

// Extend lifts v into homogeneous coordinates with the given w.
func (v Vector3D) Extend(w float32) Vector4D { return Vector4D{v.x, v.y, v.z, w} }

// Add returns v + u.
func (v Vector3D) Add(u Vector3D) Vector3D { return Vector3D{v.x + u.x, v.y + u.y, v.z + u.z} }

// Sub returns v - u.
func (v Vector3D) Sub(u Vector3D) Vector3D { return Vector3D{v.x - u.x, v.y - u.y, v.z - u.z} }

// Neg returns -v.
func (v Vector3D) Neg() Vector3D { return Vector3D{-v.x, -v.y, -v.z} }

// Scale returns s·v.
func (v Vector3D) Scale(s float32) Vector3D { return Vector3D{s * v.x, s * v.y, s * v.z} }

// DivScalar returns v/s. A zero s yields non-finite components.
func (v Vector3D) DivScalar(s float32) Vector3D { return Vector3D{v.x / s, v.y / s, v.z / s} }

// Dot returns the inner product v·u.
func (v Vector3D) Dot(u Vector3D) float32 { return v.x*u.x + v.y*u.y + v.z*u.z }

// Cross returns the cross product v×u. It is anti-commutative:
// v.Cross(u) == u.Cross(v).Neg().
func (v Vector3D) Cross(u Vector3D) Vector3D {
	return Vector3D{
		v.y*u.z - v.z*u.y,
		v.z*u.x - v.x*u.z,
		v.x*u.y - v.y*u.x,
	}
}

// Rem is the operator-style alias of Cross (the `%` spelling used by some
// vector libraries). It always returns exactly v.Cross(u).
func (v Vector3D) Rem(u Vector3D) Vector3D { return v.Cross(u) }

// Norm returns the Euclidean length.
func (v Vector3D) Norm() float32 { return scalar.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z) }

// Sum returns x + y + z.
func (v Vector3D) Sum() float32 { return v.x + v.y + v.z }

// Equal reports exact component-wise equality.
func (v Vector3D) Equal(u Vector3D) bool { return v.x == u.x && v.y == u.y && v.z == u.z }

// ApproxEqual reports component-wise equality within the resolved epsilon.
func (v Vector3D) ApproxEqual(u Vector3D, opts ...scalar.Option) bool {
	return scalar.Close(v.x, u.x, opts...) &&
		scalar.Close(v.y, u.y, opts...) &&
		scalar.Close(v.z, u.z, opts...)
}

// String formats v as "(x, y, z)".
func (v Vector3D) String() string { return fmt.Sprintf("(%v, %v, %v)", v.x, v.y, v.z) }
