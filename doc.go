// Package linmath is a small, allocation-free linear-algebra kernel for
// graphics and physics code: fixed-size float32 vectors, complex numbers,
// quaternions and square matrices.
//
// Everything is a value type. Operations never mutate their receiver and
// return fresh results, so values can be shared freely between goroutines.
//
// Subpackages:
//
//	scalar/       — Number constraint, Times (scalar on the left), tolerance options
//	vector/       — Vector2D, Vector3D, Vector4D
//	hypercomplex/ — Complex and Quaternion
//	matrix/       — Matrix2x2, Matrix3x3, Matrix4x4: determinant, adjugate, inverse
//	interop/      — adapters to golang.org/x/image/math/f32 and go-gl/mathgl
//
// Quick example:
//
//	m := matrix.New2x2([4]int{3, 4, 5, 6})
//	inv, err := m.Inverse() // err is matrix.ErrSingular only when det == 0
//	v := m.MulVec(vector.New2D(1, 1))
//	w := scalar.Times(2, v) // same as v.Scale(2)
//
//	go get github.com/katalvlaran/linmath
package linmath
