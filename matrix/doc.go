// Package matrix provides fixed-size float32 matrices: Matrix2x2, Matrix3x3
// and Matrix4x4.
//
// The package provides:
//
//   - Named constructors (Zeros, Ones, Diagonal, Identity), row-major
//     construction from int or float arrays, and construction from column
//     vectors.
//   - Transpose, Minor, Cofactor, Adjugate and Determinant by Laplace
//     expansion along the first row. Minor steps down one size
//     (4×4 → Matrix3x3 → Matrix2x2 → float32), so the recursion is typed.
//   - Inverse = Adjugate / Determinant. It fails with ErrSingular only when
//     the determinant is exactly 0; near-singular input still inverts.
//   - Add, Sub, Mul, MulVec, Scale and DivScalar. Mul is assembled column by
//     column from MulVec.
//   - FromComplex (2×2 rotation-scaling) and FromQuaternion (4×4).
//
// Matrices are values: every method takes its receiver by value and returns
// a fresh result, so they are safe to share across goroutines. Out-of-range
// indices passed to At, Row, Col or Minor panic.
//
// See the examples in this package for usage patterns.
package matrix
