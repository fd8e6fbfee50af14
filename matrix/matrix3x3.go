// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vector"
)

// Matrix3x3 is a 3×3 float32 matrix stored row-major.
// The zero value is the zero matrix.
type Matrix3x3 struct {
	data [9]float32
}

// Zeros3x3 returns the zero matrix.
func Zeros3x3() Matrix3x3 { return Matrix3x3{} }

// Ones3x3 returns the matrix with every entry 1.
func Ones3x3() Matrix3x3 {
	return Matrix3x3{data: [9]float32{1, 1, 1, 1, 1, 1, 1, 1, 1}}
}

// Diagonal3x3 returns value on the diagonal and 0 elsewhere.
func Diagonal3x3(value float32) Matrix3x3 {
	return Matrix3x3{data: [9]float32{
		value, 0, 0,
		0, value, 0,
		0, 0, value,
	}}
}

// Identity3x3 returns Diagonal3x3(1).
func Identity3x3() Matrix3x3 { return Diagonal3x3(1) }

// New3x3 builds a matrix from 9 row-major values.
func New3x3[T scalar.Number](data [9]T) Matrix3x3 {
	var m Matrix3x3
	for i, v := range data {
		m.data[i] = scalar.Float32(v)
	}

	return m
}

// FromColumns3x3 builds the matrix whose columns are c0, c1 and c2.
func FromColumns3x3(c0, c1, c2 vector.Vector3D) Matrix3x3 {
	return Matrix3x3{data: [9]float32{
		c0.X(), c1.X(), c2.X(),
		c0.Y(), c1.Y(), c2.Y(),
		c0.Z(), c1.Z(), c2.Z(),
	}}
}

// At returns the entry at (row, col). Panics when out of range.
func (m Matrix3x3) At(row, col int) float32 {
	checkIndex(3, row, col)
	return m.data[row*3+col]
}

// Row returns row i as a vector.
func (m Matrix3x3) Row(i int) vector.Vector3D {
	checkVectorIndex(3, i)
	return vector.New3D(m.data[3*i], m.data[3*i+1], m.data[3*i+2])
}

// Col returns column j as a vector.
func (m Matrix3x3) Col(j int) vector.Vector3D {
	checkVectorIndex(3, j)
	return vector.New3D(m.data[j], m.data[j+3], m.data[j+6])
}

// Array returns a row-major copy of the entries.
func (m Matrix3x3) Array() [9]float32 { return m.data }

// Transpose swaps (i,j) and (j,i).
func (m Matrix3x3) Transpose() Matrix3x3 {
	var t Matrix3x3
	transposeInto(t.data[:], m.data[:], 3)

	return t
}

// Minor deletes row and col and returns the remaining 2×2 matrix.
func (m Matrix3x3) Minor(row, col int) Matrix2x2 {
	checkIndex(3, row, col)
	var out Matrix2x2
	minorInto(out.data[:], m.data[:], 3, row, col)

	return out
}

// Cofactor returns the matrix of (-1)^(i+j)·det(Minor(i,j)).
func (m Matrix3x3) Cofactor() Matrix3x3 {
	var c Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.data[i*3+j] = cofactorSign(i, j) * m.Minor(i, j).Determinant()
		}
	}

	return c
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix3x3) Adjugate() Matrix3x3 { return m.Cofactor().Transpose() }

// Determinant expands along row 0: Σ_j (-1)^j·m[0,j]·det(Minor(0,j)).
func (m Matrix3x3) Determinant() float32 {
	var det float32
	for j := 0; j < 3; j++ {
		det += cofactorSign(0, j) * m.data[j] * m.Minor(0, j).Determinant()
	}

	return det
}

// Inverse returns Adjugate/Determinant.
//
// Errors:
//   - ErrSingular when the determinant is exactly 0 (no epsilon).
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3x3{}, matrixErrorf(opInverse, ErrSingular)
	}

	return m.Adjugate().DivScalar(det), nil
}

// Add returns m + n.
func (m Matrix3x3) Add(n Matrix3x3) Matrix3x3 {
	var out Matrix3x3
	for i := range m.data {
		out.data[i] = m.data[i] + n.data[i]
	}

	return out
}

// Sub returns m - n.
func (m Matrix3x3) Sub(n Matrix3x3) Matrix3x3 {
	var out Matrix3x3
	for i := range m.data {
		out.data[i] = m.data[i] - n.data[i]
	}

	return out
}

// Mul returns the product m·n, assembled column by column as m·col_j(n).
func (m Matrix3x3) Mul(n Matrix3x3) Matrix3x3 {
	return FromColumns3x3(m.MulVec(n.Col(0)), m.MulVec(n.Col(1)), m.MulVec(n.Col(2)))
}

// MulVec returns m·v with v as a column: Σ_j col_j·v[j].
func (m Matrix3x3) MulVec(v vector.Vector3D) vector.Vector3D {
	return m.Col(0).Scale(v.X()).
		Add(m.Col(1).Scale(v.Y())).
		Add(m.Col(2).Scale(v.Z()))
}

// Scale returns s·m.
func (m Matrix3x3) Scale(s float32) Matrix3x3 {
	var out Matrix3x3
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// DivScalar returns m/s entry by entry.
func (m Matrix3x3) DivScalar(s float32) Matrix3x3 {
	var out Matrix3x3
	for i, v := range m.data {
		out.data[i] = v / s
	}

	return out
}

// Equal reports exact entry-wise equality.
func (m Matrix3x3) Equal(n Matrix3x3) bool { return m.data == n.data }

// ApproxEqual reports entry-wise equality within the resolved epsilon.
func (m Matrix3x3) ApproxEqual(n Matrix3x3, opts ...scalar.Option) bool {
	return scalar.CloseAll(m.data[:], n.data[:], opts...)
}

// String formats m one parenthesized row per line.
func (m Matrix3x3) String() string {
	d := m.data
	return fmt.Sprintf("(%v, %v, %v)\n(%v, %v, %v)\n(%v, %v, %v)",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8])
}
