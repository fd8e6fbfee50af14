// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vector"
)

// Matrix2x2 is a 2×2 float32 matrix stored row-major.
// The zero value is the zero matrix.
type Matrix2x2 struct {
	data [4]float32
}

// Zeros2x2 returns the zero matrix.
func Zeros2x2() Matrix2x2 { return Matrix2x2{} }

// Ones2x2 returns the matrix with every entry 1.
func Ones2x2() Matrix2x2 { return Matrix2x2{data: [4]float32{1, 1, 1, 1}} }

// Diagonal2x2 returns value on the diagonal and 0 elsewhere.
func Diagonal2x2(value float32) Matrix2x2 {
	return Matrix2x2{data: [4]float32{value, 0, 0, value}}
}

// Identity2x2 returns Diagonal2x2(1).
func Identity2x2() Matrix2x2 { return Diagonal2x2(1) }

// New2x2 builds a matrix from 4 row-major values.
func New2x2[T scalar.Number](data [4]T) Matrix2x2 {
	var m Matrix2x2
	for i, v := range data {
		m.data[i] = scalar.Float32(v)
	}

	return m
}

// FromColumns2x2 builds the matrix whose columns are c0 and c1.
func FromColumns2x2(c0, c1 vector.Vector2D) Matrix2x2 {
	return Matrix2x2{data: [4]float32{
		c0.X(), c1.X(),
		c0.Y(), c1.Y(),
	}}
}

// At returns the entry at (row, col). Panics when out of range.
func (m Matrix2x2) At(row, col int) float32 {
	checkIndex(2, row, col)
	return m.data[row*2+col]
}

// Row returns row i as a vector.
func (m Matrix2x2) Row(i int) vector.Vector2D {
	checkVectorIndex(2, i)
	return vector.New2D(m.data[2*i], m.data[2*i+1])
}

// Col returns column j as a vector.
func (m Matrix2x2) Col(j int) vector.Vector2D {
	checkVectorIndex(2, j)
	return vector.New2D(m.data[j], m.data[j+2])
}

// Array returns a row-major copy of the entries.
func (m Matrix2x2) Array() [4]float32 { return m.data }

// Transpose swaps (i,j) and (j,i).
func (m Matrix2x2) Transpose() Matrix2x2 {
	return Matrix2x2{data: [4]float32{
		m.data[0], m.data[2],
		m.data[1], m.data[3],
	}}
}

// Minor deletes row and col. For a 2×2 matrix the result is the single
// remaining entry, returned as a bare scalar rather than a 1×1 matrix.
func (m Matrix2x2) Minor(row, col int) float32 {
	checkIndex(2, row, col)
	return m.data[(1-row)*2+(1-col)]
}

// Cofactor returns the matrix of (-1)^(i+j)·Minor(i,j).
func (m Matrix2x2) Cofactor() Matrix2x2 {
	var c Matrix2x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c.data[i*2+j] = cofactorSign(i, j) * m.Minor(i, j)
		}
	}

	return c
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix2x2) Adjugate() Matrix2x2 { return m.Cofactor().Transpose() }

// Determinant returns m00·m11 - m01·m10.
func (m Matrix2x2) Determinant() float32 {
	return m.data[0]*m.data[3] - m.data[1]*m.data[2]
}

// Inverse returns Adjugate/Determinant.
//
// Errors:
//   - ErrSingular when the determinant is exactly 0 (no epsilon).
func (m Matrix2x2) Inverse() (Matrix2x2, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2x2{}, matrixErrorf(opInverse, ErrSingular)
	}

	return m.Adjugate().DivScalar(det), nil
}

// Add returns m + n.
func (m Matrix2x2) Add(n Matrix2x2) Matrix2x2 {
	var out Matrix2x2
	for i := range m.data {
		out.data[i] = m.data[i] + n.data[i]
	}

	return out
}

// Sub returns m - n.
func (m Matrix2x2) Sub(n Matrix2x2) Matrix2x2 {
	var out Matrix2x2
	for i := range m.data {
		out.data[i] = m.data[i] - n.data[i]
	}

	return out
}

// Mul returns the product m·n, assembled column by column as m·col_j(n).
func (m Matrix2x2) Mul(n Matrix2x2) Matrix2x2 {
	return FromColumns2x2(m.MulVec(n.Col(0)), m.MulVec(n.Col(1)))
}

// MulVec returns m·v with v as a column: col0·v.x + col1·v.y.
func (m Matrix2x2) MulVec(v vector.Vector2D) vector.Vector2D {
	return m.Col(0).Scale(v.X()).Add(m.Col(1).Scale(v.Y()))
}

// Scale returns s·m.
func (m Matrix2x2) Scale(s float32) Matrix2x2 {
	var out Matrix2x2
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// DivScalar returns m/s entry by entry.
func (m Matrix2x2) DivScalar(s float32) Matrix2x2 {
	var out Matrix2x2
	for i, v := range m.data {
		out.data[i] = v / s
	}

	return out
}

// Equal reports exact entry-wise equality.
func (m Matrix2x2) Equal(n Matrix2x2) bool { return m.data == n.data }

// ApproxEqual reports entry-wise equality within the resolved epsilon.
func (m Matrix2x2) ApproxEqual(n Matrix2x2, opts ...scalar.Option) bool {
	return scalar.CloseAll(m.data[:], n.data[:], opts...)
}

// String formats m one parenthesized row per line.
func (m Matrix2x2) String() string {
	return fmt.Sprintf("(%v, %v)\n(%v, %v)", m.data[0], m.data[1], m.data[2], m.data[3])
}
