// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linmath/hypercomplex"
)

// FromComplex returns the rotation-scaling matrix of c:
//
//	[ re  -im ]
//	[ im   re ]
//
// Multiplying it by (x, y) equals the complex product c·(x + yi).
func FromComplex(c hypercomplex.Complex) Matrix2x2 {
	re, im := c.Real(), c.Imaginary()
	return Matrix2x2{data: [4]float32{
		re, -im,
		im, re,
	}}
}

// FromQuaternion returns the 4×4 matrix of left multiplication by q:
//
//	[ r  -i  -j  -k ]
//	[ i   r  -k   j ]
//	[ j   k   r  -i ]
//	[ k  -j   i   r ]
//
// so that FromQuaternion(q).MulVec(p as (r,i,j,k)) equals the Hamilton
// product q·p. For a unit quaternion the matrix is orthogonal.
func FromQuaternion(q hypercomplex.Quaternion) Matrix4x4 {
	r, i, j, k := q.R(), q.I(), q.J(), q.K()
	return Matrix4x4{data: [16]float32{
		r, -i, -j, -k,
		i, r, -k, j,
		j, k, r, -i,
		k, -j, i, r,
	}}
}
