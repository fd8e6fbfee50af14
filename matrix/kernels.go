// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* kernels shared by the three fixed-size types,
//     so the minor extraction and bounds checks are written once.
//
// Design:
//   - Kernels operate on row-major flat slices backed by the callers' arrays.
//   - All loops run in a fixed i→j order.

package matrix

// cofactorSign returns (-1)^(row+col).
func cofactorSign(row, col int) float32 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// checkIndex panics unless 0 ≤ row,col < n.
// Flat indexing alone would silently accept pairs such as (1, -1).
func checkIndex(n, row, col int) {
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(panicIndexOutOfRange)
	}
}

// checkVectorIndex panics unless 0 ≤ i < n.
func checkVectorIndex(n, i int) {
	if i < 0 || i >= n {
		panic(panicVectorIndex)
	}
}

// minorInto copies the n×n row-major src into the (n-1)×(n-1) dst, skipping
// row and col.
//
// Complexity: O(n²) time, no allocation.
func minorInto(dst, src []float32, n, row, col int) {
	idx := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			dst[idx] = src[i*n+j]
			idx++
		}
	}
}

// transposeInto writes the transpose of the n×n row-major src into dst.
func transposeInto(dst, src []float32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
}
