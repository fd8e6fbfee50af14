// SPDX-License-Identifier: MIT

package scalar

import "github.com/chewxy/math32"

// Number is the set of numeric types accepted by linmath constructors.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float32 normalizes v to single precision.
func Float32[T Number](v T) float32 { return float32(v) }

// Scaler is implemented by every kernel value type: vectors, Complex,
// Quaternion and all matrix sizes.
type Scaler[V any] interface {
	Scale(s float32) V
}

// Times returns s·v, the scalar-on-left spelling of v.Scale(s).
// Both spellings produce identical results.
func Times[T Number, V Scaler[V]](s T, v V) V { return v.Scale(Float32(s)) }

// IsFinite reports whether v is neither NaN nor ±Inf.
// Division by zero anywhere in linmath is not signaled; use IsFinite on the
// result when the caller needs to detect it.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// Sqrt is the single-precision square root used for every norm.
func Sqrt(v float32) float32 { return math32.Sqrt(v) }
