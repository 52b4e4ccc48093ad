// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cwbudde/algo-vecmath"
)

// mulBlockFloat64 computes dst = a*b element-wise via vecmath when T is
// exactly float64. It reports false (and writes nothing) for any other T.
// All three slices must have equal length.
func mulBlockFloat64[T Element](dst, a, b []T) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))

	return true
}

// dotFloat64 is the float64 dot product: block multiply, then an ordered sum.
func dotFloat64[T Element](a, b []T) (T, bool) {
	var zero T
	af, ok := any(a).([]float64)
	if !ok {
		return zero, false
	}
	prod := make([]float64, len(af))
	vecmath.MulBlock(prod, af, any(b).([]float64))

	var acc float64
	for _, p := range prod {
		acc += p
	}

	return any(acc).(T), true
}
