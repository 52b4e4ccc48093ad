// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic plus the dot product.
//   - Every operation allocates exactly one result and leaves operands intact;
//     on error nothing is allocated and nothing is modified.
//
// Determinism:
//   - Fixed 0..n-1 loop order; the dot product accumulates left to right
//     starting from the zero value of T.

package vector

// validatePair checks that both operands are present and equally long.
func validatePair[T Element](v, w *Vector[T]) error {
	if v == nil || w == nil {
		return ErrNilVector
	}
	if len(v.data) != len(w.data) {
		return ErrLengthMismatch
	}

	return nil
}

// mapScalar builds out[i] = f(v[i], x).
func (v *Vector[T]) mapScalar(x T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{data: make([]T, v.Len())}
	for i := range out.data {
		out.data[i] = f(v.data[i], x)
	}

	return out
}

// zip builds out[i] = f(v[i], w[i]) after validating the pair.
func (v *Vector[T]) zip(w *Vector[T], tag string, f func(a, b T) T) (*Vector[T], error) {
	if err := validatePair(v, w); err != nil {
		return nil, vectorErrorf(tag, err)
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i := range out.data {
		out.data[i] = f(v.data[i], w.data[i])
	}

	return out, nil
}

func add[T Element](a, b T) T { return a + b }
func sub[T Element](a, b T) T { return a - b }
func mul[T Element](a, b T) T { return a * b }

// AddScalar returns a new vector with out[i] = v[i] + x.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(x T) *Vector[T] { return v.mapScalar(x, add[T]) }

// SubScalar returns a new vector with out[i] = v[i] - x.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(x T) *Vector[T] { return v.mapScalar(x, sub[T]) }

// MulScalar returns a new vector with out[i] = v[i] * x.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) *Vector[T] { return v.mapScalar(x, mul[T]) }

// Add returns the element-wise sum v + w.
// Errors:
//   - ErrNilVector (w is nil), ErrLengthMismatch (v.Len() != w.Len()).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) { return v.zip(w, opAdd, add[T]) }

// Sub returns the element-wise difference v - w.
// Errors:
//   - ErrNilVector (w is nil), ErrLengthMismatch (v.Len() != w.Len()).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) { return v.zip(w, opSub, sub[T]) }

// Hadamard returns the element-wise product out[i] = v[i] * w[i].
// float64 vectors go through the vecmath block kernel.
//
// Errors:
//   - ErrNilVector, ErrLengthMismatch.
func (v *Vector[T]) Hadamard(w *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, w); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	if mulBlockFloat64(out.data, v.data, w.data) {
		return out, nil
	}
	for i := range out.data {
		out.data[i] = v.data[i] * w.data[i]
	}

	return out, nil
}

// Dot returns Σ v[i]*w[i], accumulated from the zero value of T in index order.
// Implementation:
//   - Stage 1: validate operands (non-nil, equal length).
//   - Stage 2: float64 fast path multiplies through vecmath.MulBlock and sums
//     the products in index order; every other T uses a single fused loop.
//
// Behavior highlights:
//   - Both paths sum in the same order; the fast path never fuses
//     multiply-add, so its result does not depend on the target architecture.
//
// Errors:
//   - ErrNilVector, ErrLengthMismatch.
//
// Complexity:
//   - Time O(n); the float64 path uses O(n) scratch.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var acc T // additive identity
	if err := validatePair(v, w); err != nil {
		return acc, vectorErrorf(opDot, err)
	}
	if s, ok := dotFloat64(v.data, w.data); ok {
		return s, nil
	}
	for i := range v.data {
		acc += v.data[i] * w.data[i]
	}

	return acc, nil
}
