// SPDX-License-Identifier: MIT

// Package vector - bounds-checked accessors and equality.
//
// Every accessor enforces the strict contract 0 <= i < Len(); index == Len()
// is rejected like any other out-of-range index.

package vector

// checkIndex reports whether i addresses a live element.
func (v *Vector[T]) checkIndex(i int) bool {
	return i >= 0 && i < v.Len()
}

// At returns the element at index i.
// Errors:
//   - ErrIndexOutOfRange unless 0 <= i < Len().
//
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if !v.checkIndex(i) {
		var zero T

		return zero, indexErrorf(opAt, i, v.Len())
	}

	return v.data[i], nil
}

// Set stores x at index i.
// Errors:
//   - ErrIndexOutOfRange unless 0 <= i < Len().
//
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if !v.checkIndex(i) {
		return indexErrorf(opSet, i, v.Len())
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to the element at index i for in-place updates.
// The pointer is valid until the next Assign, MoveFrom or Swap on v;
// callers must not retain it beyond that.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) Ref(i int) (*T, error) {
	if !v.checkIndex(i) {
		return nil, indexErrorf(opRef, i, v.Len())
	}

	return &v.data[i], nil
}

// Equal reports whether v and w have the same length and pairwise equal
// elements. Vectors of different length are unequal; this never fails.
// Two nil vectors are equal.
// Complexity: O(n).
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == w {
		return true
	}
	if v == nil || w == nil {
		return false
	}
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(w *Vector[T]) bool { return !v.Equal(w) }
