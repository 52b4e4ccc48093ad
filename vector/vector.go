// SPDX-License-Identifier: MIT

// Package vector - construction, copy and move semantics.
//
// Purpose:
//   - Validate the requested length before allocating (no oversized make()).
//   - Keep sole ownership of the buffer: every constructor copies its input.
//   - Express C-style copy/move assignment as explicit methods with safe
//     self-assignment.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/MoveFrom/Swap: O(1).

package vector

// validateSize checks 1 <= n <= MaxSize.
func validateSize(n int) error {
	if n <= 0 || n > MaxSize {
		return ErrInvalidSize
	}

	return nil
}

// New creates a Vector of the given length with zero-valued elements.
// Implementation:
//   - Stage 1: validate 1 <= size <= MaxSize; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidSize (size <= 0 or size > MaxSize).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Element](size int) (*Vector[T], error) {
	// Validate before touching the allocator.
	if err := validateSize(size); err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vector[T]{data: make([]T, size)}, nil
}

// NewDefault creates a Vector of length 1 holding the zero value.
func NewDefault[T Element]() *Vector[T] {
	return &Vector[T]{data: make([]T, 1)}
}

// FromSlice creates a Vector holding a deep copy of src.
// The returned Vector never aliases src; later writes to either side are
// invisible to the other.
//
// Errors:
//   - ErrNullSource  (src == nil).
//   - ErrInvalidSize (len(src) == 0 or len(src) > MaxSize).
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T Element](src []T) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(opFromSlice, ErrNullSource)
	}
	if err := validateSize(len(src)); err != nil {
		return nil, vectorErrorf(opFromSlice, err)
	}
	buf := make([]T, len(src))
	copy(buf, src) // element-wise copy into owned storage

	return &Vector[T]{data: buf}, nil
}

// Clone returns a deep copy of v. A nil or moved-from receiver yields an
// empty Vector.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil || len(v.data) == 0 {
		return &Vector[T]{}
	}
	buf := make([]T, len(v.data))
	copy(buf, v.data)

	return &Vector[T]{data: buf}
}

// Assign replaces the contents of v with a deep copy of src and returns v.
// Implementation:
//   - Stage 1: self-assignment (v == src) returns v unchanged.
//   - Stage 2: build the copy first, then install it, so v is never
//     observed half-written.
//
// Behavior highlights:
//   - The length of v follows src; this is the only way besides MoveFrom to
//     change a Vector's length.
//   - A nil src empties v.
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Assign(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	tmp := src.Clone() // temporary-then-swap
	v.data, tmp.data = tmp.data, nil

	return v
}

// Move transfers ownership of src's buffer to a new Vector in O(1).
// src is left empty (Len()==0) and must not be read as if it still held data;
// it may be reassigned or dropped.
func Move[T Element](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{}
	if src == nil {
		return dst
	}
	Swap(dst, src)

	return dst
}

// MoveFrom transfers ownership of src's buffer into v and returns v.
// The previous buffer of v is released; src is left empty.
// Self-move is a no-op.
// Complexity: O(1).
func (v *Vector[T]) MoveFrom(src *Vector[T]) *Vector[T] {
	if v == src || src == nil {
		return v
	}
	Swap(v, src)
	src.data = nil // drop the old buffer of v

	return v
}

// Swap exchanges the contents of a and b in O(1). Nil operands are ignored.
func Swap[T Element](a, b *Vector[T]) {
	if a == nil || b == nil {
		return
	}
	a.data, b.data = b.data, a.data
}

// Len returns the number of elements. A nil receiver has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.Len())
	if v != nil {
		copy(out, v.data)
	}

	return out
}
