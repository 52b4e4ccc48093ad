// SPDX-License-Identifier: MIT

// Package matrix - construction, copy/move semantics and row access.
//
// Purpose:
//   - Validate size before allocating any row.
//   - Reuse vector.Vector for row storage, copy and move; a Matrix exposes
//     only Size and row/element access from that storage.
//
// Complexity quicksheet:
//   - New/Identity/FromRows/Clone/Assign: O(n²); Move/MoveFrom/Swap: O(1);
//     Row/At/Set: O(1).

package matrix

import (
	"fmt"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// validateSize checks 1 <= n <= MaxSize.
func validateSize(n int) error {
	if n <= 0 || n > MaxSize {
		return ErrInvalidSize
	}

	return nil
}

// New creates a size×size matrix of zero values.
// Implementation:
//   - Stage 1: validate 1 <= size <= MaxSize; else ErrInvalidSize.
//   - Stage 2: allocate size rows, each a zero-filled vector of length size.
//
// Errors:
//   - ErrInvalidSize (size <= 0 or size > MaxSize).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T vector.Element](size int, opts ...Option) (*Matrix[T], error) {
	if err := validateSize(size); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newUnchecked[T](size, gatherOptions(opts...)), nil
}

// NewDefault creates a 1×1 zero matrix.
func NewDefault[T vector.Element](opts ...Option) *Matrix[T] {
	return newUnchecked[T](1, gatherOptions(opts...))
}

// newUnchecked allocates rows for an already validated size.
func newUnchecked[T vector.Element](size int, o Options) *Matrix[T] {
	rows := make([]*vector.Vector[T], size)
	for i := range rows {
		// size <= MaxSize < vector.MaxSize, so New cannot fail here.
		rows[i], _ = vector.New[T](size)
	}

	return &Matrix[T]{rows: rows, opts: o}
}

// Identity creates a size×size matrix with ones on the diagonal.
// Errors:
//   - ErrInvalidSize.
func Identity[T vector.Element](size int, opts ...Option) (*Matrix[T], error) {
	if err := validateSize(size); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	m := newUnchecked[T](size, gatherOptions(opts...))
	for i, row := range m.rows {
		_ = row.Set(i, T(1)) // i < size by construction
	}

	return m, nil
}

// FromRows creates a matrix holding a deep copy of rows.
// Implementation:
//   - Stage 1: validate the row count as a size.
//   - Stage 2: every row must have exactly len(rows) elements.
//   - Stage 3: copy each row into an owned vector.
//
// Errors:
//   - ErrInvalidSize (no rows or too many), ErrDimensionMismatch (ragged or
//     non-square input).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows[T vector.Element](rows [][]T, opts ...Option) (*Matrix[T], error) {
	n := len(rows)
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(r), n, ErrDimensionMismatch))
		}
	}

	out := &Matrix[T]{rows: make([]*vector.Vector[T], n), opts: gatherOptions(opts...)}
	for i, r := range rows {
		v, err := vector.FromSlice(r)
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		out.rows[i] = v
	}

	return out, nil
}

// Size returns the number of rows (and columns). A nil or moved-from matrix
// has size 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Clone returns a deep copy of m, including its options.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return &Matrix[T]{}
	}
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{rows: rows, opts: m.opts}
}

// Assign replaces m with a deep copy of src and returns m.
// Self-assignment is the identity; the copy is built before it is installed.
func (m *Matrix[T]) Assign(src *Matrix[T]) *Matrix[T] {
	if m == src {
		return m
	}
	tmp := src.Clone()
	Swap(m, tmp)

	return m
}

// Move transfers src's rows to a new Matrix in O(1), leaving src empty.
func Move[T vector.Element](src *Matrix[T]) *Matrix[T] {
	dst := &Matrix[T]{}
	Swap(dst, src)

	return dst
}

// MoveFrom transfers src's rows into m and returns m; src is left empty.
// Self-move is a no-op.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) *Matrix[T] {
	if m == src || src == nil {
		return m
	}
	Swap(m, src)
	src.rows = nil

	return m
}

// Swap exchanges the contents of a and b in O(1). Nil operands are ignored.
func Swap[T vector.Element](a, b *Matrix[T]) {
	if a == nil || b == nil {
		return
	}
	a.rows, b.rows = b.rows, a.rows
	a.opts, b.opts = b.opts, a.opts
}

// Row returns the live row i. Element writes through it are visible in m.
// Errors:
//   - ErrIndexOutOfRange unless 0 <= i < Size().
//
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.Size() {
		return nil, fmt.Errorf("Matrix.%s(%d) size=%d: %w", opRow, i, m.Size(), ErrIndexOutOfRange)
	}

	return m.rows[i], nil
}

// At returns the element at row i, column j.
// Errors:
//   - ErrIndexOutOfRange for either index.
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T

		return zero, err
	}
	x, err := row.At(j)
	if err != nil {
		return x, matrixErrorf(opAt, err)
	}

	return x, nil
}

// Set stores x at row i, column j.
// Errors:
//   - ErrIndexOutOfRange for either index.
func (m *Matrix[T]) Set(i, j int, x T) error {
	row, err := m.Row(i)
	if err != nil {
		return err
	}
	if err = row.Set(j, x); err != nil {
		return matrixErrorf(opSet, err)
	}

	return nil
}
