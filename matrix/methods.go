// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// Equal reports whether m and b have the same size and equal rows.
// Matrices of different size are unequal; this never fails.
// Complexity: O(n²).
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if m == b {
		return true
	}
	if m == nil || b == nil || len(m.rows) != len(b.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(b.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(b *Matrix[T]) bool { return !m.Equal(b) }

// checkSquare verifies that every row still has Size() elements.
// Rows can only drift if a caller reassigned one through Row.
func (m *Matrix[T]) checkSquare() error {
	n := len(m.rows)
	for i, r := range m.rows {
		if r.Len() != n {
			return fmt.Errorf("row %d has %d elements, want %d: %w", i, r.Len(), n, ErrDimensionMismatch)
		}
	}

	return nil
}

// validateBinary checks two operands for Add/Sub/Mul.
// Priority: nil -> size mismatch -> malformed rows.
func validateBinary[T vector.Element](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if len(a.rows) != len(b.rows) {
		return fmt.Errorf("%d vs %d: %w", len(a.rows), len(b.rows), ErrDimensionMismatch)
	}
	if err := a.checkSquare(); err != nil {
		return err
	}

	return b.checkSquare()
}
