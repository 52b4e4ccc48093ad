// SPDX-License-Identifier: MIT

// Package matrix - arithmetic kernels.
//
// Purpose:
//   - Matrix × scalar, matrix × vector, matrix ± matrix, matrix × matrix.
//   - Every kernel validates all operands first and allocates one result;
//     operands are never mutated and nothing is returned on failure.
//
// Determinism:
//   - Each result element is accumulated in a fixed k = 0..n-1 order from the
//     zero value of T, so row scheduling (sequential or parallel) cannot
//     change any result.

package matrix

import (
	"fmt"

	"github.com/Paradox644/mp2-lab2-matrix/internal/parallel"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// MulScalar returns a new matrix with every element multiplied by x.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	out := &Matrix[T]{rows: make([]*vector.Vector[T], m.Size())}
	if m == nil {
		return out
	}
	out.opts = m.opts
	for i, r := range m.rows {
		out.rows[i] = r.MulScalar(x)
	}

	return out
}

// addSub computes a ± b row by row through vector.Add / vector.Sub.
func addSub[T vector.Element](a, b *Matrix[T], tag string,
	op func(x, y *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Matrix[T]{rows: make([]*vector.Vector[T], len(a.rows)), opts: a.opts}
	for i := range a.rows {
		r, err := op(a.rows[i], b.rows[i])
		if err != nil {
			return nil, matrixErrorf(tag, fmt.Errorf("row %d: %w: %w", i, ErrDimensionMismatch, err))
		}
		out.rows[i] = r
	}

	return out, nil
}

// Add computes the element-wise sum m + b.
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (different sizes).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, b, opAdd, (*vector.Vector[T]).Add)
}

// Sub computes the element-wise difference m - b.
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (different sizes).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, b, opSub, (*vector.Vector[T]).Sub)
}

// MulVec computes y = m · v, where y[i] is the dot product of row i with v.
// The result is a vector of length Size().
// Implementation:
//   - Stage 1: validate m (non-nil, square rows) and v (non-nil, Len()==Size()).
//   - Stage 2: one vector.Dot per row, rows distributed per Options.
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if v == nil {
		return nil, matrixErrorf(opMulVec, vector.ErrNilVector)
	}
	n := len(m.rows)
	if v.Len() != n {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("vector length %d, matrix size %d: %w", v.Len(), n, ErrDimensionMismatch))
	}
	if err := m.checkSquare(); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]T, n)
	errs := make([]error, n) // one slot per row; no shared writes
	parallel.For(n, func(i int) {
		y[i], errs[i] = m.rows[i].Dot(v)
	}, m.opts.parallelConfig())
	for _, err := range errs {
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
	}

	out, err := vector.FromSlice(y)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return out, nil
}

// Mul performs the standard product C = m × b, C[i][j] = Σ_k m[i][k]*b[k][j].
// Implementation:
//   - Stage 1: validate both operands and equal sizes.
//   - Stage 2: snapshot b's rows once; for every result row i run i→k→j so
//     b is read row-major, accumulating into a zero-initialized row buffer.
//   - Stage 3: rows are independent and distributed per Options.
//
// Behavior highlights:
//   - Zero entries of m are not skipped: 0*Inf must still produce NaN.
//   - Each C[i][j] sums its terms in k order no matter how rows are scheduled.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result plus an O(n²) snapshot of b.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := len(m.rows)

	bRows := make([][]T, n)
	for k, r := range b.rows {
		bRows[k] = r.Slice()
	}

	out := &Matrix[T]{rows: make([]*vector.Vector[T], n), opts: m.opts}
	errs := make([]error, n)
	parallel.For(n, func(i int) {
		ai := m.rows[i].Slice()
		acc := make([]T, n) // additive identity
		var k, j int
		for k = 0; k < n; k++ {
			aik, bk := ai[k], bRows[k]
			for j = 0; j < n; j++ {
				acc[j] += aik * bk[j]
			}
		}
		out.rows[i], errs[i] = vector.FromSlice(acc)
	}, m.opts.parallelConfig())
	for _, err := range errs {
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	return out, nil
}
