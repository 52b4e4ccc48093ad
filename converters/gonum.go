// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Paradox644/mp2-lab2-matrix/matrix"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

const (
	opVectorToGonum   = "VectorToGonum"
	opVectorFromGonum = "VectorFromGonum"
	opMatrixToGonum   = "MatrixToGonum"
	opMatrixFromGonum = "MatrixFromGonum"
)

// VectorToGonum copies v into a new *mat.VecDense of the same length.
// Errors:
//   - ErrNilInput (v is nil or empty after a move).
//
// Complexity: O(n).
func VectorToGonum(v *vector.Vector[float64]) (*mat.VecDense, error) {
	if v.Len() == 0 {
		return nil, convErrorf(opVectorToGonum, ErrNilInput)
	}

	return mat.NewVecDense(v.Len(), v.Slice()), nil // Slice is already a copy
}

// VectorFromGonum copies any mat.Vector into a new vector.Vector[float64].
// Errors:
//   - ErrNilInput, vector.ErrInvalidSize (zero or oversized length).
//
// Complexity: O(n).
func VectorFromGonum(src mat.Vector) (*vector.Vector[float64], error) {
	if src == nil {
		return nil, convErrorf(opVectorFromGonum, ErrNilInput)
	}
	n := src.Len()
	out, err := vector.New[float64](n)
	if err != nil {
		return nil, convErrorf(opVectorFromGonum, err)
	}
	for i := 0; i < n; i++ {
		_ = out.Set(i, src.AtVec(i)) // i < n == out.Len()
	}

	return out, nil
}

// MatrixToGonum copies m into a new row-major *mat.Dense.
// Errors:
//   - ErrNilInput (m is nil or empty after a move).
//   - matrix.ErrDimensionMismatch (a row was resized through Row).
//
// Complexity: O(n²).
func MatrixToGonum(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	n := m.Size()
	if n == 0 {
		return nil, convErrorf(opMatrixToGonum, ErrNilInput)
	}
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, convErrorf(opMatrixToGonum, err)
		}
		if row.Len() != n {
			return nil, convErrorf(opMatrixToGonum,
				fmt.Errorf("row %d has %d elements: %w", i, row.Len(), matrix.ErrDimensionMismatch))
		}
		data = append(data, row.Slice()...)
	}

	return mat.NewDense(n, n, data), nil
}

// MatrixFromGonum copies a square mat.Matrix into a new matrix.Matrix[float64].
// opts configure the returned matrix as in matrix.New.
//
// Errors:
//   - ErrNilInput, ErrNonSquare, matrix.ErrInvalidSize (above matrix.MaxSize).
//
// Complexity: O(n²).
func MatrixFromGonum(src mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, convErrorf(opMatrixFromGonum, ErrNilInput)
	}
	r, c := src.Dims()
	if r != c {
		return nil, convErrorf(opMatrixFromGonum, fmt.Errorf("%d×%d: %w", r, c, ErrNonSquare))
	}
	out, err := matrix.New[float64](r, opts...)
	if err != nil {
		return nil, convErrorf(opMatrixFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = out.Set(i, j, src.At(i, j)) // bounds hold by construction
		}
	}

	return out, nil
}
