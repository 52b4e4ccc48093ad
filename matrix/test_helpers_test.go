// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests.

package matrix_test

import (
	"testing"

	"github.com/Paradox644/mp2-lab2-matrix/matrix"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a matrix from row literals or fails the test.
func MustFromRows[T vector.Element](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustVec builds a vector from literal values or fails the test.
func MustVec[T vector.Element](t testing.TB, xs ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(xs)
	require.NoError(t, err)

	return v
}

// ToRows reads every element of m back into nested slices.
func ToRows[T vector.Element](t testing.TB, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Size())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row.Slice()
	}

	return out
}

// SeqInts fills an n×n matrix with a deterministic non-trivial pattern.
func SeqInts(t testing.TB, n int, opts ...matrix.Option) *matrix.Matrix[int64] {
	t.Helper()
	m, err := matrix.New[int64](n, opts...)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, int64((i*7+j*3)%11-5)))
		}
	}

	return m
}
