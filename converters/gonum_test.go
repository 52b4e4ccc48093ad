// SPDX-License-Identifier: MIT
package converters_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Paradox644/mp2-lab2-matrix/converters"
	"github.com/Paradox644/mp2-lab2-matrix/matrix"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// randMatrix fills an n×n matrix from a fixed seed.
func randMatrix(t *testing.T, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New[float64](n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// TestVectorRoundTrip copies a vector to gonum and back.
func TestVectorRoundTrip(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, -2.5, 3e10})
	require.NoError(t, err)

	g, err := converters.VectorToGonum(v)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	require.Equal(t, -2.5, g.AtVec(1))

	g.SetVec(0, 42) // gonum side is a copy
	x, _ := v.At(0)
	require.Equal(t, 1.0, x)

	back, err := converters.VectorFromGonum(mat.NewVecDense(3, []float64{1, -2.5, 3e10}))
	require.NoError(t, err)
	require.True(t, back.Equal(v))
}

// TestMatrixRoundTrip copies a matrix to gonum and back.
func TestMatrixRoundTrip(t *testing.T) {
	m := randMatrix(t, 5, 1)

	d, err := converters.MatrixToGonum(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)

	back, err := converters.MatrixFromGonum(d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

// TestMulAgreesWithGonum uses gonum's Dense.Mul and MulVec as an oracle.
func TestMulAgreesWithGonum(t *testing.T) {
	const n = 17
	a := randMatrix(t, n, 2)
	b := randMatrix(t, n, 3)

	got, err := a.Mul(b)
	require.NoError(t, err)

	ga, err := converters.MatrixToGonum(a)
	require.NoError(t, err)
	gb, err := converters.MatrixToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	gGot, err := converters.MatrixToGonum(got)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(gGot, &want, 1e-12))

	x, err := vector.FromSlice(make([]float64, n))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, x.Set(i, float64(i)-8))
	}
	y, err := a.MulVec(x)
	require.NoError(t, err)

	gx, err := converters.VectorToGonum(x)
	require.NoError(t, err)
	var wantY mat.VecDense
	wantY.MulVec(ga, gx)
	gy, err := converters.VectorToGonum(y)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(gy, &wantY, 1e-12))
}

// TestConversionErrors covers nil, empty and non-square inputs.
func TestConversionErrors(t *testing.T) {
	_, err := converters.VectorToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	_, err = converters.MatrixToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	_, err = converters.VectorFromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	_, err = converters.MatrixFromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	_, err = converters.MatrixFromGonum(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, converters.ErrNonSquare)

	big := mat.NewDiagDense(matrix.MaxSize+1, nil) // diagonal storage only
	_, err = converters.MatrixFromGonum(big)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	src := randMatrix(t, 2, 5)
	matrix.Move(src) // src is now empty
	_, err = converters.MatrixToGonum(src)
	require.ErrorIs(t, err, converters.ErrNilInput)
}
