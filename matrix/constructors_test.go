// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numla/matrix"
)

func allEqual(t *testing.T, m *matrix.Dense, want float64) {
	t.Helper()
	for k, x := range m.RawData() {
		require.Equalf(t, want, x, "cell %d", k)
	}
}

func TestFillConstructors(t *testing.T) {
	t.Parallel()

	for _, sh := range [][2]int{{1, 1}, {2, 3}, {4, 4}, {5, 1}} {
		r, c := sh[0], sh[1]

		z, err := matrix.NewZeros(r, c)
		require.NoError(t, err)
		require.Len(t, z.RawData(), r*c)
		allEqual(t, z, 0)

		o, err := matrix.NewOnes(r, c)
		require.NoError(t, err)
		allEqual(t, o, 1)

		f, err := matrix.NewFull(r, c, -2.5)
		require.NoError(t, err)
		allEqual(t, f, -2.5)
	}

	for _, ctor := range []func() (*matrix.Dense, error){
		func() (*matrix.Dense, error) { return matrix.NewZeros(0, 2) },
		func() (*matrix.Dense, error) { return matrix.NewOnes(2, -1) },
		func() (*matrix.Dense, error) { return matrix.NewFull(0, 0, 1) },
		func() (*matrix.Dense, error) { return matrix.NewIdentity(-3, 3) },
		func() (*matrix.Dense, error) { return matrix.NewUniform(0, 1, nil) },
		func() (*matrix.Dense, error) { return matrix.NewGaussian(1, 0, nil) },
		func() (*matrix.Dense, error) { return matrix.NewPoisson(0, 1, 1, nil) },
	} {
		_, err := ctor()
		require.ErrorIs(t, err, matrix.ErrInvalidShape)
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	for _, sh := range [][2]int{{1, 1}, {3, 3}, {2, 4}, {4, 2}} {
		m, err := matrix.NewIdentity(sh[0], sh[1])
		require.NoError(t, err)
		for i := 0; i < sh[0]; i++ {
			for j := 0; j < sh[1]; j++ {
				x, err := m.At(i, j)
				require.NoError(t, err)
				if i == j {
					require.Equal(t, 1.0, x)
				} else {
					require.Equal(t, 0.0, x)
				}
			}
		}
	}
}

func TestNewDiagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDiagonal(MustVector(t, 3, 4, 5))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i, want := range []float64{3, 4, 5} {
		x, err := m.At(i, i)
		require.NoError(t, err)
		require.Equal(t, want, x)
	}

	// Off-diagonal cells are not written; pre-zero them before relying on them.
	z := MustDense(t, 3, 3)
	for i := 0; i < 3; i++ {
		x, _ := m.At(i, i)
		require.NoError(t, z.Set(i, i, x))
	}
	tr, err := matrix.Trace(z)
	require.NoError(t, err)
	require.Equal(t, 12.0, tr)

	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewUniform_RangeAndDeterminism(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewUniform(20, 20, matrix.NewSource(42))
	require.NoError(t, err)
	b, err := matrix.NewUniform(20, 20, matrix.NewSource(42))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same seed must give identical matrices")

	c, err := matrix.NewUniform(20, 20, matrix.NewSource(43))
	require.NoError(t, err)
	require.False(t, a.Equal(c))

	var neg, pos bool
	for _, x := range a.RawData() {
		require.GreaterOrEqual(t, x, -1.0)
		require.Less(t, x, 1.0)
		neg = neg || x < 0
		pos = pos || x > 0
	}
	require.True(t, neg && pos, "values should cover both halves of [-1, 1)")

	// nil and seed 0 both map to the default stream.
	d, err := matrix.NewUniform(3, 3, nil)
	require.NoError(t, err)
	e, err := matrix.NewUniform(3, 3, matrix.NewSource(0))
	require.NoError(t, err)
	f, err := matrix.NewUniform(3, 3, matrix.NewSource(1))
	require.NoError(t, err)
	require.True(t, d.Equal(e))
	require.True(t, e.Equal(f))
}

func TestNewGaussian_Moments(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewGaussian(100, 100, matrix.NewSource(7))
	require.NoError(t, err)

	var sum, sq float64
	for _, x := range m.RawData() {
		sum += x
		sq += x * x
	}
	n := float64(len(m.RawData()))
	mean := sum / n
	variance := sq/n - mean*mean
	require.InDelta(t, 0, mean, 0.05)
	require.InDelta(t, 1, variance, 0.05)
}

func TestNewPoisson(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewPoisson(4, 4, 0, matrix.NewSource(3))
	require.NoError(t, err)
	allEqual(t, z, 0)

	const lambda = 4.0
	m, err := matrix.NewPoisson(100, 100, lambda, matrix.NewSource(3))
	require.NoError(t, err)
	var sum float64
	for _, x := range m.RawData() {
		require.GreaterOrEqual(t, x, 0.0)
		require.Equal(t, math.Trunc(x), x, "samples must be integers")
		sum += x
	}
	require.InDelta(t, lambda, sum/float64(len(m.RawData())), 0.1)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), 746, 1000} {
		_, err = matrix.NewPoisson(2, 2, bad, nil)
		require.ErrorIs(t, err, matrix.ErrInvalidParameter, "lambda %v", bad)
	}
}

func TestNewPoisson_LargestMean(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewPoisson(20, 20, matrix.MaxPoissonLambda, matrix.NewSource(5))
	require.NoError(t, err)
	var sum float64
	for _, x := range m.RawData() {
		require.Positive(t, x)
		sum += x
	}
	require.InDelta(t, matrix.MaxPoissonLambda, sum/float64(len(m.RawData())), 8)
}

func TestDeriveSource(t *testing.T) {
	t.Parallel()

	a := matrix.DeriveSource(matrix.NewSource(9), 1)
	b := matrix.DeriveSource(matrix.NewSource(9), 1)
	c := matrix.DeriveSource(matrix.NewSource(9), 2)
	x, y, z := a.Int63(), b.Int63(), c.Int63()
	require.Equal(t, x, y)
	require.NotEqual(t, x, z)

	require.NotEqual(t, matrix.MixSeed_TestOnly(1, 0), matrix.MixSeed_TestOnly(1, 1))
	require.NotNil(t, matrix.DeriveSource(nil, 0))
	require.NotNil(t, matrix.NewTimeSeededSource())
}
