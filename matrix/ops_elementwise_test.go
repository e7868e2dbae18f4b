// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numla/matrix"
)

func TestBinaryElementwise(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2, 1, -2, 3, 4)
	b := MustDense(t, 2, 2, 5, 6, -7, 4)

	tests := []struct {
		name string
		fn   func(a, b *matrix.Dense) (*matrix.Dense, error)
		want []float64
	}{
		{"Add", matrix.Add, []float64{6, 4, -4, 8}},
		{"Sub", matrix.Sub, []float64{-4, -8, 10, 0}},
		{"Hadamard", matrix.Hadamard, []float64{5, -12, -21, 16}},
		{"Multiply", matrix.Multiply, []float64{5, -12, -21, 16}},
		{"Minimum", matrix.Minimum, []float64{1, -2, -7, 4}},
		{"Maximum", matrix.Maximum, []float64{5, 6, 3, 4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.RawData())

			// operands untouched
			require.Equal(t, []float64{1, -2, 3, 4}, a.RawData())
			require.Equal(t, []float64{5, 6, -7, 4}, b.RawData())

			_, err = tc.fn(a, MustDense(t, 2, 3))
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			_, err = tc.fn(MustDense(t, 1, 4), a)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			_, err = tc.fn(nil, a)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

// TestAdd_ZerosPlusOnes is scenario: zeros(2,2) + ones(2,2) == ones(2,2).
func TestAdd_ZerosPlusOnes(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	o, err := matrix.NewOnes(2, 2)
	require.NoError(t, err)
	sum, err := matrix.Add(z, o)
	require.NoError(t, err)
	require.True(t, o.Equal(sum))
	require.NotSame(t, o, sum)
}

func TestAdd_ErrorWrapsOpName(t *testing.T) {
	t.Parallel()
	_, err := matrix.Add(MustDense(t, 1, 2), MustDense(t, 2, 1))
	require.EqualError(t, err, "Add: matrix: shape mismatch")
}

func TestScale(t *testing.T) {
	t.Parallel()

	got, err := matrix.Scale(MustDense(t, 1, 3, 1, -2, 0.5), -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 4, -1}, got.RawData())

	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestClip(t *testing.T) {
	t.Parallel()

	got, err := matrix.Clip(MustDense(t, 1, 5, -3, -1, 0, 1, 3), -1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, 0, 1, 2}, got.RawData())

	same, err := matrix.Clip(MustDense(t, 1, 2, 5, -5), 0, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, same.RawData())

	for _, bounds := range [][2]float64{{1, 0}, {math.NaN(), 1}, {0, math.NaN()}} {
		_, err = matrix.Clip(MustDense(t, 1, 1), bounds[0], bounds[1])
		require.ErrorIs(t, err, matrix.ErrInvalidParameter)
	}
	_, err = matrix.Clip(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
