// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numla/backend"
	"github.com/katalvlaran/numla/matrix"
)

func TestMultiplyDense(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)
	got, err := matrix.MultiplyDense(a, b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, 2, 2, 58, 64, 139, 154), got, tol)

	id, err := matrix.NewIdentity(3, 3)
	require.NoError(t, err)
	same, err := matrix.MultiplyDense(a, id)
	require.NoError(t, err)
	requireClose(t, a, same, 0)
}

func TestMultiplyDense_MarshalsRowMajor(t *testing.T) {
	t.Parallel()

	k := newRecordingKernel(nil)
	_, err := matrix.MultiplyDense(MustDense(t, 2, 3), MustDense(t, 3, 4), matrix.WithKernel(k))
	require.NoError(t, err)
	require.Equal(t, []kernelCall{{
		Routine: "dgemm", Layout: backend.RowMajor,
		M: 2, N: 4, K: 3, LDA: 3, LDB: 4, LDC: 4,
	}}, k.calls)
}

// TestMultiplyDense_KernelRejectsShape: no shape gate in the adapter, the
// kernel's argument check surfaces as ErrBackendFailure.
func TestMultiplyDense_KernelRejectsShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.MultiplyDense(MustDense(t, 2, 3), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
	info, ok := backend.InfoOf(err)
	require.True(t, ok)
	require.Less(t, info, 0)

	_, err = matrix.MultiplyDense(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvert(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3, 3)
	require.NoError(t, err)
	inv, err := matrix.Invert(id)
	require.NoError(t, err)
	requireClose(t, id, inv, tol)

	a := MustDense(t, 2, 2, 4, 7, 2, 6)
	inv, err = matrix.Invert(a)
	require.NoError(t, err)
	requireClose(t, MustDense(t, 2, 2, 0.6, -0.7, -0.2, 0.4), inv, 1e-12)
	require.Equal(t, []float64{4, 7, 2, 6}, a.RawData(), "input must not change")

	r, err := matrix.NewUniform(5, 5, matrix.NewSource(17))
	require.NoError(t, err)
	rinv, err := matrix.Invert(r)
	require.NoError(t, err)
	prod, err := matrix.MultiplyDense(r, rinv)
	require.NoError(t, err)
	id5, err := matrix.NewIdentity(5, 5)
	require.NoError(t, err)
	requireClose(t, id5, prod, 1e-9)
}

func TestInvert_SingularIsBackendFailure(t *testing.T) {
	t.Parallel()

	_, err := matrix.Invert(MustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)

	var se *backend.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "dgetrf", se.Routine)
	require.Equal(t, 2, se.Info)
	require.False(t, se.IllegalArgument())

	_, err = matrix.Invert(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.Invert(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvert_MarshalsAndStopsOnFailure(t *testing.T) {
	t.Parallel()

	k := newRecordingKernel(nil)
	_, err := matrix.Invert(MustDense(t, 3, 3, 2, 0, 0, 0, 2, 0, 0, 0, 2), matrix.WithKernel(k))
	require.NoError(t, err)
	require.Len(t, k.calls, 2)
	for _, c := range k.calls {
		require.Equal(t, backend.RowMajor, c.Layout)
		require.Equal(t, 3, c.LDA)
		require.Equal(t, 3, c.PivotLen)
	}
	require.Equal(t, "dgetrf", k.calls[0].Routine)
	require.Equal(t, "dgetri", k.calls[1].Routine)

	failing := newRecordingKernel(map[string]int{"dgetrf": 1})
	_, err = matrix.Invert(MustDense(t, 1, 1, 1), matrix.WithKernel(failing))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
	require.Len(t, failing.calls, 1, "dgetri must not run after a failed dgetrf")

	failing = newRecordingKernel(map[string]int{"dgetri": -3})
	_, err = matrix.Invert(MustDense(t, 1, 1, 1), matrix.WithKernel(failing))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
	info, _ := backend.InfoOf(err)
	require.Equal(t, -3, info)
}

func TestRowEchelon(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	lu, err := matrix.RowEchelon(a)
	require.NoError(t, err)
	// Partial pivoting swaps the rows: U = [3 4; 0 2/3], L multiplier 1/3.
	requireClose(t, MustDense(t, 2, 2, 3, 4, 1.0/3, 2.0/3), lu, tol)
	require.Equal(t, []float64{1, 2, 3, 4}, a.RawData())

	k := newRecordingKernel(nil)
	_, err = matrix.RowEchelon(MustDense(t, 2, 4, 1, 2, 3, 4, 5, 6, 7, 9), matrix.WithKernel(k))
	require.NoError(t, err)
	require.Equal(t, []kernelCall{{
		Routine: "dgetrf", Layout: backend.RowMajor, M: 2, N: 4, LDA: 4, PivotLen: 4,
	}}, k.calls)

	_, err = matrix.RowEchelon(MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
}

func TestCholesky(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3,
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98)
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)
	requireClose(t, MustDense(t, 3, 3,
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3), l, 1e-12)

	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	back, err := matrix.MultiplyDense(l, lt)
	require.NoError(t, err)
	requireClose(t, a, back, 1e-9)

	_, err = matrix.Cholesky(MustDense(t, 2, 2, 1, 2, 3, 4))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
	_, err = matrix.Cholesky(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.Cholesky(MustDense(t, 2, 2, 1, 2, 2, 1))
	require.ErrorIs(t, err, matrix.ErrBackendFailure, "indefinite input")

	k := newRecordingKernel(nil)
	_, err = matrix.Cholesky(a, matrix.WithKernel(k))
	require.NoError(t, err)
	require.Equal(t, []kernelCall{{
		Routine: "dpotrf", Layout: backend.RowMajor, N: 3, LDA: 3, Uplo: backend.Lower,
	}}, k.calls)
}

func TestArgMaxArgMin(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3,
		1, -5, 5,
		0.5, 0.25, -0.25,
		7, 7, 7)
	mx, err := matrix.ArgMax(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0}, mx.Data(), "largest |x|, first on ties")

	mn, err := matrix.ArgMin(m)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0}, mn.Data(), "smallest |x|, first on ties")

	k := newRecordingKernel(map[string]int{"idamax": -1})
	_, err = matrix.ArgMax(m, matrix.WithKernel(k))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
	require.Len(t, k.calls, 1)

	_, err = matrix.ArgMin(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"1x1", MustDense(t, 1, 1, -3), -3},
		{"2x2 pivoted", MustDense(t, 2, 2, 1, 2, 3, 4), -2},
		{"3x3", MustDense(t, 3, 3, 6, 1, 1, 4, -2, 5, 2, 8, 7), -306},
		{"singular", MustDense(t, 2, 2, 1, 2, 2, 4), 0},
		{"identity", MustDense(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1), 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	k := newRecordingKernel(map[string]int{"dgetrf": -4})
	_, err = matrix.Determinant(MustDense(t, 2, 2), matrix.WithKernel(k))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
}

func TestBackendFailure_UsesCallDiagnostics(t *testing.T) {
	t.Parallel()

	rec := &diagRecorder{}
	_, err := matrix.Invert(MustDense(t, 2, 2), matrix.WithDiagnostics(rec))
	require.ErrorIs(t, err, matrix.ErrBackendFailure)
	require.Equal(t, []string{matrix.MsgBackendFailure_TestOnly}, rec.messages())

	rec = &diagRecorder{}
	_, err = matrix.Cholesky(MustDense(t, 1, 2), matrix.WithDiagnostics(rec))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	require.Equal(t, []string{matrix.MsgNotSquare_TestOnly}, rec.messages())
}
