// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (MustDense, MustVector).
//   • Provide a recording Kernel that captures the marshaled arguments of every
//     delegated call and can force a status code per routine.
//   • Provide a Diagnostics recorder.

package matrix_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numla/backend"
	"github.com/katalvlaran/numla/matrix"
)

// tol is the absolute tolerance for results that pass through the kernel.
const tol = 1e-12

// MustDense builds an r×c matrix from row-major vals (zeros when vals is empty).
func MustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err)
	if len(vals) > 0 {
		require.Len(t, vals, r*c, "MustDense: wrong value count")
		copy(m.RawData(), vals)
	}
	return m
}

// MustVector builds a vector from vals.
func MustVector(t testing.TB, vals ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals)
	require.NoError(t, err)
	return v
}

// requireClose asserts equal shapes and |got-want| <= eps cell by cell.
func requireClose(t testing.TB, want, got *matrix.Dense, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := want.RawData(), got.RawData()
	for k := range w {
		require.LessOrEqualf(t, math.Abs(w[k]-g[k]), eps,
			"cell %d: want %v got %v\nwant:\n%vgot:\n%v", k, w[k], g[k], want, got)
	}
}

// kernelCall is one recorded delegated call.
type kernelCall struct {
	Routine       string
	Layout        backend.Layout
	M, N, K       int
	LDA, LDB, LDC int
	PivotLen      int
	Uplo          backend.Uplo
	NRHS          int
	LDU, LDV      int // u/vt (dgesvd) or vl/vr (dgeev)
	Jobs          [2]backend.Job
	Norm          backend.Norm
}

// recordingKernel forwards to Gonum and records every call.
// A routine listed in force returns the forced status without running.
type recordingKernel struct {
	inner backend.Kernel
	force map[string]int
	calls []kernelCall
}

var _ backend.Kernel = (*recordingKernel)(nil)

func newRecordingKernel(force map[string]int) *recordingKernel {
	return &recordingKernel{inner: backend.Gonum(), force: force}
}

func (k *recordingKernel) forced(routine string) (int, bool) {
	info, ok := k.force[routine]
	return info, ok
}

func (k *recordingKernel) Name() string { return "recording" }

func (k *recordingKernel) Dgemm(layout backend.Layout, tA, tB backend.Transpose, m, n, kk int, alpha float64,
	a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgemm", Layout: layout, M: m, N: n, K: kk, LDA: lda, LDB: ldb, LDC: ldc})
	if info, ok := k.forced("dgemm"); ok {
		return info
	}
	return k.inner.Dgemm(layout, tA, tB, m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k *recordingKernel) Dgetrf(layout backend.Layout, m, n int, a []float64, lda int, ipiv []int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgetrf", Layout: layout, M: m, N: n, LDA: lda, PivotLen: len(ipiv)})
	if info, ok := k.forced("dgetrf"); ok {
		return info
	}
	return k.inner.Dgetrf(layout, m, n, a, lda, ipiv)
}

func (k *recordingKernel) Dgetri(layout backend.Layout, n int, a []float64, lda int, ipiv []int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgetri", Layout: layout, N: n, LDA: lda, PivotLen: len(ipiv)})
	if info, ok := k.forced("dgetri"); ok {
		return info
	}
	return k.inner.Dgetri(layout, n, a, lda, ipiv)
}

func (k *recordingKernel) Dpotrf(layout backend.Layout, uplo backend.Uplo, n int, a []float64, lda int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dpotrf", Layout: layout, N: n, LDA: lda, Uplo: uplo})
	if info, ok := k.forced("dpotrf"); ok {
		return info
	}
	return k.inner.Dpotrf(layout, uplo, n, a, lda)
}

func (k *recordingKernel) Dgesvd(layout backend.Layout, jobu, jobvt backend.Job, m, n int, a []float64, lda int,
	sv, u []float64, ldu int, vt []float64, ldvt int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgesvd", Layout: layout, M: m, N: n, LDA: lda,
		LDU: ldu, LDV: ldvt, Jobs: [2]backend.Job{jobu, jobvt}})
	if info, ok := k.forced("dgesvd"); ok {
		return info
	}
	return k.inner.Dgesvd(layout, jobu, jobvt, m, n, a, lda, sv, u, ldu, vt, ldvt)
}

func (k *recordingKernel) Dgeev(layout backend.Layout, jobvl, jobvr backend.Job, n int, a []float64, lda int,
	wr, wi, vl []float64, ldvl int, vr []float64, ldvr int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgeev", Layout: layout, N: n, LDA: lda,
		LDU: ldvl, LDV: ldvr, Jobs: [2]backend.Job{jobvl, jobvr}})
	if info, ok := k.forced("dgeev"); ok {
		return info
	}
	return k.inner.Dgeev(layout, jobvl, jobvr, n, a, lda, wr, wi, vl, ldvl, vr, ldvr)
}

func (k *recordingKernel) Dsyev(layout backend.Layout, jobz backend.Job, uplo backend.Uplo, n int, a []float64, lda int, w []float64) int {
	k.calls = append(k.calls, kernelCall{Routine: "dsyev", Layout: layout, N: n, LDA: lda,
		Uplo: uplo, Jobs: [2]backend.Job{jobz}})
	if info, ok := k.forced("dsyev"); ok {
		return info
	}
	return k.inner.Dsyev(layout, jobz, uplo, n, a, lda, w)
}

func (k *recordingKernel) Dlange(layout backend.Layout, norm backend.Norm, m, n int, a []float64, lda int) (float64, int) {
	k.calls = append(k.calls, kernelCall{Routine: "dlange", Layout: layout, M: m, N: n, LDA: lda, Norm: norm})
	if info, ok := k.forced("dlange"); ok {
		return 0, info
	}
	return k.inner.Dlange(layout, norm, m, n, a, lda)
}

func (k *recordingKernel) Dgels(layout backend.Layout, trans backend.Transpose, m, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	k.calls = append(k.calls, kernelCall{Routine: "dgels", Layout: layout, M: m, N: n, NRHS: nrhs, LDA: lda, LDB: ldb})
	if info, ok := k.forced("dgels"); ok {
		return info
	}
	return k.inner.Dgels(layout, trans, m, n, nrhs, a, lda, b, ldb)
}

func (k *recordingKernel) Idamax(n int, x []float64, incx int) int {
	k.calls = append(k.calls, kernelCall{Routine: "idamax", N: n})
	if info, ok := k.forced("idamax"); ok {
		return info
	}
	return k.inner.Idamax(n, x, incx)
}

func (k *recordingKernel) Idamin(n int, x []float64, incx int) int {
	k.calls = append(k.calls, kernelCall{Routine: "idamin", N: n})
	if info, ok := k.forced("idamin"); ok {
		return info
	}
	return k.inner.Idamin(n, x, incx)
}

// diagRecorder captures diagnostics messages.
type diagRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *diagRecorder) Warn(msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *diagRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

// installRecorder routes the package-wide sink to a fresh recorder for the
// duration of a (non-parallel) test.
func installRecorder(t *testing.T) *diagRecorder {
	t.Helper()
	rec := &diagRecorder{}
	prev := matrix.SetDiagnostics(rec)
	t.Cleanup(func() { matrix.SetDiagnostics(prev) })
	return rec
}
