// SPDX-License-Identifier: MIT

// Package backend - gonum kernel.
//
// Purpose:
//   - Satisfy Kernel with gonum's pure-Go BLAS (blas64) and LAPACK
//     (lapack/gonum) implementations.
//   - Translate between two conventions: gonum panics on illegal arguments and
//     reports numerical failure as ok=false; Kernel callers expect LAPACKE-style
//     signed status codes. Every argument is therefore validated here, in
//     LAPACKE parameter order, BEFORE gonum sees it.
//
// Notes:
//   - gonum stores matrices row-major only, so ColMajor is rejected with -1
//     (the layout argument), matching LAPACKE's behaviour for a bad layout.
//   - gonum requires len(ipiv) == min(m, n) exactly; longer caller buffers are
//     re-sliced.

package backend

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// GonumName is the registry name of the gonum kernel.
const GonumName = "gonum"

// gonumKernel is stateless; one value is shared by Default().
type gonumKernel struct {
	blas   blas.Float64
	lapack lapackgonum.Implementation
}

var _ Kernel = (*gonumKernel)(nil)

// Gonum returns the gonum-backed kernel.
func Gonum() Kernel {
	return &gonumKernel{blas: blas64.Implementation()}
}

func (g *gonumKernel) Name() string { return GonumName }

// Dgemm validates in cblas_dgemm argument order:
// 1 layout, 2 transA, 3 transB, 4 m, 5 n, 6 k, 7 alpha, 8 a, 9 lda, 10 b,
// 11 ldb, 12 beta, 13 c, 14 ldc.
func (g *gonumKernel) Dgemm(layout Layout, tA, tB Transpose, m, n, k int, alpha float64,
	a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) int {
	if layout != RowMajor {
		return -1
	}
	ta, ok := toBlasTrans(tA)
	if !ok {
		return -2
	}
	tb, ok := toBlasTrans(tB)
	if !ok {
		return -3
	}
	switch {
	case m < 0:
		return -4
	case n < 0:
		return -5
	case k < 0:
		return -6
	}

	rowA, colA := m, k
	if ta == blas.Trans {
		rowA, colA = k, m
	}
	rowB, colB := k, n
	if tb == blas.Trans {
		rowB, colB = n, k
	}
	switch {
	case lda < max(1, colA):
		return -9
	case ldb < max(1, colB):
		return -11
	case ldc < max(1, n):
		return -14
	}
	if m == 0 || n == 0 {
		return 0
	}
	switch {
	case len(a) < lda*(rowA-1)+colA:
		return -8
	case len(b) < ldb*(rowB-1)+colB:
		return -10
	case len(c) < ldc*(m-1)+n:
		return -13
	}

	g.blas.Dgemm(ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)

	return 0
}

// Dgetrf validates in LAPACKE_dgetrf order: 1 layout, 2 m, 3 n, 4 a, 5 lda, 6 ipiv.
// An exactly singular U yields +i where U(i-1, i-1) is the first zero pivot;
// the factorization is still completed, as in LAPACK.
func (g *gonumKernel) Dgetrf(layout Layout, m, n int, a []float64, lda int, ipiv []int) int {
	if layout != RowMajor {
		return -1
	}
	switch {
	case m < 0:
		return -2
	case n < 0:
		return -3
	case lda < max(1, n):
		return -5
	}
	mn := min(m, n)
	if mn == 0 {
		return 0
	}
	if len(a) < lda*(m-1)+n {
		return -4
	}
	if len(ipiv) < mn {
		return -6
	}

	if g.lapack.Dgetrf(m, n, a, lda, ipiv[:mn]) {
		return 0
	}

	return firstZeroPivot(mn, a, lda)
}

// Dgetri validates in LAPACKE_dgetri order: 1 layout, 2 n, 3 a, 4 lda, 5 ipiv.
// The optimal workspace is queried and allocated per call.
func (g *gonumKernel) Dgetri(layout Layout, n int, a []float64, lda int, ipiv []int) int {
	if layout != RowMajor {
		return -1
	}
	switch {
	case n < 0:
		return -2
	case lda < max(1, n):
		return -4
	}
	if n == 0 {
		return 0
	}
	if len(a) < lda*(n-1)+n {
		return -3
	}
	if len(ipiv) < n {
		return -5
	}

	query := make([]float64, 1)
	g.lapack.Dgetri(n, a, lda, ipiv[:n], query, -1)
	lwork := max(n, int(query[0]))
	work := make([]float64, lwork)
	if g.lapack.Dgetri(n, a, lda, ipiv[:n], work, lwork) {
		return 0
	}

	return firstZeroPivot(n, a, lda)
}

// Dpotrf validates in LAPACKE_dpotrf order: 1 layout, 2 uplo, 3 n, 4 a, 5 lda.
// A matrix that is not positive definite yields +i for the first diagonal
// entry that failed (non-positive or NaN pivot), or +n when none is visible.
func (g *gonumKernel) Dpotrf(layout Layout, uplo Uplo, n int, a []float64, lda int) int {
	if layout != RowMajor {
		return -1
	}
	ul, ok := toBlasUplo(uplo)
	if !ok {
		return -2
	}
	switch {
	case n < 0:
		return -3
	case lda < max(1, n):
		return -5
	}
	if n == 0 {
		return 0
	}
	if len(a) < lda*(n-1)+n {
		return -4
	}

	if g.lapack.Dpotrf(ul, n, a, lda) {
		return 0
	}
	for i := 0; i < n; i++ {
		if d := a[i*lda+i]; !(d > 0) {
			return i + 1
		}
	}

	return n
}

// Dgesvd validates in LAPACKE_dgesvd order: 1 layout, 2 jobu, 3 jobvt, 4 m,
// 5 n, 6 a, 7 lda, 8 s, 9 u, 10 ldu, 11 vt, 12 ldvt. Only JobAll and JobNone
// are accepted; ldu and ldvt must be >= 1 even when the vectors are not wanted.
// Non-convergence of the bidiagonal QR yields +max(1, min(m,n)-1).
func (g *gonumKernel) Dgesvd(layout Layout, jobu, jobvt Job, m, n int, a []float64, lda int,
	s, u []float64, ldu int, vt []float64, ldvt int) int {
	if layout != RowMajor {
		return -1
	}
	if jobu != JobAll && jobu != JobNone {
		return -2
	}
	if jobvt != JobAll && jobvt != JobNone {
		return -3
	}
	wantU, wantVT := jobu == JobAll, jobvt == JobAll
	switch {
	case m < 0:
		return -4
	case n < 0:
		return -5
	case lda < max(1, n):
		return -7
	case ldu < 1 || (wantU && ldu < m):
		return -10
	case ldvt < 1 || (wantVT && ldvt < n):
		return -12
	}
	mn := min(m, n)
	if mn == 0 {
		return 0
	}
	switch {
	case len(a) < lda*(m-1)+n:
		return -6
	case len(s) < mn:
		return -8
	case wantU && len(u) < ldu*(m-1)+m:
		return -9
	case wantVT && len(vt) < ldvt*(n-1)+n:
		return -11
	}

	ju, jvt := lapack.SVDJob(jobu), lapack.SVDJob(jobvt)
	query := make([]float64, 1)
	g.lapack.Dgesvd(ju, jvt, m, n, a, lda, s, u, ldu, vt, ldvt, query, -1)
	work := make([]float64, max(1, int(query[0])))
	if g.lapack.Dgesvd(ju, jvt, m, n, a, lda, s, u, ldu, vt, ldvt, work, len(work)) {
		return 0
	}

	return max(1, mn-1)
}

// Dgeev validates in LAPACKE_dgeev order: 1 layout, 2 jobvl, 3 jobvr, 4 n,
// 5 a, 6 lda, 7 wr, 8 wi, 9 vl, 10 ldvl, 11 vr, 12 ldvr.
// gonum's "first valid eigenvalue" index is already the LAPACKE info value.
func (g *gonumKernel) Dgeev(layout Layout, jobvl, jobvr Job, n int, a []float64, lda int,
	wr, wi, vl []float64, ldvl int, vr []float64, ldvr int) int {
	if layout != RowMajor {
		return -1
	}
	if jobvl != JobVectors && jobvl != JobNone {
		return -2
	}
	if jobvr != JobVectors && jobvr != JobNone {
		return -3
	}
	wantVL, wantVR := jobvl == JobVectors, jobvr == JobVectors
	switch {
	case n < 0:
		return -4
	case lda < max(1, n):
		return -6
	case ldvl < 1 || (wantVL && ldvl < n):
		return -10
	case ldvr < 1 || (wantVR && ldvr < n):
		return -12
	}
	if n == 0 {
		return 0
	}
	switch {
	case len(a) < lda*(n-1)+n:
		return -5
	case len(wr) < n:
		return -7
	case len(wi) < n:
		return -8
	case wantVL && len(vl) < ldvl*(n-1)+n:
		return -9
	case wantVR && len(vr) < ldvr*(n-1)+n:
		return -11
	}

	jl, jr := lapack.LeftEVJob(jobvl), lapack.RightEVJob(jobvr)
	query := make([]float64, 1)
	g.lapack.Dgeev(jl, jr, n, a, lda, wr[:n], wi[:n], vl, ldvl, vr, ldvr, query, -1)
	work := make([]float64, max(1, int(query[0])))

	return g.lapack.Dgeev(jl, jr, n, a, lda, wr[:n], wi[:n], vl, ldvl, vr, ldvr, work, len(work))
}

// Dsyev validates in LAPACKE_dsyev order: 1 layout, 2 jobz, 3 uplo, 4 n,
// 5 a, 6 lda, 7 w. Non-convergence yields +max(1, n-1).
func (g *gonumKernel) Dsyev(layout Layout, jobz Job, uplo Uplo, n int, a []float64, lda int, w []float64) int {
	if layout != RowMajor {
		return -1
	}
	if jobz != JobVectors && jobz != JobNone {
		return -2
	}
	ul, ok := toBlasUplo(uplo)
	if !ok {
		return -3
	}
	switch {
	case n < 0:
		return -4
	case lda < max(1, n):
		return -6
	}
	if n == 0 {
		return 0
	}
	switch {
	case len(a) < lda*(n-1)+n:
		return -5
	case len(w) < n:
		return -7
	}

	jz := lapack.EVJob(jobz)
	// The workspace query reports through work[0] only; its bool is meaningless.
	query := make([]float64, 1)
	g.lapack.Dsyev(jz, ul, n, a, lda, w, query, -1)
	work := make([]float64, max(1, 3*n-1, int(query[0])))
	if g.lapack.Dsyev(jz, ul, n, a, lda, w, work, len(work)) {
		return 0
	}

	return max(1, n-1)
}

// Dlange validates in LAPACKE_dlange order: 1 layout, 2 norm, 3 m, 4 n, 5 a, 6 lda.
// An empty matrix has norm 0.
func (g *gonumKernel) Dlange(layout Layout, norm Norm, m, n int, a []float64, lda int) (float64, int) {
	if layout != RowMajor {
		return 0, -1
	}
	switch norm {
	case NormMax, NormOne, NormInf, NormFrobenius:
	default:
		return 0, -2
	}
	switch {
	case m < 0:
		return 0, -3
	case n < 0:
		return 0, -4
	case lda < max(1, n):
		return 0, -6
	}
	if m == 0 || n == 0 {
		return 0, 0
	}
	if len(a) < lda*(m-1)+n {
		return 0, -5
	}

	var work []float64
	if norm == NormOne {
		work = make([]float64, n)
	}

	return g.lapack.Dlange(lapack.MatrixNorm(norm), m, n, a, lda, work), 0
}

// Dgels validates in LAPACKE_dgels order: 1 layout, 2 trans, 3 m, 4 n,
// 5 nrhs, 6 a, 7 lda, 8 b, 9 ldb. A rank-deficient A yields +i for the first
// zero on the diagonal of the triangular factor.
func (g *gonumKernel) Dgels(layout Layout, trans Transpose, m, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	if layout != RowMajor {
		return -1
	}
	t, ok := toBlasTrans(trans)
	if !ok {
		return -2
	}
	switch {
	case m < 0:
		return -3
	case n < 0:
		return -4
	case nrhs < 0:
		return -5
	case lda < max(1, n):
		return -7
	case ldb < max(1, nrhs):
		return -9
	}
	mn := min(m, n)
	if mn == 0 || nrhs == 0 {
		return 0
	}
	switch {
	case len(a) < lda*(m-1)+n:
		return -6
	case len(b) < ldb*(max(m, n)-1)+nrhs:
		return -8
	}

	query := make([]float64, 1)
	g.lapack.Dgels(t, m, n, nrhs, a, lda, b, ldb, query, -1)
	work := make([]float64, max(1, mn+max(mn, nrhs), int(query[0])))
	if g.lapack.Dgels(t, m, n, nrhs, a, lda, b, ldb, work, len(work)) {
		return 0
	}

	return firstZeroPivot(mn, a, lda)
}

// Idamax delegates to blas64 after the argument checks gonum would panic on.
func (g *gonumKernel) Idamax(n int, x []float64, incx int) int {
	if !validVector(n, x, incx) {
		return -1
	}

	return g.blas.Idamax(n, x, incx)
}

// Idamin scans for the smallest |x[i]|; gonum's blas64 offers no Idamin,
// so this is the one routine the kernel computes directly.
func (g *gonumKernel) Idamin(n int, x []float64, incx int) int {
	if !validVector(n, x, incx) {
		return -1
	}
	best := 0
	bestAbs := math.Abs(x[0])
	for i, ix := 1, incx; i < n; i, ix = i+1, ix+incx {
		if v := math.Abs(x[ix]); v < bestAbs {
			best, bestAbs = i, v
		}
	}

	return best
}

// validVector reports whether (n, x, incx) describes a non-empty strided vector.
func validVector(n int, x []float64, incx int) bool {
	return n > 0 && incx > 0 && len(x) >= (n-1)*incx+1
}

func toBlasUplo(u Uplo) (blas.Uplo, bool) {
	switch u {
	case Upper:
		return blas.Upper, true
	case Lower:
		return blas.Lower, true
	default:
		return 0, false
	}
}

func toBlasTrans(t Transpose) (blas.Transpose, bool) {
	switch t {
	case NoTrans:
		return blas.NoTrans, true
	case Trans:
		return blas.Trans, true
	default:
		return 0, false
	}
}

// firstZeroPivot returns i+1 for the first exact zero on the diagonal of the
// k×k leading block, or k when the failure is not visible on the diagonal.
func firstZeroPivot(k int, a []float64, lda int) int {
	for i := 0; i < k; i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}

	return k
}
