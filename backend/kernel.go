// SPDX-License-Identifier: MIT

package backend

// Layout selects the storage order of a matrix argument (CBLAS/LAPACKE values).
type Layout int

const (
	RowMajor Layout = 101
	ColMajor Layout = 102
)

// String returns the CBLAS name of the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Layout(?)"
	}
}

// Transpose selects op(X) for Dgemm operands.
type Transpose int

const (
	NoTrans Transpose = 111
	Trans   Transpose = 112
)

// Uplo selects the referenced triangle for symmetric factorizations.
type Uplo byte

const (
	Upper Uplo = 'U'
	Lower Uplo = 'L'
)

// Job selects what a decomposition computes besides its values.
// Dgesvd accepts JobAll and JobNone; Dgeev and Dsyev accept JobVectors and JobNone.
type Job byte

const (
	JobAll     Job = 'A'
	JobVectors Job = 'V'
	JobNone    Job = 'N'
)

// Norm selects the matrix norm computed by Dlange.
type Norm byte

const (
	NormMax       Norm = 'M' // max |a(i,j)|
	NormOne       Norm = 'O' // max column sum of |a(i,j)|
	NormInf       Norm = 'I' // max row sum of |a(i,j)|
	NormFrobenius Norm = 'F'
)

// Kernel is the capability set the matrix package delegates to.
//
// Matrix arguments are flat slices interpreted through layout and the leading
// dimension ld: with RowMajor, element (i, j) lives at i*ld + j. Pivot indices
// are 0-based (row i was interchanged with row ipiv[i]).
//
// Status-returning routines follow the LAPACKE convention documented in the
// package comment. Idamax/Idamin return a 0-based index, or a negative value
// when the arguments are invalid or n == 0.
type Kernel interface {
	// Name identifies the kernel in logs and `numla info`.
	Name() string

	// Dgemm computes C = alpha*op(A)*op(B) + beta*C with op(A) m×k, op(B) k×n, C m×n.
	Dgemm(layout Layout, tA, tB Transpose, m, n, k int, alpha float64,
		a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) int

	// Dgetrf computes an LU factorization with partial pivoting of the m×n
	// matrix a in place. len(ipiv) must be at least min(m, n).
	Dgetrf(layout Layout, m, n int, a []float64, lda int, ipiv []int) int

	// Dgetri replaces the LU factors produced by Dgetrf with the inverse.
	Dgetri(layout Layout, n int, a []float64, lda int, ipiv []int) int

	// Dpotrf computes the Cholesky factor of the symmetric positive definite
	// n×n matrix a in place, referencing and overwriting only the uplo triangle.
	Dpotrf(layout Layout, uplo Uplo, n int, a []float64, lda int) int

	// Dgesvd computes A = U·Σ·Vᵀ for the m×n matrix a, destroying a.
	// s receives the min(m, n) singular values in descending order, u the m×m
	// U and vt the n×n Vᵀ when the matching job is JobAll.
	Dgesvd(layout Layout, jobu, jobvt Job, m, n int, a []float64, lda int,
		s, u []float64, ldu int, vt []float64, ldvt int) int

	// Dgeev computes the eigenvalues (wr + i·wi) of the general n×n matrix a
	// and, optionally, its left (vl) and right (vr) eigenvectors stored as
	// columns. Complex conjugate pairs occupy two consecutive columns holding
	// the real and imaginary parts. A positive status i means the QR
	// iteration failed and only wr[i:], wi[i:] are valid.
	Dgeev(layout Layout, jobvl, jobvr Job, n int, a []float64, lda int,
		wr, wi, vl []float64, ldvl int, vr []float64, ldvr int) int

	// Dsyev computes the eigenvalues of the symmetric n×n matrix a in
	// ascending order into w. With JobVectors, a is overwritten by the
	// orthonormal eigenvectors stored as columns.
	Dsyev(layout Layout, jobz Job, uplo Uplo, n int, a []float64, lda int, w []float64) int

	// Dlange returns the requested norm of the m×n matrix a and a status.
	Dlange(layout Layout, norm Norm, m, n int, a []float64, lda int) (float64, int)

	// Dgels solves the least-squares (m >= n) or minimum-norm (m < n) problem
	// op(A)·X = B through a QR or LQ factorization of a. b is max(m, n)×nrhs;
	// on success its leading rows hold X. A positive status i means the
	// triangular factor has a zero at (i-1, i-1): A is rank deficient.
	Dgels(layout Layout, trans Transpose, m, n, nrhs int, a []float64, lda int, b []float64, ldb int) int

	// Idamax returns the index of the first element with the largest |x[i]|.
	Idamax(n int, x []float64, incx int) int

	// Idamin returns the index of the first element with the smallest |x[i]|.
	Idamin(n int, x []float64, incx int) int
}
